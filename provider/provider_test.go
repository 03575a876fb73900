package provider

import (
	"strings"
	"testing"

	"github.com/poiesic/searchkit/core"
	"github.com/stretchr/testify/assert"
)

func TestMatchedFields(t *testing.T) {
	assert.Nil(t, MatchedFields(nil))

	fields := MatchedFields([]core.Highlight{
		{Field: "title", Fragments: []string{"**x**"}},
		{Field: "tags", Fragments: []string{"**y**"}},
	})
	assert.Equal(t, []string{"title", "tags"}, fields)
}

func TestSnippet(t *testing.T) {
	highlights := []core.Highlight{
		{Field: "description", Fragments: []string{"Cover the **tokenizer**"}},
		{Field: "title", Fragments: []string{"Write unit **tests**"}},
	}

	// Title highlight wins regardless of highlight order.
	assert.Equal(t, "Write unit **tests**",
		Snippet(highlights, "title", "description", "Cover the tokenizer", "Write unit tests"))

	// Then the description highlight.
	assert.Equal(t, "Cover the **tokenizer**",
		Snippet(highlights[:1], "title", "description", "Cover the tokenizer", "Write unit tests"))

	// Then the raw description, then the title.
	assert.Equal(t, "Cover the tokenizer",
		Snippet(nil, "title", "description", "Cover the tokenizer", "Write unit tests"))
	assert.Equal(t, "Write unit tests",
		Snippet(nil, "title", "description", "", "Write unit tests"))
}

func TestSnippet_SkipsEmptyFragments(t *testing.T) {
	highlights := []core.Highlight{
		{Field: "title", Fragments: []string{"", "Write unit **tests**"}},
	}
	assert.Equal(t, "Write unit **tests**",
		Snippet(highlights, "title", "description", "", "Write unit tests"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "trimmed", Truncate("  trimmed  ", 10))
	assert.Equal(t, "abc…", Truncate("abcdef", 3))

	// Rune-safe on multibyte text.
	assert.Equal(t, "héll…", Truncate("héllo wörld", 4))

	long := strings.Repeat("x", SnippetLength+20)
	assert.Len(t, []rune(Truncate(long, SnippetLength)), SnippetLength+1)
}
