package notebooks

import (
	"context"
	"testing"

	"github.com/poiesic/searchkit/core"
	"github.com/poiesic/searchkit/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) (*Provider, context.Context) {
	t.Helper()
	_, notebookRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = notebookRepo.Close()
		_ = backend.Close()
	})

	p, err := NewProvider(notebookRepo)
	require.NoError(t, err)
	return p, context.Background()
}

func TestNewProvider_NilRepository(t *testing.T) {
	_, err := NewProvider(nil)
	assert.ErrorIs(t, err, ErrRepositoryRequired)
}

func TestProvider_Name(t *testing.T) {
	p, _ := newTestProvider(t)
	assert.Equal(t, "notebooks", p.Name())
}

func TestProvider_EnumerateAndFindOriginal(t *testing.T) {
	p, ctx := newTestProvider(t)

	added, err := p.repo.AddNotebooks(ctx,
		&core.Notebook{Name: "Work journal", Pinned: true},
		&core.Notebook{Name: "Reading notes"},
	)
	require.NoError(t, err)
	require.Len(t, added, 2)

	records, err := p.Enumerate(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	found, err := p.FindOriginal(ctx, added[0].Id)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Work journal", found.(*core.Notebook).Name)

	found, err = p.FindOriginal(ctx, core.ID("missing"))
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestProvider_Project(t *testing.T) {
	p, _ := newTestProvider(t)

	doc := p.Project(&core.Notebook{
		Id:          "n1",
		Name:        "Work Journal",
		Description: "Daily standup notes",
		Pinned:      true,
		NoteCount:   12,
	})

	assert.Equal(t, core.ID("n1"), doc.ID)
	assert.Equal(t, "notebook", doc.Type)
	assert.Equal(t, "work journal daily standup notes ", doc.Content)
	assert.Equal(t, "Work Journal", doc.Fields["name"])
	assert.Equal(t, true, doc.Fields["pinned"])
	assert.Equal(t, 12, doc.Fields["noteCount"])
	assert.Equal(t, []string{}, doc.Fields["tags"])
	assert.Greater(t, doc.Boost, 1.0)
}

func TestProvider_Format(t *testing.T) {
	p, _ := newTestProvider(t)
	notebook := &core.Notebook{Id: "n1", Name: "Work journal", Description: "Daily standup notes"}

	highlights := []core.Highlight{{Field: "name", Fragments: []string{"Work **journal**"}}}

	item := p.Format(notebook, 3.0, highlights)
	assert.Same(t, notebook, item.Record)
	assert.Equal(t, "Work **journal**", item.Snippet)
	assert.Equal(t, []string{"name"}, item.MatchedFields)

	item = p.Format(notebook, 1.0, nil)
	assert.Equal(t, "Daily standup notes", item.Snippet)
}

func TestDefaultIndexConfig(t *testing.T) {
	cfg := DefaultIndexConfig()
	require.NoError(t, cfg.Validate())

	weights := make(map[string]float64, len(cfg.Fields))
	for _, field := range cfg.Fields {
		weights[field.Name] = field.Boost
	}
	assert.Equal(t, 3.0, weights["name"])
	assert.Equal(t, 2.0, weights["tags"])
}
