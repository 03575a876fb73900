package provider

import (
	"context"
	"strings"

	"github.com/poiesic/searchkit/core"
)

// Provider is the capability interface a domain adapter supplies to the
// engine. Each entity kind implements it once; the engine holds providers
// behind this uniform handle and owns all indexing, scoring, highlighting,
// and result-shaping logic.
//
// Schema and IndexConfig are immutable for the provider's lifetime. Changing
// them requires constructing a new provider.
type Provider interface {
	// Name identifies the provider within a registry.
	Name() string

	// Schema describes the fields exposed for filtering and sorting.
	Schema() []core.FieldDescriptor

	// IndexConfig returns the analysis and scoring configuration.
	IndexConfig() core.IndexConfig

	// Enumerate returns the current full source collection. It may perform
	// I/O; failure here surfaces as ErrIndexUnavailable to the caller.
	Enumerate(ctx context.Context) ([]any, error)

	// Project computes the indexable document for one record. It must be
	// total: every optional attribute is defaulted rather than omitted.
	Project(record any) core.IndexedDocument

	// Format builds the externally visible result item from the original
	// record, its relevance score, and the extracted highlights.
	Format(record any, score float64, highlights []core.Highlight) core.ResultItem

	// FindOriginal resolves a document id back to the live typed record.
	// Returns nil with no error when the record no longer exists.
	FindOriginal(ctx context.Context, id core.ID) (any, error)
}

// MatchedFields lists the field names that produced at least one highlight,
// in highlight order.
func MatchedFields(highlights []core.Highlight) []string {
	if len(highlights) == 0 {
		return nil
	}
	fields := make([]string, 0, len(highlights))
	for _, h := range highlights {
		fields = append(fields, h.Field)
	}
	return fields
}

// SnippetLength bounds the fallback snippet taken from a record's description.
const SnippetLength = 150

// Snippet derives a display snippet for a result item. It prefers the first
// fragment of the titleField highlight, then the descField highlight, then a
// truncated description, then the raw title.
func Snippet(highlights []core.Highlight, titleField, descField, description, title string) string {
	if s := firstFragment(highlights, titleField); s != "" {
		return s
	}
	if s := firstFragment(highlights, descField); s != "" {
		return s
	}
	if description != "" {
		return Truncate(description, SnippetLength)
	}
	return title
}

// Truncate shortens text to at most length runes, appending an ellipsis when
// anything was cut.
func Truncate(text string, length int) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= length {
		return string(runes)
	}
	return string(runes[:length]) + "…"
}

func firstFragment(highlights []core.Highlight, field string) string {
	for _, h := range highlights {
		if h.Field != field {
			continue
		}
		for _, fragment := range h.Fragments {
			if fragment != "" {
				return fragment
			}
		}
	}
	return ""
}
