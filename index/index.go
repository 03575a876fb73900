package index

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/poiesic/searchkit/core"
)

// Source supplies the records to index and their projection. It is the
// engine-facing half of the provider contract.
type Source interface {
	// Enumerate returns the current full source collection. It may perform I/O.
	Enumerate(ctx context.Context) ([]any, error)

	// Project computes the indexable document for one record. It must be
	// total: every optional attribute is defaulted rather than omitted.
	Project(record any) core.IndexedDocument
}

// Index is an immutable snapshot of indexed documents. Owners rebuild by
// constructing a fresh Index with Build and swapping a single reference, so a
// reader never observes a half-built index.
type Index struct {
	docs    map[core.ID]*core.IndexedDocument
	order   []core.ID // enumeration order; drives stable tie-breaks
	builtAt time.Time
}

// Build enumerates the source's current collection and projects every record
// into a fresh Index. On enumeration failure no index is returned and the
// caller keeps its last-known-good snapshot.
//
// Duplicate ids keep the last projection but retain the first enumeration
// position, so rebuilding is idempotent.
func Build(ctx context.Context, source Source) (*Index, error) {
	records, err := source.Enumerate(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrIndexUnavailable, err)
	}

	idx := &Index{
		docs:    make(map[core.ID]*core.IndexedDocument, len(records)),
		order:   make([]core.ID, 0, len(records)),
		builtAt: time.Now().UTC(),
	}

	for _, record := range records {
		doc := source.Project(record)
		if doc.Boost < core.MinBoost {
			doc.Boost = core.MinBoost
		}
		doc.LastIndexed = idx.builtAt
		if _, exists := idx.docs[doc.ID]; !exists {
			idx.order = append(idx.order, doc.ID)
		}
		idx.docs[doc.ID] = &doc
	}

	return idx, nil
}

// Len returns the number of indexed documents.
func (ix *Index) Len() int {
	return len(ix.docs)
}

// Get returns the document for id, if indexed.
func (ix *Index) Get(id core.ID) (*core.IndexedDocument, bool) {
	doc, ok := ix.docs[id]
	return doc, ok
}

// Documents yields all indexed documents in enumeration order.
func (ix *Index) Documents() iter.Seq[*core.IndexedDocument] {
	return func(yield func(*core.IndexedDocument) bool) {
		for _, id := range ix.order {
			if !yield(ix.docs[id]) {
				return
			}
		}
	}
}

// BuiltAt returns when the snapshot was constructed.
func (ix *Index) BuiltAt() time.Time {
	return ix.builtAt
}
