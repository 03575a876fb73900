package notebooks

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/poiesic/searchkit/core"
	"github.com/poiesic/searchkit/provider"
	"github.com/poiesic/searchkit/storage"
)

// Provider adapts the notebook collection to the search engine.
type Provider struct {
	repo storage.NotebookRepository
	cfg  core.IndexConfig
}

var _ provider.Provider = (*Provider)(nil)

// Option configures a Provider.
type Option func(*Provider) error

// WithIndexConfig replaces the default index configuration.
func WithIndexConfig(cfg core.IndexConfig) Option {
	return func(p *Provider) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		p.cfg = cfg
		return nil
	}
}

// NewProvider creates a notebook provider over the given repository.
func NewProvider(repo storage.NotebookRepository, opts ...Option) (*Provider, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}

	p := &Provider{
		repo: repo,
		cfg:  DefaultIndexConfig(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// DefaultIndexConfig is the notebook index configuration.
func DefaultIndexConfig() core.IndexConfig {
	return core.NewIndexConfig(core.WithFields(
		core.ScoringField{Name: "name", Boost: 3.0, Analyzer: core.AnalyzerText},
		core.ScoringField{Name: "description", Boost: 1.5, Analyzer: core.AnalyzerText},
		core.ScoringField{Name: "tags", Boost: 2.0, Analyzer: core.AnalyzerText},
	))
}

// Name identifies the provider within a registry.
func (p *Provider) Name() string {
	return "notebooks"
}

// Schema describes the notebook fields exposed for filtering and sorting.
func (p *Provider) Schema() []core.FieldDescriptor {
	return []core.FieldDescriptor{
		{Key: "name", Label: "Name", Type: core.FieldTypeText, Searchable: true, Filterable: true, Sortable: true},
		{Key: "description", Label: "Description", Type: core.FieldTypeText, Searchable: true, Filterable: true},
		{Key: "tags", Label: "Tags", Type: core.FieldTypeMultiSelect, Searchable: true, Filterable: true},
		{Key: "pinned", Label: "Pinned", Type: core.FieldTypeBoolean, Filterable: true, Sortable: true},
		{Key: "noteCount", Label: "Notes", Type: core.FieldTypeNumber, Filterable: true, Sortable: true},
		{Key: "updatedAt", Label: "Updated", Type: core.FieldTypeDate, Sortable: true},
	}
}

// IndexConfig returns the analysis and scoring configuration.
func (p *Provider) IndexConfig() core.IndexConfig {
	return p.cfg
}

// Enumerate returns the current notebook collection.
func (p *Provider) Enumerate(ctx context.Context) ([]any, error) {
	notebooks, err := p.repo.ListNotebooks(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]any, len(notebooks))
	for i, notebook := range notebooks {
		records[i] = notebook
	}
	return records, nil
}

// Project computes the indexable document for one notebook. Every optional
// field is defaulted rather than omitted.
func (p *Provider) Project(record any) core.IndexedDocument {
	notebook, ok := record.(*core.Notebook)
	if !ok || notebook == nil {
		return core.IndexedDocument{Type: "notebook", Boost: core.MinBoost, Fields: map[string]any{}}
	}

	tags := notebook.Tags
	if tags == nil {
		tags = []string{}
	}

	content := strings.ToLower(strings.Join([]string{
		notebook.Name,
		notebook.Description,
		strings.Join(tags, " "),
	}, " "))

	return core.IndexedDocument{
		ID:      notebook.Id,
		Content: content,
		Fields: map[string]any{
			"name":        notebook.Name,
			"description": notebook.Description,
			"tags":        tags,
			"pinned":      notebook.Pinned,
			"noteCount":   notebook.NoteCount,
			"updatedAt":   notebook.UpdatedAt,
		},
		Boost: Boost(notebook, time.Now().UTC()),
		Type:  "notebook",
	}
}

// Format builds the externally visible result item for one notebook.
func (p *Provider) Format(record any, score float64, highlights []core.Highlight) core.ResultItem {
	notebook, ok := record.(*core.Notebook)
	if !ok || notebook == nil {
		return core.ResultItem{Record: record, Score: score, Highlights: highlights}
	}

	return core.ResultItem{
		Record:        notebook,
		Score:         score,
		Highlights:    highlights,
		Snippet:       provider.Snippet(highlights, "name", "description", notebook.Description, notebook.Name),
		MatchedFields: provider.MatchedFields(highlights),
	}
}

// FindOriginal resolves a document id back to the live notebook.
func (p *Provider) FindOriginal(ctx context.Context, id core.ID) (any, error) {
	notebook, err := p.repo.GetNotebook(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return notebook, nil
}
