package tasks

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/poiesic/searchkit/core"
	"github.com/poiesic/searchkit/provider"
	"github.com/poiesic/searchkit/storage"
)

// Provider adapts the task collection to the search engine.
type Provider struct {
	repo storage.TaskRepository
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

// NewProvider creates a task provider over the given repository.
func NewProvider(repo storage.TaskRepository, opts ...Option) (*Provider, error) {
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

// DefaultIndexConfig is the task index configuration: title carries the
// heaviest weight, tags outweigh the description, and status/priority match
// verbatim.
func DefaultIndexConfig() core.IndexConfig {
	return core.NewIndexConfig(core.WithFields(
		core.ScoringField{Name: "title", Boost: 3.0, Analyzer: core.AnalyzerText},
		core.ScoringField{Name: "description", Boost: 1.5, Analyzer: core.AnalyzerText},
		core.ScoringField{Name: "tags", Boost: 2.0, Analyzer: core.AnalyzerText},
		core.ScoringField{Name: "status", Boost: 1.0, Analyzer: core.AnalyzerKeyword},
		core.ScoringField{Name: "priority", Boost: 1.0, Analyzer: core.AnalyzerKeyword},
	))
}

// Name identifies the provider within a registry.
func (p *Provider) Name() string {
	return "tasks"
}

// Schema describes the task fields exposed for filtering and sorting.
func (p *Provider) Schema() []core.FieldDescriptor {
	return []core.FieldDescriptor{
		{Key: "title", Label: "Title", Type: core.FieldTypeText, Searchable: true, Filterable: true, Sortable: true},
		{Key: "description", Label: "Description", Type: core.FieldTypeText, Searchable: true, Filterable: true},
		{Key: "status", Label: "Status", Type: core.FieldTypeSelect, Filterable: true, Sortable: true,
			Options: []string{"pending", "in-progress", "completed", "archived"}},
		{Key: "priority", Label: "Priority", Type: core.FieldTypeSelect, Filterable: true, Sortable: true,
			Options: []string{"low", "medium", "high", "urgent"}},
		{Key: "tags", Label: "Tags", Type: core.FieldTypeMultiSelect, Searchable: true, Filterable: true},
		{Key: "dueDate", Label: "Due date", Type: core.FieldTypeDate, Filterable: true, Sortable: true},
		{Key: "createdAt", Label: "Created", Type: core.FieldTypeDate, Sortable: true},
	}
}

// IndexConfig returns the analysis and scoring configuration.
func (p *Provider) IndexConfig() core.IndexConfig {
	return p.cfg
}

// Enumerate returns the current task collection.
func (p *Provider) Enumerate(ctx context.Context) ([]any, error) {
	tasks, err := p.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]any, len(tasks))
	for i, task := range tasks {
		records[i] = task
	}
	return records, nil
}

// Project computes the indexable document for one task. Every optional field
// is defaulted rather than omitted, so downstream scoring and filtering never
// see a missing key.
func (p *Provider) Project(record any) core.IndexedDocument {
	task, ok := record.(*core.Task)
	if !ok || task == nil {
		return core.IndexedDocument{Type: "task", Boost: core.MinBoost, Fields: map[string]any{}}
	}

	status := task.Status
	if status == "" {
		status = core.TaskStatusPending
	}
	priority := task.Priority
	if priority == "" {
		priority = core.TaskPriorityMedium
	}
	tags := task.Tags
	if tags == nil {
		tags = []string{}
	}

	content := strings.ToLower(strings.Join([]string{
		task.Title,
		task.Description,
		strings.Join(tags, " "),
		string(status),
		string(priority),
	}, " "))

	return core.IndexedDocument{
		ID:      task.Id,
		Content: content,
		Fields: map[string]any{
			"title":       task.Title,
			"description": task.Description,
			"status":      string(status),
			"priority":    string(priority),
			"tags":        tags,
			"dueDate":     task.DueDate,
			"createdAt":   task.CreatedAt,
		},
		Boost: Boost(task, time.Now().UTC()),
		Type:  "task",
	}
}

// Format builds the externally visible result item for one task.
func (p *Provider) Format(record any, score float64, highlights []core.Highlight) core.ResultItem {
	task, ok := record.(*core.Task)
	if !ok || task == nil {
		return core.ResultItem{Record: record, Score: score, Highlights: highlights}
	}

	return core.ResultItem{
		Record:        task,
		Score:         score,
		Highlights:    highlights,
		Snippet:       provider.Snippet(highlights, "title", "description", task.Description, task.Title),
		MatchedFields: provider.MatchedFields(highlights),
	}
}

// FindOriginal resolves a document id back to the live task.
func (p *Provider) FindOriginal(ctx context.Context, id core.ID) (any, error) {
	task, err := p.repo.GetTask(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}
