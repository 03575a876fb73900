package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/searchkit/core"
	"github.com/poiesic/searchkit/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) (*Provider, context.Context) {
	t.Helper()
	taskRepo, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = taskRepo.Close()
		_ = backend.Close()
	})

	p, err := NewProvider(taskRepo)
	require.NoError(t, err)
	return p, context.Background()
}

func TestNewProvider_NilRepository(t *testing.T) {
	_, err := NewProvider(nil)
	assert.ErrorIs(t, err, ErrRepositoryRequired)
}

func TestProvider_Name(t *testing.T) {
	p, _ := newTestProvider(t)
	assert.Equal(t, "tasks", p.Name())
}

func TestProvider_Schema(t *testing.T) {
	p, _ := newTestProvider(t)

	schema := p.Schema()
	require.NotEmpty(t, schema)

	keys := make(map[string]core.FieldDescriptor, len(schema))
	for _, field := range schema {
		keys[field.Key] = field
	}
	assert.True(t, keys["title"].Searchable)
	assert.True(t, keys["status"].Filterable)
	assert.Equal(t, core.FieldTypeDate, keys["dueDate"].Type)
	assert.Contains(t, keys["priority"].Options, "urgent")
}

func TestProvider_EnumerateAndFindOriginal(t *testing.T) {
	p, ctx := newTestProvider(t)

	added, err := p.repo.AddTasks(ctx,
		&core.Task{Title: "Write unit tests", Status: core.TaskStatusPending},
		&core.Task{Title: "Deploy service", Status: core.TaskStatusCompleted},
	)
	require.NoError(t, err)
	require.Len(t, added, 2)

	records, err := p.Enumerate(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	found, err := p.FindOriginal(ctx, added[0].Id)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Write unit tests", found.(*core.Task).Title)

	// A vanished id resolves to nil without error.
	found, err = p.FindOriginal(ctx, core.ID("missing"))
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestProvider_ProjectDefaults(t *testing.T) {
	p, _ := newTestProvider(t)

	doc := p.Project(&core.Task{Id: "t1", Title: "Write unit tests"})

	assert.Equal(t, core.ID("t1"), doc.ID)
	assert.Equal(t, "task", doc.Type)

	// Optional attributes are defaulted, never omitted.
	assert.Equal(t, string(core.TaskStatusPending), doc.Fields["status"])
	assert.Equal(t, string(core.TaskPriorityMedium), doc.Fields["priority"])
	assert.Equal(t, []string{}, doc.Fields["tags"])
	assert.Contains(t, doc.Fields, "dueDate")

	assert.Contains(t, doc.Content, "write unit tests")
	assert.Contains(t, doc.Content, "pending")
	assert.GreaterOrEqual(t, doc.Boost, core.MinBoost)
}

func TestProvider_ProjectContentIsLowercase(t *testing.T) {
	p, _ := newTestProvider(t)

	doc := p.Project(&core.Task{
		Id:          "t1",
		Title:       "URGENT Fix",
		Description: "Patch the API",
		Tags:        []string{"Backend"},
	})

	assert.Equal(t, "urgent fix patch the api backend pending medium", doc.Content)
	// Field values keep their original casing.
	assert.Equal(t, "URGENT Fix", doc.Fields["title"])
}

func TestProvider_ProjectBoostReflectsPriority(t *testing.T) {
	p, _ := newTestProvider(t)

	urgent := p.Project(&core.Task{Id: "t1", Title: "Fix outage", Priority: core.TaskPriorityUrgent})
	low := p.Project(&core.Task{Id: "t2", Title: "Tidy docs", Priority: core.TaskPriorityLow})
	assert.Greater(t, urgent.Boost, low.Boost)
}

func TestProvider_Format(t *testing.T) {
	p, _ := newTestProvider(t)
	task := &core.Task{Id: "t1", Title: "Write unit tests", Description: "Cover the tokenizer"}

	highlights := []core.Highlight{
		{Field: "title", Fragments: []string{"Write unit **tests**"}},
		{Field: "description", Fragments: []string{"Cover the **tokenizer**"}},
	}

	item := p.Format(task, 4.2, highlights)
	assert.Same(t, task, item.Record)
	assert.Equal(t, 4.2, item.Score)
	assert.Equal(t, "Write unit **tests**", item.Snippet)
	assert.Equal(t, []string{"title", "description"}, item.MatchedFields)

	// Without highlights the snippet falls back to the description.
	item = p.Format(task, 1.0, nil)
	assert.Equal(t, "Cover the tokenizer", item.Snippet)
	assert.Empty(t, item.MatchedFields)
}

func TestWithIndexConfig(t *testing.T) {
	taskRepo, _, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = taskRepo.Close()
		_ = backend.Close()
	})

	custom := core.NewIndexConfig(
		core.WithFields(core.ScoringField{Name: "title", Boost: 5.0, Analyzer: core.AnalyzerText}),
	)
	p, err := NewProvider(taskRepo, WithIndexConfig(custom))
	require.NoError(t, err)
	assert.Equal(t, 5.0, p.IndexConfig().Fields[0].Boost)

	invalid := core.NewIndexConfig(core.WithFuzzyThreshold(2.0))
	_, err = NewProvider(taskRepo, WithIndexConfig(invalid))
	assert.Error(t, err)
}

func TestDefaultIndexConfig(t *testing.T) {
	cfg := DefaultIndexConfig()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Fuzzy)

	weights := make(map[string]float64, len(cfg.Fields))
	for _, field := range cfg.Fields {
		weights[field.Name] = field.Boost
	}
	assert.Equal(t, 3.0, weights["title"])
	assert.Equal(t, 2.0, weights["tags"])
	assert.Equal(t, 1.5, weights["description"])
}

func TestProvider_ProjectAndBoostAgree(t *testing.T) {
	p, _ := newTestProvider(t)

	task := &core.Task{
		Id:        "t1",
		Title:     "Fix outage",
		Priority:  core.TaskPriorityUrgent,
		Status:    core.TaskStatusInProgress,
		UpdatedAt: time.Now().UTC(),
	}
	doc := p.Project(task)
	// Urgent and recently touched: 1.5 + 0.2.
	assert.InDelta(t, 1.7, doc.Boost, 1e-9)
}
