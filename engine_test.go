package searchkit

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/poiesic/searchkit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider serves a fixed name/content word list for engine routing tests.
type fakeProvider struct {
	name    string
	words   []string
	enumErr error
}

func (p *fakeProvider) Name() string                   { return p.name }
func (p *fakeProvider) Schema() []core.FieldDescriptor { return nil }

func (p *fakeProvider) IndexConfig() core.IndexConfig {
	return core.NewIndexConfig(
		core.WithFuzzy(false),
		core.WithFields(core.ScoringField{Name: "word", Boost: 2.0, Analyzer: core.AnalyzerText}),
	)
}

func (p *fakeProvider) Enumerate(_ context.Context) ([]any, error) {
	if p.enumErr != nil {
		return nil, p.enumErr
	}
	records := make([]any, len(p.words))
	for i, word := range p.words {
		records[i] = word
	}
	return records, nil
}

func (p *fakeProvider) Project(record any) core.IndexedDocument {
	word := record.(string)
	return core.IndexedDocument{
		ID:      core.ID(p.name + ":" + word),
		Content: strings.ToLower(word),
		Fields:  map[string]any{"word": word},
		Boost:   1.0,
		Type:    p.name,
	}
}

func (p *fakeProvider) Format(record any, score float64, highlights []core.Highlight) core.ResultItem {
	return core.ResultItem{Record: record, Score: score, Highlights: highlights}
}

func (p *fakeProvider) FindOriginal(_ context.Context, id core.ID) (any, error) {
	for _, word := range p.words {
		if core.ID(p.name+":"+word) == id {
			return word, nil
		}
	}
	return nil, nil
}

func newTestEngine(t *testing.T, providers ...*fakeProvider) *Engine {
	t.Helper()
	engine, err := NewEngine()
	require.NoError(t, err)
	t.Cleanup(func() { _ = engine.Close() })
	for _, p := range providers {
		_, err := engine.Register(p)
		require.NoError(t, err)
	}
	return engine
}

func TestEngine_RegisterAndRoute(t *testing.T) {
	engine := newTestEngine(t,
		&fakeProvider{name: "tasks", words: []string{"deploy", "review"}},
		&fakeProvider{name: "notebooks", words: []string{"journal"}},
	)

	assert.Equal(t, []string{"tasks", "notebooks"}, engine.Providers())

	envelope, err := engine.Search(context.Background(), "notebooks", core.Query{Text: "journal"})
	require.NoError(t, err)
	require.Len(t, envelope.Items, 1)
	assert.Equal(t, "journal", envelope.Items[0].Record)

	// Empty name routes to the first registered provider.
	envelope, err = engine.Search(context.Background(), "", core.Query{Text: "deploy"})
	require.NoError(t, err)
	require.Len(t, envelope.Items, 1)
	assert.Equal(t, "deploy", envelope.Items[0].Record)
}

func TestEngine_UnknownProvider(t *testing.T) {
	engine := newTestEngine(t, &fakeProvider{name: "tasks", words: []string{"deploy"}})

	_, err := engine.Search(context.Background(), "calendar", core.Query{Text: "deploy"})
	assert.ErrorIs(t, err, core.ErrProviderNotFound)
}

func TestEngine_NoProvidersRegistered(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Search(context.Background(), "", core.Query{Text: "deploy"})
	assert.ErrorIs(t, err, core.ErrProviderNotFound)
}

func TestEngine_DuplicateProvider(t *testing.T) {
	engine := newTestEngine(t, &fakeProvider{name: "tasks", words: []string{"deploy"}})

	_, err := engine.Register(&fakeProvider{name: "tasks", words: []string{"other"}})
	assert.ErrorIs(t, err, core.ErrDuplicateProvider)
}

func TestEngine_SearchMultiple(t *testing.T) {
	engine := newTestEngine(t,
		&fakeProvider{name: "tasks", words: []string{"standup", "deploy"}},
		&fakeProvider{name: "notebooks", words: []string{"standup"}},
	)

	results, err := engine.SearchMultiple(context.Background(), nil, core.Query{Text: "standup"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Len(t, results["tasks"].Items, 1)
	assert.Len(t, results["notebooks"].Items, 1)
}

func TestEngine_SearchMultipleIsolatesFailures(t *testing.T) {
	engine := newTestEngine(t,
		&fakeProvider{name: "tasks", words: []string{"standup"}},
		&fakeProvider{name: "notebooks", enumErr: errors.New("collection offline")},
	)

	results, err := engine.SearchMultiple(context.Background(), []string{"tasks", "notebooks"}, core.Query{Text: "standup"})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Len(t, results["tasks"].Items, 1)

	// The failed provider contributes an empty envelope, not an error.
	require.NotNil(t, results["notebooks"])
	assert.Empty(t, results["notebooks"].Items)
	assert.Zero(t, results["notebooks"].TotalCount)
}

func TestEngine_SuggestAggregates(t *testing.T) {
	engine := newTestEngine(t,
		&fakeProvider{name: "tasks", words: []string{"deploy", "deadline"}},
		&fakeProvider{name: "notebooks", words: []string{"design", "deploy"}},
	)

	suggestions, err := engine.Suggest(context.Background(), "de")
	require.NoError(t, err)
	assert.Equal(t, []string{"deadline", "deploy", "design"}, suggestions)
}

func TestEngine_RefreshAndStats(t *testing.T) {
	engine := newTestEngine(t,
		&fakeProvider{name: "tasks", words: []string{"deploy", "review"}},
		&fakeProvider{name: "notebooks", words: []string{"journal"}},
	)

	require.NoError(t, engine.Refresh(context.Background()))

	stats := engine.Stats()
	require.Len(t, stats, 2)
	assert.Equal(t, 2, stats["tasks"].Documents)
	assert.Equal(t, 1, stats["notebooks"].Documents)
	assert.False(t, stats["tasks"].LastIndexed.IsZero())
}

func TestEngine_RefreshReportsFailures(t *testing.T) {
	failing := &fakeProvider{name: "notebooks", enumErr: errors.New("collection offline")}
	engine := newTestEngine(t,
		&fakeProvider{name: "tasks", words: []string{"deploy"}},
		failing,
	)

	err := engine.Refresh(context.Background())
	assert.ErrorIs(t, err, core.ErrIndexUnavailable)

	// The healthy provider was still refreshed.
	assert.Equal(t, 1, engine.Stats()["tasks"].Documents)
}
