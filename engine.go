// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package searchkit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/poiesic/searchkit/core"
	"github.com/poiesic/searchkit/provider"
	"github.com/poiesic/searchkit/search"
)

// Engine is the composition shell over the search core. It holds one
// Searcher per registered provider, routes queries by provider name, and
// aggregates suggestions and statistics across providers.
type Engine struct {
	mu          sync.RWMutex
	searchers   map[string]*search.Searcher
	order       []string // registration order; first registered is the default
	logger      *slog.Logger
	searcherOps []search.Option
}

// EngineOption configures an Engine.
type EngineOption func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithSearcherOptions sets options applied to every searcher the engine
// creates during Register.
func WithSearcherOptions(opts ...search.Option) EngineOption {
	return func(e *Engine) error {
		e.searcherOps = opts
		return nil
	}
}

// NewEngine creates an empty engine.
func NewEngine(opts ...EngineOption) (*Engine, error) {
	e := &Engine{
		searchers: make(map[string]*search.Searcher),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Register adds a provider and creates its searcher. The first provider
// registered becomes the default route for queries with an empty provider
// name.
func (e *Engine) Register(p provider.Provider, opts ...search.Option) (*search.Searcher, error) {
	if p == nil {
		return nil, search.ErrProviderRequired
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	name := p.Name()
	if _, exists := e.searchers[name]; exists {
		return nil, fmt.Errorf("%w: %q", core.ErrDuplicateProvider, name)
	}

	all := make([]search.Option, 0, len(e.searcherOps)+len(opts))
	all = append(all, e.searcherOps...)
	all = append(all, opts...)

	s, err := search.NewSearcher(p, all...)
	if err != nil {
		return nil, err
	}

	e.searchers[name] = s
	e.order = append(e.order, name)
	return s, nil
}

// Searcher returns the searcher registered under name. An empty name resolves
// to the default provider.
func (e *Engine) Searcher(name string) (*search.Searcher, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if name == "" {
		if len(e.order) == 0 {
			return nil, fmt.Errorf("%w: no providers registered", core.ErrProviderNotFound)
		}
		name = e.order[0]
	}

	s, ok := e.searchers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrProviderNotFound, name)
	}
	return s, nil
}

// Providers lists the registered provider names in registration order.
func (e *Engine) Providers() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]string(nil), e.order...)
}

// Search routes one query to the named provider. An unknown name fails
// immediately with ErrProviderNotFound; no query is executed.
func (e *Engine) Search(ctx context.Context, name string, query core.Query) (*core.ResultEnvelope, error) {
	s, err := e.Searcher(name)
	if err != nil {
		return nil, err
	}
	return s.Search(ctx, query)
}

// SearchMultiple fans the query out to the named providers concurrently and
// joins all results. Failures are isolated per provider: a provider whose
// query failed (or that is not registered) contributes an empty envelope
// instead of aborting the fan-out. An empty name list targets every
// registered provider.
func (e *Engine) SearchMultiple(ctx context.Context, names []string, query core.Query) (map[string]*core.ResultEnvelope, error) {
	if len(names) == 0 {
		names = e.Providers()
	}

	envelopes := make([]*core.ResultEnvelope, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			envelope, err := e.Search(ctx, name, query)
			if err != nil {
				e.logger.Warn("provider search failed during fan-out", "provider", name, "err", err)
				envelope = emptyEnvelope(query)
			}
			envelopes[i] = envelope
		}(i, name)
	}
	wg.Wait()

	results := make(map[string]*core.ResultEnvelope, len(names))
	for i, name := range names {
		results[name] = envelopes[i]
	}
	return results, nil
}

// Suggest aggregates prefix suggestions across all registered providers,
// deduplicated, sorted, and capped the same way a single provider's
// suggestions are.
func (e *Engine) Suggest(ctx context.Context, prefix string) ([]string, error) {
	seen := make(map[string]struct{})
	for _, name := range e.Providers() {
		s, err := e.Searcher(name)
		if err != nil {
			return nil, err
		}
		suggestions, err := s.Suggest(ctx, prefix)
		if err != nil {
			e.logger.Warn("provider suggest failed", "provider", name, "err", err)
			continue
		}
		for _, suggestion := range suggestions {
			seen[suggestion] = struct{}{}
		}
	}

	merged := make([]string, 0, len(seen))
	for suggestion := range seen {
		merged = append(merged, suggestion)
	}
	sort.Strings(merged)
	if len(merged) > 10 {
		merged = merged[:10]
	}
	return merged, nil
}

// Refresh rebuilds every provider's index.
func (e *Engine) Refresh(ctx context.Context) error {
	var errs []error
	for _, name := range e.Providers() {
		s, err := e.Searcher(name)
		if err != nil {
			return err
		}
		if err := s.Refresh(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Stats reports per-provider index statistics.
func (e *Engine) Stats() map[string]search.Stats {
	stats := make(map[string]search.Stats)
	for _, name := range e.Providers() {
		s, err := e.Searcher(name)
		if err != nil {
			continue
		}
		stats[name] = s.Stats()
	}
	return stats
}

// Close releases every searcher.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var errs []error
	for _, s := range e.searchers {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func emptyEnvelope(query core.Query) *core.ResultEnvelope {
	limit := query.Limit
	if limit <= 0 {
		limit = core.DefaultLimit
	}
	return &core.ResultEnvelope{
		Items:       []core.ResultItem{},
		CurrentPage: query.Offset/limit + 1,
		Query:       query,
	}
}
