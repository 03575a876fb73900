package search

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/searchkit/core"
	"github.com/poiesic/searchkit/index"
	"github.com/poiesic/searchkit/provider"
)

// maxSuggestions bounds the distinct tokens returned by Suggest.
const maxSuggestions = 10

// Searcher runs the query pipeline for one provider: text search or
// filter-only enumeration, then structured filters, sort, and pagination.
// The index is built lazily on first query and rebuilt with Refresh; rebuilds
// swap a single reference, so a concurrent search observes either the old or
// the new index, never a mixture.
type Searcher struct {
	provider    provider.Provider
	tokenizer   *index.Tokenizer
	scorer      *Scorer
	highlighter *Highlighter
	pool        *ants.Pool
	idx         atomic.Pointer[index.Index]
	buildMu     sync.Mutex
	logger      *slog.Logger
}

// hit pairs a shaped result item with the indexed document it came from. The
// document drives filter and sort field resolution after formatting.
type hit struct {
	item core.ResultItem
	doc  *core.IndexedDocument
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size for parallel document scoring.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Searcher) error {
		if size < 1 {
			size = 1
		}
		if s.pool != nil {
			s.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		s.pool = pool
		return nil
	}
}

// NewSearcher creates a searcher for the given provider.
func NewSearcher(p provider.Provider, opts ...Option) (*Searcher, error) {
	if p == nil {
		return nil, ErrProviderRequired
	}

	cfg := p.IndexConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	s := &Searcher{
		provider:    p,
		tokenizer:   index.NewTokenizer(cfg),
		scorer:      NewScorer(cfg),
		highlighter: NewHighlighter(cfg),
		pool:        pool,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			s.pool.Release()
			return nil, err
		}
	}

	return s, nil
}

// Close releases the scoring pool.
func (s *Searcher) Close() error {
	s.pool.Release()
	return nil
}

// Provider returns the provider this searcher serves.
func (s *Searcher) Provider() provider.Provider {
	return s.provider
}

// Refresh rebuilds the index from the provider's current collection. On
// enumeration failure the previous index is kept.
func (s *Searcher) Refresh(ctx context.Context) error {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	idx, err := index.Build(ctx, s.provider)
	if err != nil {
		s.logger.Error("error rebuilding index", "provider", s.provider.Name(), "err", err)
		return err
	}

	s.idx.Store(idx)
	return nil
}

func (s *Searcher) ensureIndex(ctx context.Context) (*index.Index, error) {
	if idx := s.idx.Load(); idx != nil {
		return idx, nil
	}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return s.idx.Load(), nil
}

// Search executes one query to completion.
func (s *Searcher) Search(ctx context.Context, query core.Query) (*core.ResultEnvelope, error) {
	return s.SearchWithMonitor(ctx, query, nil)
}

// SearchWithMonitor executes one query with per-stage monitoring callbacks.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query core.Query, monitor SearchMonitor) (*core.ResultEnvelope, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	started := time.Now()
	monitor.Start(query)

	if err := core.ValidateQuery(&query); err != nil {
		return nil, err
	}

	idx, err := s.ensureIndex(ctx)
	if err != nil {
		return nil, err
	}

	var hits []hit
	if strings.TrimSpace(query.Text) != "" {
		hits, err = s.textSearch(ctx, idx, query.Text, monitor)
	} else {
		hits, err = s.enumerateAll(ctx, idx)
		monitor.AfterScore(len(hits))
	}
	if err != nil {
		return nil, err
	}

	hits, err = applyFilters(hits, query.Filters)
	if err != nil {
		return nil, err
	}
	monitor.AfterFilter(len(hits))

	if query.Sort != nil {
		sortHits(hits, *query.Sort)
	}

	envelope := paginate(hits, query)
	envelope.Took = time.Since(started)
	monitor.Finish(envelope)

	return envelope, nil
}

// textSearch scores every indexed document against the tokenized query,
// keeps positive scores, highlights them, and maps each back to its original
// record. Results are ordered by descending score with enumeration order as
// the stable tie-break.
func (s *Searcher) textSearch(ctx context.Context, idx *index.Index, text string, monitor SearchMonitor) ([]hit, error) {
	terms := s.tokenizer.Tokenize(text)
	monitor.AfterTokenize(terms)
	if len(terms) == 0 {
		monitor.AfterScore(0)
		return nil, nil
	}

	docs := make([]*core.IndexedDocument, 0, idx.Len())
	for doc := range idx.Documents() {
		docs = append(docs, doc)
	}

	// Per-document scoring is pure, so it fans out across the pool. Each
	// worker writes its own slot; the wait group is the only coordination.
	scores := make([]float64, len(docs))
	var wg sync.WaitGroup
	for i := range docs {
		wg.Add(1)
		i := i
		if err := s.pool.Submit(func() {
			defer wg.Done()
			scores[i] = s.scorer.Score(docs[i], terms)
		}); err != nil {
			// Pool unavailable; score inline.
			scores[i] = s.scorer.Score(docs[i], terms)
			wg.Done()
		}
	}
	wg.Wait()

	hits := make([]hit, 0, len(docs))
	for i, doc := range docs {
		if scores[i] <= 0 {
			continue
		}
		record, err := s.provider.FindOriginal(ctx, doc.ID)
		if err != nil {
			return nil, err
		}
		if record == nil {
			// Record disappeared since the last rebuild.
			continue
		}
		highlights := s.highlighter.Highlight(doc, terms)
		hits = append(hits, hit{
			item: s.provider.Format(record, scores[i], highlights),
			doc:  doc,
		})
	}
	monitor.AfterScore(len(hits))

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].item.Score > hits[j].item.Score
	})

	return hits, nil
}

// enumerateAll returns every indexed document with a uniform score of 1.0 and
// no highlights, in enumeration order.
func (s *Searcher) enumerateAll(ctx context.Context, idx *index.Index) ([]hit, error) {
	hits := make([]hit, 0, idx.Len())
	for doc := range idx.Documents() {
		record, err := s.provider.FindOriginal(ctx, doc.ID)
		if err != nil {
			return nil, err
		}
		if record == nil {
			continue
		}
		hits = append(hits, hit{
			item: s.provider.Format(record, 1.0, nil),
			doc:  doc,
		})
	}
	return hits, nil
}

// paginate slices [offset, offset+limit) and fills the paging metadata.
func paginate(hits []hit, query core.Query) *core.ResultEnvelope {
	limit := query.Limit
	if limit <= 0 {
		limit = core.DefaultLimit
	}
	offset := query.Offset

	total := len(hits)
	start := min(offset, total)
	end := min(offset+limit, total)

	items := make([]core.ResultItem, 0, end-start)
	for _, h := range hits[start:end] {
		items = append(items, h.item)
	}

	return &core.ResultEnvelope{
		Items:       items,
		TotalCount:  total,
		TotalPages:  (total + limit - 1) / limit,
		CurrentPage: offset/limit + 1,
		HasMore:     offset+len(items) < total,
		Query:       query,
	}
}

// Suggest scans indexed content for tokens with the given prefix and returns
// up to maxSuggestions distinct matches in lexicographic order. It is derived
// entirely from the current index.
func (s *Searcher) Suggest(ctx context.Context, prefix string) ([]string, error) {
	prefix = strings.TrimSpace(s.tokenizer.Normalize(prefix))
	if prefix == "" {
		return nil, nil
	}

	idx, err := s.ensureIndex(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for doc := range idx.Documents() {
		for _, token := range s.tokenizer.Tokenize(doc.Content) {
			if strings.HasPrefix(token, prefix) {
				seen[token] = struct{}{}
			}
		}
	}

	suggestions := make([]string, 0, len(seen))
	for token := range seen {
		suggestions = append(suggestions, token)
	}
	sort.Strings(suggestions)
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions, nil
}

// Stats reports the size and build time of the current index. Zero values
// mean the index has not been built yet.
func (s *Searcher) Stats() Stats {
	idx := s.idx.Load()
	if idx == nil {
		return Stats{}
	}
	return Stats{
		Documents:   idx.Len(),
		LastIndexed: idx.BuiltAt(),
	}
}

// Stats describes one provider's index.
type Stats struct {
	Documents   int
	LastIndexed time.Time
}
