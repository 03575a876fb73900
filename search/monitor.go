package search

import "github.com/poiesic/searchkit/core"

// SearchMonitor provides hooks to observe the query pipeline.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query core.Query)
	AfterTokenize(terms []string)
	AfterScore(matched int)
	AfterFilter(remaining int)
	Finish(envelope *core.ResultEnvelope)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ core.Query)            {}
func (n *noopMonitor) AfterTokenize(_ []string)      {}
func (n *noopMonitor) AfterScore(_ int)              {}
func (n *noopMonitor) AfterFilter(_ int)             {}
func (n *noopMonitor) Finish(_ *core.ResultEnvelope) {}
