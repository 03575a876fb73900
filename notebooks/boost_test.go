package notebooks

import (
	"math"
	"testing"
	"time"

	"github.com/poiesic/searchkit/core"
	"github.com/stretchr/testify/assert"
)

var boostNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestBoost_Baseline(t *testing.T) {
	assert.InDelta(t, 1.0, Boost(&core.Notebook{}, boostNow), 1e-9)
}

func TestBoost_Pinned(t *testing.T) {
	assert.InDelta(t, 1.4, Boost(&core.Notebook{Pinned: true}, boostNow), 1e-9)
}

func TestBoost_Activity(t *testing.T) {
	small := Boost(&core.Notebook{NoteCount: 5}, boostNow)
	assert.InDelta(t, 1.0+0.1*math.Log1p(5), small, 1e-9)

	large := Boost(&core.Notebook{NoteCount: 100}, boostNow)
	assert.Greater(t, large, small)

	// Activity is capped; a huge notebook cannot outgrow the cap.
	huge := Boost(&core.Notebook{NoteCount: 1_000_000}, boostNow)
	assert.InDelta(t, 1.5, huge, 1e-9)
}

func TestBoost_Recency(t *testing.T) {
	recent := Boost(&core.Notebook{UpdatedAt: boostNow.Add(-24 * time.Hour)}, boostNow)
	assert.InDelta(t, 1.2, recent, 1e-9)

	stale := Boost(&core.Notebook{UpdatedAt: boostNow.Add(-30 * 24 * time.Hour)}, boostNow)
	assert.InDelta(t, 1.0, stale, 1e-9)
}

func TestBoost_Stacking(t *testing.T) {
	notebook := &core.Notebook{
		Pinned:    true,
		NoteCount: 1_000_000,
		UpdatedAt: boostNow.Add(-time.Hour),
	}
	assert.InDelta(t, 2.1, Boost(notebook, boostNow), 1e-9)
}
