package notebooks

import (
	"math"
	"time"

	"github.com/poiesic/searchkit/core"
)

const (
	pinnedBonus = 0.4

	activityScale = 0.1
	activityCap   = 0.5

	recencyWindow = 7 * 24 * time.Hour
	recencyBonus  = 0.2
)

// Boost computes the static relevance multiplier for a notebook at index
// time. Each rule is a pure function so it can be tested in isolation.
func Boost(notebook *core.Notebook, now time.Time) float64 {
	b := 1.0
	b += pinnedBoost(notebook.Pinned)
	b += activityBoost(notebook.NoteCount)
	b += recencyBoost(notebook.UpdatedAt, now)
	if b < core.MinBoost {
		b = core.MinBoost
	}
	return b
}

func pinnedBoost(pinned bool) float64 {
	if pinned {
		return pinnedBonus
	}
	return 0
}

// activityBoost grows logarithmically with note count and is capped so large
// notebooks cannot drown out relevance.
func activityBoost(noteCount int) float64 {
	if noteCount <= 0 {
		return 0
	}
	return min(activityScale*math.Log1p(float64(noteCount)), activityCap)
}

func recencyBoost(updatedAt, now time.Time) float64 {
	if updatedAt.IsZero() {
		return 0
	}
	if now.Sub(updatedAt) <= recencyWindow {
		return recencyBonus
	}
	return 0
}
