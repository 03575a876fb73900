package tasks

import (
	"time"

	"github.com/poiesic/searchkit/core"
)

// Static boost rules. Each rule is a pure function of the task and the
// reference time so it can be tested in isolation; Boost combines them and
// clamps to the floor.

const (
	recencyWindow = 7 * 24 * time.Hour
	recencyBonus  = 0.2

	dueSoonWindow = 3 * 24 * time.Hour
	dueSoonBonus  = 0.3
)

// Boost computes the static relevance multiplier for a task at index time.
func Boost(task *core.Task, now time.Time) float64 {
	b := priorityBoost(task.Priority)
	b += recencyBoost(task.UpdatedAt, now)
	b += dueSoonBoost(task.DueDate, task.Status, now)
	if b < core.MinBoost {
		b = core.MinBoost
	}
	return b
}

// priorityBoost is the base multiplier per priority level.
func priorityBoost(priority core.TaskPriority) float64 {
	switch priority {
	case core.TaskPriorityUrgent:
		return 1.5
	case core.TaskPriorityHigh:
		return 1.3
	case core.TaskPriorityMedium:
		return 1.1
	default:
		return 1.0
	}
}

// recencyBoost rewards tasks touched within the recency window.
func recencyBoost(updatedAt, now time.Time) float64 {
	if updatedAt.IsZero() {
		return 0
	}
	if now.Sub(updatedAt) <= recencyWindow {
		return recencyBonus
	}
	return 0
}

// dueSoonBoost rewards open tasks due within the due-soon window. Completed
// and archived tasks get nothing regardless of due date.
func dueSoonBoost(dueDate time.Time, status core.TaskStatus, now time.Time) float64 {
	if dueDate.IsZero() {
		return 0
	}
	if status == core.TaskStatusCompleted || status == core.TaskStatusArchived {
		return 0
	}
	until := dueDate.Sub(now)
	if until >= 0 && until <= dueSoonWindow {
		return dueSoonBonus
	}
	return 0
}
