package storage

import (
	"context"

	"github.com/poiesic/searchkit/core"
)

// TaskRepository provides operations for managing task records. It is the
// backing collection the task provider enumerates when building its index.
// Implementations must be thread-safe and support concurrent access.
type TaskRepository interface {
	// AddTasks adds one or more tasks to storage.
	// For tasks with an empty Id, generates a content-based ID.
	// Sets CreatedAt and UpdatedAt timestamps if not already set.
	// Returns the tasks with IDs and timestamps populated.
	AddTasks(ctx context.Context, tasks ...*core.Task) ([]*core.Task, error)

	// GetTask retrieves a single task by ID.
	// Returns ErrNotFound if the task doesn't exist.
	GetTask(ctx context.Context, id core.ID) (*core.Task, error)

	// ListTasks retrieves the full current collection in stable (key) order.
	ListTasks(ctx context.Context) ([]*core.Task, error)

	// DeleteTasks removes tasks by their IDs.
	// Returns ErrNotFound if any task doesn't exist.
	DeleteTasks(ctx context.Context, ids ...core.ID) error

	// Close releases repository resources.
	Close() error
}

// NotebookRepository provides operations for managing notebook records.
type NotebookRepository interface {
	// AddNotebooks adds one or more notebooks to storage.
	// For notebooks with an empty Id, generates a content-based ID.
	// Sets CreatedAt and UpdatedAt timestamps if not already set.
	AddNotebooks(ctx context.Context, notebooks ...*core.Notebook) ([]*core.Notebook, error)

	// GetNotebook retrieves a single notebook by ID.
	// Returns ErrNotFound if the notebook doesn't exist.
	GetNotebook(ctx context.Context, id core.ID) (*core.Notebook, error)

	// ListNotebooks retrieves the full current collection in stable (key) order.
	ListNotebooks(ctx context.Context) ([]*core.Notebook, error)

	// DeleteNotebooks removes notebooks by their IDs.
	// Returns ErrNotFound if any notebook doesn't exist.
	DeleteNotebooks(ctx context.Context, ids ...core.ID) error

	// Close releases repository resources.
	Close() error
}
