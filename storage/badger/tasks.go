package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/searchkit/core"
	"github.com/poiesic/searchkit/storage"
)

// TaskRepository implements storage.TaskRepository for BadgerDB.
type TaskRepository struct {
	backend *Backend
}

var _ storage.TaskRepository = (*TaskRepository)(nil)

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(backend *Backend) *TaskRepository {
	return &TaskRepository{backend: backend}
}

// Close is a no-op; the backend owns the database handle.
func (r *TaskRepository) Close() error {
	return nil
}

// AddTasks adds one or more tasks to storage.
func (r *TaskRepository) AddTasks(ctx context.Context, tasks ...*core.Task) ([]*core.Task, error) {
	for _, task := range tasks {
		if err := core.ValidateTask(task); err != nil {
			return nil, err
		}
	}

	err := r.backend.Update(func(tx *badger.Txn) error {
		now := time.Now().UTC()
		for _, task := range tasks {
			if task.Id == "" {
				task.Id = core.IDFromContent("task\x00" + task.Title + "\x00" + task.Description)
			}
			if task.CreatedAt.IsZero() {
				task.CreatedAt = now
			}
			if task.UpdatedAt.IsZero() {
				task.UpdatedAt = task.CreatedAt
			}
			if err := tx.Set(makeTaskKey(task.Id), storage.MarshalTask(task)); err != nil {
				return err
			}
		}
		return nil
	})

	return tasks, err
}

// GetTask retrieves a single task by ID.
func (r *TaskRepository) GetTask(ctx context.Context, id core.ID) (*core.Task, error) {
	var task *core.Task
	err := r.backend.View(func(tx *badger.Txn) error {
		item, err := tx.Get(makeTaskKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			task, err = storage.UnmarshalTask(val)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// ListTasks retrieves the full current collection in key order.
func (r *TaskRepository) ListTasks(ctx context.Context) ([]*core.Task, error) {
	var tasks []*core.Task
	err := r.backend.View(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = taskPrefix
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Seek(taskPrefix); it.ValidForPrefix(taskPrefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				task, err := storage.UnmarshalTask(val)
				if err != nil {
					return err
				}
				tasks = append(tasks, task)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// DeleteTasks removes tasks by their IDs.
func (r *TaskRepository) DeleteTasks(ctx context.Context, ids ...core.ID) error {
	return r.backend.Update(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeTaskKey(id)
			if _, err := tx.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			} else if err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}
