package badger

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/searchkit/core"
	"github.com/poiesic/searchkit/storage"
)

// NotebookRepository implements storage.NotebookRepository for BadgerDB.
type NotebookRepository struct {
	backend *Backend
}

var _ storage.NotebookRepository = (*NotebookRepository)(nil)

// NewNotebookRepository creates a new NotebookRepository.
func NewNotebookRepository(backend *Backend) *NotebookRepository {
	return &NotebookRepository{backend: backend}
}

// Close is a no-op; the backend owns the database handle.
func (r *NotebookRepository) Close() error {
	return nil
}

// AddNotebooks adds one or more notebooks to storage.
func (r *NotebookRepository) AddNotebooks(ctx context.Context, notebooks ...*core.Notebook) ([]*core.Notebook, error) {
	for _, notebook := range notebooks {
		if err := core.ValidateNotebook(notebook); err != nil {
			return nil, err
		}
	}

	err := r.backend.Update(func(tx *badger.Txn) error {
		now := time.Now().UTC()
		for _, notebook := range notebooks {
			if notebook.Id == "" {
				notebook.Id = core.IDFromContent("notebook\x00" + notebook.Name)
			}
			if notebook.CreatedAt.IsZero() {
				notebook.CreatedAt = now
			}
			if notebook.UpdatedAt.IsZero() {
				notebook.UpdatedAt = notebook.CreatedAt
			}
			if err := tx.Set(makeNotebookKey(notebook.Id), storage.MarshalNotebook(notebook)); err != nil {
				return err
			}
		}
		return nil
	})

	return notebooks, err
}

// GetNotebook retrieves a single notebook by ID.
func (r *NotebookRepository) GetNotebook(ctx context.Context, id core.ID) (*core.Notebook, error) {
	var notebook *core.Notebook
	err := r.backend.View(func(tx *badger.Txn) error {
		item, err := tx.Get(makeNotebookKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			notebook, err = storage.UnmarshalNotebook(val)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return notebook, nil
}

// ListNotebooks retrieves the full current collection in key order.
func (r *NotebookRepository) ListNotebooks(ctx context.Context) ([]*core.Notebook, error) {
	var notebooks []*core.Notebook
	err := r.backend.View(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = notebookPrefix
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Seek(notebookPrefix); it.ValidForPrefix(notebookPrefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				notebook, err := storage.UnmarshalNotebook(val)
				if err != nil {
					return err
				}
				notebooks = append(notebooks, notebook)
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
	return notebooks, nil
}

// DeleteNotebooks removes notebooks by their IDs.
func (r *NotebookRepository) DeleteNotebooks(ctx context.Context, ids ...core.ID) error {
	return r.backend.Update(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeNotebookKey(id)
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
