package badger

import "github.com/poiesic/searchkit/core"

// Key prefixes keep each record kind in its own key range so a prefix scan
// yields exactly one collection.
var (
	taskPrefix     = []byte("task:")
	notebookPrefix = []byte("notebook:")
)

func makeTaskKey(id core.ID) []byte {
	return append(append([]byte{}, taskPrefix...), []byte(id)...)
}

func makeNotebookKey(id core.ID) []byte {
	return append(append([]byte{}, notebookPrefix...), []byte(id)...)
}
