package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the domain records persisted by the storage layer.
// Hand-written against the mus-go primitives; field order is the wire format
// and must not change between releases.

// TaskMUS serializes Task values.
var TaskMUS = taskMUS{}

// NotebookMUS serializes Notebook values.
var NotebookMUS = notebookMUS{}

type taskMUS struct{}

func (taskMUS) Marshal(v Task, bs []byte) (n int) {
	n = ord.String.Marshal(string(v.Id), bs)
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Description, bs[n:])
	n += ord.String.Marshal(string(v.Status), bs[n:])
	n += ord.String.Marshal(string(v.Priority), bs[n:])
	n += marshalStrings(v.Tags, bs[n:])
	n += marshalTime(v.DueDate, bs[n:])
	n += marshalTime(v.CreatedAt, bs[n:])
	n += marshalTime(v.UpdatedAt, bs[n:])
	return
}

func (taskMUS) Unmarshal(bs []byte) (v Task, n int, err error) {
	var (
		id, status, priority string
		n1                   int
	)
	id, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Id = ID(id)
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	status, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Status = TaskStatus(status)
	priority, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Priority = TaskPriority(priority)
	v.Tags, n1, err = unmarshalStrings(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.DueDate, n1, err = unmarshalTime(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt, n1, err = unmarshalTime(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = unmarshalTime(bs[n:])
	n += n1
	return
}

func (taskMUS) Size(v Task) (size int) {
	size = ord.String.Size(string(v.Id))
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Description)
	size += ord.String.Size(string(v.Status))
	size += ord.String.Size(string(v.Priority))
	size += sizeStrings(v.Tags)
	size += sizeTime(v.DueDate)
	size += sizeTime(v.CreatedAt)
	size += sizeTime(v.UpdatedAt)
	return
}

type notebookMUS struct{}

func (notebookMUS) Marshal(v Notebook, bs []byte) (n int) {
	n = ord.String.Marshal(string(v.Id), bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += ord.String.Marshal(v.Description, bs[n:])
	n += marshalStrings(v.Tags, bs[n:])
	n += ord.Bool.Marshal(v.Pinned, bs[n:])
	n += varint.Int.Marshal(v.NoteCount, bs[n:])
	n += marshalTime(v.CreatedAt, bs[n:])
	n += marshalTime(v.UpdatedAt, bs[n:])
	return
}

func (notebookMUS) Unmarshal(bs []byte) (v Notebook, n int, err error) {
	var (
		id string
		n1 int
	)
	id, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Id = ID(id)
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Tags, n1, err = unmarshalStrings(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Pinned, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.NoteCount, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt, n1, err = unmarshalTime(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = unmarshalTime(bs[n:])
	n += n1
	return
}

func (notebookMUS) Size(v Notebook) (size int) {
	size = ord.String.Size(string(v.Id))
	size += ord.String.Size(v.Name)
	size += ord.String.Size(v.Description)
	size += sizeStrings(v.Tags)
	size += ord.Bool.Size(v.Pinned)
	size += varint.Int.Size(v.NoteCount)
	size += sizeTime(v.CreatedAt)
	size += sizeTime(v.UpdatedAt)
	return
}

func marshalStrings(v []string, bs []byte) (n int) {
	n = varint.Int.Marshal(len(v), bs)
	for _, s := range v {
		n += ord.String.Marshal(s, bs[n:])
	}
	return
}

func unmarshalStrings(bs []byte) (v []string, n int, err error) {
	var length, n1 int
	length, n, err = varint.Int.Unmarshal(bs)
	if err != nil || length == 0 {
		return
	}
	v = make([]string, length)
	for i := range v {
		v[i], n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}

func sizeStrings(v []string) (size int) {
	size = varint.Int.Size(len(v))
	for _, s := range v {
		size += ord.String.Size(s)
	}
	return
}

// Times are stored as a zero flag plus Unix seconds and nanoseconds. UnixNano
// alone cannot represent the zero time, which Task.DueDate uses for "no due date".
func marshalTime(t time.Time, bs []byte) (n int) {
	n = ord.Bool.Marshal(t.IsZero(), bs)
	if t.IsZero() {
		return
	}
	n += varint.Int64.Marshal(t.Unix(), bs[n:])
	n += varint.Int64.Marshal(int64(t.Nanosecond()), bs[n:])
	return
}

func unmarshalTime(bs []byte) (t time.Time, n int, err error) {
	var zero bool
	zero, n, err = ord.Bool.Unmarshal(bs)
	if err != nil || zero {
		return
	}
	var seconds, nanos int64
	var n1 int
	seconds, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	nanos, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	t = time.Unix(seconds, nanos).UTC()
	return
}

func sizeTime(t time.Time) (size int) {
	size = ord.Bool.Size(t.IsZero())
	if t.IsZero() {
		return
	}
	size += varint.Int64.Size(t.Unix())
	size += varint.Int64.Size(int64(t.Nanosecond()))
	return
}
