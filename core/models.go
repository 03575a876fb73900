package core

import (
	"encoding/hex"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for indexed documents and domain records.
// IDs are stable strings, unique within one provider's corpus.
type ID string

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	return ID(hex.EncodeToString(h.Sum(nil)))
}

// MinBoost is the floor for a document's static boost. Projections are clamped
// to this value so a document can never score zero or negative from its boost alone.
const MinBoost = 0.1

// IndexedDocument is the engine-internal representation of one source record.
type IndexedDocument struct {
	ID ID
	// Content is the lowercase concatenation of all searchable field values,
	// used for whole-text substring and fuzzy matching.
	Content string
	// Fields holds raw (non-lowercased) field values keyed by field name,
	// used for field-specific scoring, filtering, sorting, and highlighting.
	Fields map[string]any
	// Boost is a static relevance multiplier computed once at index time.
	// Always >= MinBoost.
	Boost float64
	// Type tags the source entity kind (e.g. "task", "notebook").
	Type        string
	LastIndexed time.Time
}

// FieldType enumerates the kinds of values a declared field can hold.
type FieldType string

const (
	FieldTypeText        FieldType = "text"
	FieldTypeSelect      FieldType = "select"
	FieldTypeMultiSelect FieldType = "multi-select"
	FieldTypeDate        FieldType = "date"
	FieldTypeBoolean     FieldType = "boolean"
	FieldTypeNumber      FieldType = "number"
)

// FieldDescriptor declares one field of a provider's schema. It is metadata
// only and is not stored per document.
type FieldDescriptor struct {
	Key        string
	Label      string
	Type       FieldType
	Searchable bool
	Filterable bool
	Sortable   bool
	// Options enumerates the allowed values for select and multi-select fields.
	Options []string
}

// Analyzer controls how a scoring field's value is processed during matching.
type Analyzer string

const (
	// AnalyzerText applies case folding before matching.
	AnalyzerText Analyzer = "text"
	// AnalyzerKeyword matches the value verbatim.
	AnalyzerKeyword Analyzer = "keyword"
)

// ScoringField configures the per-field weight applied when a query term
// occurs in that field's value.
type ScoringField struct {
	Name     string
	Boost    float64
	Analyzer Analyzer
}

// FilterOperator names the comparison a structured filter performs.
type FilterOperator string

const (
	FilterContains   FilterOperator = "contains"
	FilterEquals     FilterOperator = "equals"
	FilterStartsWith FilterOperator = "startsWith"
	FilterEndsWith   FilterOperator = "endsWith"
	FilterRegex      FilterOperator = "regex"
)

// Filter is one structured predicate applied after text search. Filters are
// evaluated in list order as a logical AND.
type Filter struct {
	Field    string
	Operator FilterOperator
	Value    string
	Enabled  bool
	Negate   bool
}

// SortDirection orders sorted results ascending or descending.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// SortSpec requests a stable sort of the post-filter result set.
type SortSpec struct {
	Field     string
	Direction SortDirection
}

// DefaultLimit is the page size used when a query does not specify one.
const DefaultLimit = 20

// Query is a single search request. Text may be empty, in which case the
// query runs in filter-only mode over the whole index.
type Query struct {
	Text    string
	Filters []Filter
	Sort    *SortSpec
	// Limit is the page size; 0 means DefaultLimit.
	Limit  int
	Offset int
}

// Highlight carries the marked fragments extracted from one field.
type Highlight struct {
	Field     string
	Fragments []string
}

// ResultItem is one ranked result, carrying the original typed record.
type ResultItem struct {
	Record        any
	Score         float64
	Highlights    []Highlight
	Snippet       string
	MatchedFields []string
}

// ResultEnvelope is the shaped response for one query.
type ResultEnvelope struct {
	Items       []ResultItem
	TotalCount  int
	TotalPages  int
	CurrentPage int
	HasMore     bool
	Took        time.Duration
	Query       Query
}

// TaskStatus identifies the workflow state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusArchived   TaskStatus = "archived"
)

// TaskPriority identifies the urgency of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// Task is a domain record indexed by the task provider.
type Task struct {
	Id          ID
	Title       string
	Description string
	Status      TaskStatus
	Priority    TaskPriority
	Tags        []string
	DueDate     time.Time // zero means no due date
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Notebook is a domain record indexed by the notebook provider.
type Notebook struct {
	Id          ID
	Name        string
	Description string
	Tags        []string
	Pinned      bool
	NoteCount   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
