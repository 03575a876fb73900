package search

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/poiesic/searchkit/core"
)

// stringifyField renders a raw field value for matching, highlighting, and
// filter comparison.
func stringifyField(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, " ")
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// resolveField looks up a dotted field path on a document's field map,
// descending into nested maps for each path segment. Returns nil when any
// segment is missing.
func resolveField(doc *core.IndexedDocument, path string) any {
	segments := strings.Split(path, ".")
	var current any = doc.Fields[segments[0]]
	for _, segment := range segments[1:] {
		nested, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = nested[segment]
	}
	return current
}

// numericValue coerces a field value to float64 for numeric comparison.
func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	}
	return 0, false
}
