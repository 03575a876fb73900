package search

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/poiesic/searchkit/core"
)

// applyFilters retains the hits that satisfy every enabled filter, applied in
// list order as a logical AND. A filter that fails to evaluate (malformed
// regex, unknown operator) fails the whole query rather than silently
// presenting a false "no match".
func applyFilters(hits []hit, filters []core.Filter) ([]hit, error) {
	if len(filters) == 0 {
		return hits, nil
	}

	kept := make([]hit, 0, len(hits))
	for _, h := range hits {
		ok, err := matchesAll(h.doc, filters)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, h)
		}
	}
	return kept, nil
}

func matchesAll(doc *core.IndexedDocument, filters []core.Filter) (bool, error) {
	for _, filter := range filters {
		if !filter.Enabled {
			continue
		}
		match, err := evaluateFilter(doc, filter)
		if err != nil {
			return false, err
		}
		if !match {
			return false, nil
		}
	}
	return true, nil
}

// evaluateFilter resolves the filter's target field by dotted-path lookup and
// applies the operator. String comparisons are case-insensitive; regex
// patterns compile case-insensitively. Negate inverts the outcome.
func evaluateFilter(doc *core.IndexedDocument, filter core.Filter) (bool, error) {
	value := stringifyField(resolveField(doc, filter.Field))

	var match bool
	switch filter.Operator {
	case core.FilterContains:
		match = strings.Contains(strings.ToLower(value), strings.ToLower(filter.Value))
	case core.FilterEquals:
		match = strings.EqualFold(value, filter.Value)
	case core.FilterStartsWith:
		match = strings.HasPrefix(strings.ToLower(value), strings.ToLower(filter.Value))
	case core.FilterEndsWith:
		match = strings.HasSuffix(strings.ToLower(value), strings.ToLower(filter.Value))
	case core.FilterRegex:
		re, err := regexp.Compile("(?i)" + filter.Value)
		if err != nil {
			return false, fmt.Errorf("%w: %v", core.ErrMalformedRegex, err)
		}
		match = re.MatchString(value)
	default:
		return false, fmt.Errorf("%w: %q", core.ErrUnknownOperator, filter.Operator)
	}

	if filter.Negate {
		match = !match
	}
	return match, nil
}
