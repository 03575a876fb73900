package search

import (
	"sort"
	"strings"
	"time"

	"github.com/poiesic/searchkit/core"
)

// sortHits stable-sorts hits by the resolved field value. String fields
// compare lexicographically, numeric fields numerically, date fields by
// instant; anything else falls back to string comparison. Equal values keep
// their post-filter order.
func sortHits(hits []hit, spec core.SortSpec) {
	sort.SliceStable(hits, func(i, j int) bool {
		a := resolveField(hits[i].doc, spec.Field)
		b := resolveField(hits[j].doc, spec.Field)
		cmp := compareValues(a, b)
		if spec.Direction == core.SortDescending {
			return cmp > 0
		}
		return cmp < 0
	})
}

func compareValues(a, b any) int {
	if at, aok := a.(time.Time); aok {
		if bt, bok := b.(time.Time); bok {
			return at.Compare(bt)
		}
	}

	if af, aok := numericValue(a); aok {
		if bf, bok := numericValue(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	return strings.Compare(stringifyField(a), stringifyField(b))
}
