package search

import (
	"regexp"
	"strings"

	"github.com/poiesic/searchkit/core"
)

const (
	// highlightMarker delimits matched terms in fragments.
	highlightMarker = "**"

	// maxFragmentsPerField bounds fragment extraction per field.
	maxFragmentsPerField = 3

	// fallbackLength is the prefix taken from the raw value when marks exist
	// but fragment extraction yields nothing usable.
	fallbackLength = 150
)

// Highlighter extracts short marked fragments of matched text per scoring
// field. Highlighting is purely presentational and never mutates the document.
type Highlighter struct {
	fields []core.ScoringField
}

// NewHighlighter creates a highlighter from the provider's index configuration.
func NewHighlighter(cfg core.IndexConfig) *Highlighter {
	return &Highlighter{fields: cfg.Fields}
}

// Highlight wraps every case-insensitive occurrence of every query term in
// the marker delimiter and extracts up to maxFragmentsPerField fragments per
// field, each with one segment of surrounding context. Fields without a
// single mark contribute no entry.
func (h *Highlighter) Highlight(doc *core.IndexedDocument, terms []string) []core.Highlight {
	if len(terms) == 0 {
		return nil
	}

	highlights := make([]core.Highlight, 0, len(h.fields))
	for _, field := range h.fields {
		value, ok := doc.Fields[field.Name]
		if !ok {
			continue
		}
		text := stringifyField(value)
		if text == "" {
			continue
		}

		marked, matched := markTerms(text, terms)
		if !matched {
			continue
		}

		fragments := extractFragments(marked)
		if len(fragments) == 0 {
			fragments = []string{truncateFallback(text)}
		}

		highlights = append(highlights, core.Highlight{
			Field:     field.Name,
			Fragments: fragments,
		})
	}

	return highlights
}

// markTerms wraps all case-insensitive occurrences of each term in the
// marker delimiter. Terms contain only word characters, so a term can never
// match inside a previously inserted marker.
func markTerms(text string, terms []string) (string, bool) {
	marked := text
	matched := false
	for _, term := range terms {
		if term == "" {
			continue
		}
		re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(term))
		if err != nil {
			continue
		}
		replaced := re.ReplaceAllString(marked, highlightMarker+"$0"+highlightMarker)
		if replaced != marked {
			matched = true
			marked = replaced
		}
	}
	return marked, matched
}

// extractFragments splits marked text on marker boundaries and, for each
// marked segment, emits it with one unmarked segment of context on either
// side, trimmed of surrounding whitespace.
func extractFragments(marked string) []string {
	parts := strings.Split(marked, highlightMarker)
	var fragments []string

	// Odd indexes are the marked segments.
	for i := 1; i < len(parts); i += 2 {
		if len(fragments) == maxFragmentsPerField {
			break
		}
		var sb strings.Builder
		sb.WriteString(parts[i-1])
		sb.WriteString(highlightMarker)
		sb.WriteString(parts[i])
		sb.WriteString(highlightMarker)
		if i+1 < len(parts) {
			sb.WriteString(parts[i+1])
		}
		fragment := strings.TrimSpace(sb.String())
		if fragment == "" || fragment == highlightMarker+highlightMarker {
			continue
		}
		fragments = append(fragments, fragment)
	}

	return fragments
}

func truncateFallback(text string) string {
	runes := []rune(text)
	if len(runes) <= fallbackLength {
		return text + "…"
	}
	return string(runes[:fallbackLength]) + "…"
}
