package parser

import (
	"math"
	"strconv"
	"strings"
)

// emptyTokens are cell values treated as blank. Authors use dashes and
// n/a placeholders interchangeably with empty cells.
var emptyTokens = map[string]struct{}{
	"-":    {},
	"—":    {},
	"–":    {},
	"n/a":  {},
	"na":   {},
	"null": {},
	"none": {},
}

// normalizeCell collapses whitespace (including embedded newlines) and
// maps blank or placeholder values to nil. Numeric strings with an
// integral value lose their decimal point ("123.0" -> "123") so that
// tags typed as numbers round-trip cleanly.
func normalizeCell(s string) *string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return nil
	}
	if _, ok := emptyTokens[strings.ToLower(s)]; ok {
		return nil
	}
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) {
			s = strconv.FormatFloat(f, 'f', -1, 64)
		}
	}
	return &s
}

// joinGroup normalizes the cells at the given column indices and joins
// the non-blank parts with a single space. Columns beyond the end of the
// row are treated as blank. Returns nil when every part is blank.
func joinGroup(cells []string, cols []int) *string {
	var parts []string
	for _, c := range cols {
		if c >= len(cells) {
			continue
		}
		if v := normalizeCell(cells[c]); v != nil {
			parts = append(parts, *v)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	s := strings.Join(parts, " ")
	return &s
}

// hasAnyData reports whether any mapped column holds a non-blank value.
func hasAnyData(cells []string) bool {
	for _, c := range relevantCols {
		if c >= len(cells) {
			continue
		}
		if normalizeCell(cells[c]) != nil {
			return true
		}
	}
	return false
}

// hasFooterMarker reports whether the row looks like the start of the
// footer block below the data region.
func hasFooterMarker(cells []string) bool {
	var texts []string
	for _, c := range footerCheckCols {
		if c >= len(cells) {
			continue
		}
		if v := normalizeCell(cells[c]); v != nil {
			texts = append(texts, strings.ToUpper(*v))
		}
	}
	if len(texts) == 0 {
		return false
	}
	joined := strings.Join(texts, " | ")
	for _, k := range footerKeywords {
		if strings.Contains(joined, k) {
			return true
		}
	}
	return false
}
