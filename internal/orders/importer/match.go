package importer

import "strings"

// Match is the quality of an alias hit on a header cell.
type Match int

const (
	MatchNone Match = iota
	MatchPartial
	MatchExact
)

func normalizeCell(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MatchAlias classifies a cell against the known spellings of one logical
// column. Containment runs both ways on purpose: a header like
// "رقم الشحن (مطلوب)" still hits the alias "رقم الشحن".
func MatchAlias(cell string, aliases []string) Match {
	c := normalizeCell(cell)
	if c == "" {
		return MatchNone
	}
	for _, a := range aliases {
		if normalizeCell(a) == c {
			return MatchExact
		}
	}
	for _, a := range aliases {
		na := normalizeCell(a)
		if strings.Contains(c, na) || strings.Contains(na, c) {
			return MatchPartial
		}
	}
	return MatchNone
}
