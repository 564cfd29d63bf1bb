package importer

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	rxPriceKeep = regexp.MustCompile(`[^\d.,\-]`)
	// a comma followed by exactly three digits and then a non-digit (or the
	// end of the string) is a thousands group, not a decimal point
	rxThousands = regexp.MustCompile(`,\d{3}($|[^0-9])`)
)

// ParsePrice converts an arbitrary price cell into an amount. Courier sheets
// mix "1,234.56", "12,5", "150 $" and plain numbers; anything unparsable is 0.
func ParsePrice(cell string) float64 {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0
	}
	cleaned := rxPriceKeep.ReplaceAllString(s, "")
	if rxThousands.MatchString(cleaned) {
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	} else {
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return f
}
