package urbanpark

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// NormalizeString trims the value and returns nil for an empty result.
func NormalizeString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ParseFloat parses a float permissively; empty or invalid input yields nil.
// strconv accepts the literals "NaN" and "Inf", which would poison distance
// math downstream, so non-finite results yield nil too.
func ParseFloat(value string) *float64 {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return nil
	}
	return &parsed
}

// ParseDate validates a date strictly against YYYY-MM-DD and rejects values
// that are not real calendar dates. Returns the trimmed string on success,
// nil otherwise.
func ParseDate(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	if !dateRe.MatchString(trimmed) {
		return nil
	}
	if _, err := time.Parse("2006-01-02", trimmed); err != nil {
		return nil
	}
	return &trimmed
}
