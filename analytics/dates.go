package analytics

import (
	"strings"
	"time"
)

const dottedLayout = "02.01.2006 15:04:05"

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParsePaymentDate handles the two upstream timestamp formats:
// "DD.MM.YYYY HH:mm:ss" and ISO-8601. Format is detected by the dot
// separator in the date portion. Anything unparseable reports ok=false
// so the record can be excluded from date-bounded views; this function
// never panics.
func ParsePaymentDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	datePart := s
	if i := strings.IndexAny(s, " T"); i > 0 {
		datePart = s[:i]
	}

	if strings.Contains(datePart, ".") {
		if t, err := time.Parse(dottedLayout, s); err == nil {
			return t, true
		}
		if t, err := time.Parse("02.01.2006", datePart); err == nil {
			return t, true
		}
		return time.Time{}, false
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
