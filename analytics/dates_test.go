package analytics

import (
	"testing"
	"time"
)

func TestParsePaymentDate(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
		ok    bool
	}{
		{"01.01.2024 10:00:00", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), true},
		{"31.12.2023 23:59:59", time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC), true},
		{"15.06.2024", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"2024-01-02T10:00:00Z", time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), true},
		{"2024-01-02T10:00:00", time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), true},
		{"2024-01-02 10:00:00", time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), true},
		{"2024-01-02", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"not a date", time.Time{}, false},
		{"32.01.2024 10:00:00", time.Time{}, false},
		{"2024-13-40", time.Time{}, false},
	}

	for _, tc := range cases {
		got, ok := ParsePaymentDate(tc.input)
		if ok != tc.ok {
			t.Errorf("ParsePaymentDate(%q) ok = %v, want %v", tc.input, ok, tc.ok)
			continue
		}
		if ok && !got.Equal(tc.want) {
			t.Errorf("ParsePaymentDate(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}
