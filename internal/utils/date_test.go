package utils

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	got, err := ParseDay("2024-03-02")
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}
	want := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, bad := range []string{"", "02-03-2024", "2024-3-2", "2024-03-02T00:00:00Z", "not-a-date"} {
		if _, err := ParseDay(bad); err == nil {
			t.Errorf("ParseDay(%q) expected error", bad)
		}
	}
}

func TestDayRange(t *testing.T) {
	start, _ := ParseDay("2024-03-02")
	end, _ := ParseDay("2024-03-04")

	from, to := DayRange(start, end)
	if !from.Equal(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("from = %v", from)
	}
	if !to.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("to = %v, want start of day after end", to)
	}

	// Equal bounds cover exactly that single day.
	from, to = DayRange(start, start)
	if to.Sub(from) != 24*time.Hour {
		t.Errorf("single-day range spans %v, want 24h", to.Sub(from))
	}
}
