package datemath_test

import (
	"fmt"
	"testing"
	"time"

	"task-tracker-app/pkg/datemath"
)

func TestWeeksInMonth(t *testing.T) {
	cal, _ := datemath.NewCalendar("UTC")

	tests := []struct {
		name      string
		monthID   string
		wantDays  []int // business days per week
		wantFirst string
		wantLast  string
	}{
		{
			name:      "Month starting mid-week",
			monthID:   "2024-05", // Wed May 1st
			wantDays:  []int{3, 5, 5, 5, 5},
			wantFirst: "2024-05-01",
			wantLast:  "2024-05-31",
		},
		{
			name:      "Month starting on Saturday",
			monthID:   "2024-06",
			wantDays:  []int{5, 5, 5, 5},
			wantFirst: "2024-06-03",
			wantLast:  "2024-06-28",
		},
		{
			name:      "Month ending on Monday",
			monthID:   "2024-09", // Sun Sep 1st, Mon Sep 30th
			wantDays:  []int{5, 5, 5, 5, 1},
			wantFirst: "2024-09-02",
			wantLast:  "2024-09-30",
		},
		{
			name:      "February of a leap year",
			monthID:   "2024-02", // Thu Feb 1st, Thu Feb 29th
			wantDays:  []int{2, 5, 5, 5, 4},
			wantFirst: "2024-02-01",
			wantLast:  "2024-02-29",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weeks := cal.WeeksInMonth(tt.monthID)
			if len(weeks) != len(tt.wantDays) {
				t.Fatalf("expected %d weeks, got %d", len(tt.wantDays), len(weeks))
			}
			for i, w := range weeks {
				if w.WeekNumber != i+1 {
					t.Errorf("week %d has number %d", i, w.WeekNumber)
				}
				if len(w.BusinessDays) != tt.wantDays[i] {
					t.Errorf("week %d: expected %d business days, got %d", w.WeekNumber, tt.wantDays[i], len(w.BusinessDays))
				}
				if !w.StartDate.Equal(w.BusinessDays[0]) || !w.EndDate.Equal(w.BusinessDays[len(w.BusinessDays)-1]) {
					t.Errorf("week %d: start/end do not match its business days", w.WeekNumber)
				}
			}
			if got := cal.DateKey(weeks[0].StartDate); got != tt.wantFirst {
				t.Errorf("first business day = %s, want %s", got, tt.wantFirst)
			}
			if got := cal.DateKey(weeks[len(weeks)-1].EndDate); got != tt.wantLast {
				t.Errorf("last business day = %s, want %s", got, tt.wantLast)
			}
		})
	}
}

func TestWeeksInMonthInvalidID(t *testing.T) {
	cal, _ := datemath.NewCalendar("UTC")
	if weeks := cal.WeeksInMonth("not-a-month"); len(weeks) != 0 {
		t.Errorf("expected no weeks, got %d", len(weeks))
	}
	if n := cal.CurrentWeekNumber("not-a-month", time.Now()); n != 1 {
		t.Errorf("expected fallback week 1, got %d", n)
	}
}

// Every weekday of the month appears in exactly one week, and nothing else does.
func TestWeeksInMonthPartitionCoverage(t *testing.T) {
	for _, tz := range []string{"UTC", "Europe/Bucharest", "America/Sao_Paulo"} {
		cal, err := datemath.NewCalendar(tz)
		if err != nil {
			t.Skipf("tzdata not available for %s", tz)
		}
		for year := 2020; year <= 2030; year++ {
			for month := 1; month <= 12; month++ {
				monthID := fmt.Sprintf("%04d-%02d", year, month)

				seen := map[string]int{}
				for _, w := range cal.WeeksInMonth(monthID) {
					for _, d := range w.BusinessDays {
						seen[cal.DateKey(d)]++
					}
				}

				start, end, _ := cal.MonthBounds(monthID)
				want := 0
				for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
					if !datemath.IsBusinessDay(d) {
						continue
					}
					want++
					if seen[cal.DateKey(d)] != 1 {
						t.Fatalf("%s %s: business day %s seen %d times", tz, monthID, cal.DateKey(d), seen[cal.DateKey(d)])
					}
				}
				if len(seen) != want {
					t.Fatalf("%s %s: expected %d business days, got %d", tz, monthID, want, len(seen))
				}
			}
		}
	}
}

func TestCurrentWeekNumber(t *testing.T) {
	cal, _ := datemath.NewCalendar("UTC")

	tests := []struct {
		name    string
		monthID string
		now     time.Time
		want    int
	}{
		{name: "First day of month", monthID: "2024-05", now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), want: 1},
		{name: "Mid month", monthID: "2024-05", now: time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC), want: 3},
		{name: "Weekend maps to preceding week", monthID: "2024-05", now: time.Date(2024, 5, 19, 9, 0, 0, 0, time.UTC), want: 3},
		{name: "Weekend before first business week", monthID: "2024-06", now: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC), want: 1},
		{name: "Last day partial week", monthID: "2024-09", now: time.Date(2024, 9, 30, 9, 0, 0, 0, time.UTC), want: 5},
		{name: "Now outside month", monthID: "2024-05", now: time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cal.CurrentWeekNumber(tt.monthID, tt.now); got != tt.want {
				t.Errorf("CurrentWeekNumber() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWeekOf(t *testing.T) {
	cal, _ := datemath.NewCalendar("UTC")
	weeks := cal.WeeksInMonth("2025-11")

	tests := []struct {
		name   string
		t      time.Time
		want   int
		wantOK bool
	}{
		{name: "Leading Saturday", t: time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC), want: 1, wantOK: true},
		{name: "Leading Sunday", t: time.Date(2025, 11, 2, 23, 0, 0, 0, time.UTC), want: 1, wantOK: true},
		{name: "First Monday", t: time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC), want: 1, wantOK: true},
		{name: "Trailing Sunday", t: time.Date(2025, 11, 30, 9, 0, 0, 0, time.UTC), want: len(weeks), wantOK: true},
		{name: "Previous month", t: time.Date(2025, 10, 31, 9, 0, 0, 0, time.UTC), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := datemath.WeekOf(weeks, tt.t)
			if ok != tt.wantOK {
				t.Fatalf("WeekOf() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && w.WeekNumber != tt.want {
				t.Errorf("WeekOf() = week %d, want %d", w.WeekNumber, tt.want)
			}
		})
	}
}
