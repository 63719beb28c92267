package service

import (
	"math"
	"sort"

	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/service"
)

// DateGroup is one calendar date's entries, in their relative store order.
type DateGroup[T any] struct {
	Date    string
	Entries []T
}

// GroupByDate groups entries by the calendar-date key extracted by dateKey,
// ascending by date. Grouping is stable: entries sharing a date keep their
// relative order. Date keys are "YYYY-MM-DD" strings, so lexicographic order
// is chronological order; no timezone conversion happens here.
func GroupByDate[T any](entries []T, dateKey func(T) string) []DateGroup[T] {
	byDate := make(map[string]int)
	var groups []DateGroup[T]

	for _, e := range entries {
		date := dateKey(e)
		i, ok := byDate[date]
		if !ok {
			i = len(groups)
			byDate[date] = i
			groups = append(groups, DateGroup[T]{Date: date})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date < groups[j].Date
	})

	return groups
}

// DailyAverage computes the arithmetic mean of field across one date's
// entries. The second return is false for an empty sequence; callers must
// not average zero entries.
func DailyAverage[T any](entries []T, field func(T) float64) (float64, bool) {
	if len(entries) == 0 {
		return 0, false
	}

	var sum float64
	for _, e := range entries {
		sum += field(e)
	}
	return sum / float64(len(entries)), true
}

// TrailingWindow returns per-date field averages for the most recent `days`
// distinct calendar dates that have at least one entry, ascending by date.
// Dates without data do not occupy window slots: this is "the last N days
// that have data", not "the last N calendar days including gaps".
func TrailingWindow[T any](entries []T, dateKey func(T) string, days int, fields map[string]func(T) float64) []service.TrendPoint {
	groups := GroupByDate(entries, dateKey)

	if days > 0 && len(groups) > days {
		groups = groups[len(groups)-days:]
	}

	rows := make([]service.TrendPoint, 0, len(groups))
	for _, g := range groups {
		row := service.TrendPoint{Date: g.Date, Values: make(map[string]float64, len(fields))}
		for name, field := range fields {
			if avg, ok := DailyAverage(g.Entries, field); ok {
				row.Values[name] = avg
			}
		}
		rows = append(rows, row)
	}

	return rows
}

// RollingMean computes the mean of field across every entry whose date key
// is on or after since (ungrouped). It returns 0 when no entry qualifies: a
// deliberate neutral default the dashboard and alert thresholds rely on, not
// a sentinel for missing data.
func RollingMean[T any](entries []T, dateKey func(T) string, since string, field func(T) float64) float64 {
	var sum float64
	var n int

	for _, e := range entries {
		if dateKey(e) >= since {
			sum += field(e)
			n++
		}
	}

	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Adherence computes the medication-adherence percentage in [0,100] across
// the supplied journal entries: taken lines over total lines. Defined as 0
// when no medications are logged.
func Adherence(entries []entity.JournalEntry) float64 {
	taken, total := MedicationCounts(entries)
	if total == 0 {
		return 0
	}
	return 100 * float64(taken) / float64(total)
}

// MedicationCounts sums taken and total medication lines across entries.
func MedicationCounts(entries []entity.JournalEntry) (taken, total int) {
	for _, e := range entries {
		t, n := e.MedicationCounts()
		taken += t
		total += n
	}
	return taken, total
}

// SymptomDays counts distinct calendar dates among the supplied mood samples
// with at least one non-empty psychotic symptom recorded.
func SymptomDays(entries []entity.MoodEntry) int {
	seen := make(map[string]struct{})
	for _, e := range entries {
		if e.HasSymptoms() {
			seen[e.DateKey()] = struct{}{}
		}
	}
	return len(seen)
}

// Round1 rounds to one decimal place, half away from zero. Display-layer
// only: alert comparisons use unrounded aggregates.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
