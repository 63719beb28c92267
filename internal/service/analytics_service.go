package service

import (
	"time"

	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/service"
	"wellness-service/internal/store"
)

// DefaultWindowDays is the trailing window used for dashboard aggregates,
// adherence, and alert evaluation.
const DefaultWindowDays = 7

type analyticsService struct {
	journal    *store.Store[entity.JournalEntry]
	mood       *store.Store[entity.MoodEntry]
	windowDays int
}

// NewAnalyticsService creates a new analytics service over the two entry
// stores. Every query reads a fresh snapshot of the stores; nothing is
// cached between calls.
func NewAnalyticsService(
	journal *store.Store[entity.JournalEntry],
	mood *store.Store[entity.MoodEntry],
) service.AnalyticsService {
	return &analyticsService{
		journal:    journal,
		mood:       mood,
		windowDays: DefaultWindowDays,
	}
}

func (s *analyticsService) Dashboard(now time.Time) service.DashboardSummary {
	// Window covers the trailing N calendar days ending today, compared as
	// date strings with no timezone conversion.
	since := now.AddDate(0, 0, -(s.windowDays - 1)).Format("2006-01-02")

	journals := s.journal.All()
	moods := s.mood.All()

	windowJournals := filterSince(journals, entity.JournalEntry.DateKey, since)
	windowMoods := filterSince(moods, entity.MoodEntry.DateKey, since)

	agg := service.Aggregates{
		WindowDays: s.windowDays,
		Since:      since,

		Mood:    RollingMean(moods, entity.MoodEntry.DateKey, since, moodField),
		Anxiety: RollingMean(moods, entity.MoodEntry.DateKey, since, anxietyField),
		Energy:  RollingMean(moods, entity.MoodEntry.DateKey, since, energyField),
		Stress:  RollingMean(moods, entity.MoodEntry.DateKey, since, stressField),

		SleepHours:   RollingMean(journals, entity.JournalEntry.DateKey, since, sleepHoursField),
		SleepQuality: RollingMean(journals, entity.JournalEntry.DateKey, since, sleepQualityField),
		StudyHours:   RollingMean(journals, entity.JournalEntry.DateKey, since, studyHoursField),

		Adherence:   Adherence(windowJournals),
		SymptomDays: SymptomDays(windowMoods),

		MoodEntryCount:    len(windowMoods),
		JournalEntryCount: len(windowJournals),
	}
	agg.MedicationsTaken, agg.MedicationsTotal = MedicationCounts(windowJournals)

	return service.DashboardSummary{
		Aggregates: agg,
		Alerts:     EvaluateAlerts(agg),
	}
}

func (s *analyticsService) MoodTrend(days int) []service.TrendPoint {
	return TrailingWindow(s.mood.All(), entity.MoodEntry.DateKey, days, map[string]func(entity.MoodEntry) float64{
		"mood":    moodField,
		"anxiety": anxietyField,
		"energy":  energyField,
		"stress":  stressField,
	})
}

func (s *analyticsService) SleepTrend(days int) []service.TrendPoint {
	return TrailingWindow(s.journal.All(), entity.JournalEntry.DateKey, days, map[string]func(entity.JournalEntry) float64{
		"sleepHours":   sleepHoursField,
		"sleepQuality": sleepQualityField,
	})
}

func (s *analyticsService) StudyTrend(days int) []service.TrendPoint {
	return TrailingWindow(s.journal.All(), entity.JournalEntry.DateKey, days, map[string]func(entity.JournalEntry) float64{
		"studyHours": studyHoursField,
	})
}

func filterSince[T any](entries []T, dateKey func(T) string, since string) []T {
	var out []T
	for _, e := range entries {
		if dateKey(e) >= since {
			out = append(out, e)
		}
	}
	return out
}

func moodField(e entity.MoodEntry) float64    { return float64(e.Mood) }
func anxietyField(e entity.MoodEntry) float64 { return float64(e.Anxiety) }
func energyField(e entity.MoodEntry) float64  { return float64(e.Energy) }
func stressField(e entity.MoodEntry) float64  { return float64(e.Stress) }

func sleepHoursField(e entity.JournalEntry) float64   { return e.SleepHours }
func sleepQualityField(e entity.JournalEntry) float64 { return float64(e.SleepQuality) }
func studyHoursField(e entity.JournalEntry) float64   { return e.StudyHours }
