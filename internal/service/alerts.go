package service

import (
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/service"
)

// EvaluateAlerts evaluates the fixed threshold rules against one window's
// aggregates. Rules are independent: every rule that matches emits its alert,
// in this fixed priority order. Evaluation is pure and stateless; alerts are
// recomputed fresh on every query with no history or acknowledgement.
//
// Comparisons run on unrounded aggregates. Known edge case: a window whose
// mood samples all carry mood and anxiety of exactly 0 (outside the [1,10]
// form range, but not rejected by the store) averages to 0 and is treated
// as such by the threshold rules, while the no-data rule additionally
// requires the window to hold zero mood samples.
func EvaluateAlerts(agg service.Aggregates) []entity.Alert {
	var alerts []entity.Alert

	if agg.Mood < 4 {
		alerts = append(alerts, entity.Alert{
			Kind:     entity.AlertLowMood,
			Severity: entity.SeverityWarning,
			Message:  "Your average mood has been low this week. Consider reaching out to your support network or care team.",
		})
	}

	if agg.Anxiety > 7 {
		alerts = append(alerts, entity.Alert{
			Kind:     entity.AlertHighAnxiety,
			Severity: entity.SeverityWarning,
			Message:  "Your anxiety levels have been elevated this week. Grounding exercises or a check-in with your care team may help.",
		})
	}

	if agg.SleepHours < 6 {
		alerts = append(alerts, entity.Alert{
			Kind:     entity.AlertSleepDeficit,
			Severity: entity.SeverityInfo,
			Message:  "You are averaging under 6 hours of sleep. Protecting your sleep schedule can improve mood and focus.",
		})
	}

	if agg.Adherence < 80 && agg.MedicationsTotal > 0 {
		alerts = append(alerts, entity.Alert{
			Kind:     entity.AlertLowAdherence,
			Severity: entity.SeverityWarning,
			Message:  "Medication adherence has dropped below 80% this week. Missed doses can affect how you feel.",
		})
	}

	if agg.SymptomDays > 3 {
		alerts = append(alerts, entity.Alert{
			Kind:     entity.AlertSymptomFrequency,
			Severity: entity.SeverityCritical,
			Message:  "You have logged psychotic symptoms on more than 3 days this week. Please contact your care team.",
		})
	}

	if agg.Mood >= 7 && agg.Anxiety <= 3 && agg.SleepHours >= 7 && agg.Adherence >= 90 {
		alerts = append(alerts, entity.Alert{
			Kind:     entity.AlertAllClear,
			Severity: entity.SeverityPositive,
			Message:  "Great week: mood is up, anxiety is low, sleep is solid, and medication adherence is on track.",
		})
	}

	if agg.Mood == 0 && agg.Anxiety == 0 && agg.MoodEntryCount == 0 {
		alerts = append(alerts, entity.Alert{
			Kind:     entity.AlertNoData,
			Severity: entity.SeverityNeutral,
			Message:  "No mood samples recorded this week. Log a quick check-in to keep your trends meaningful.",
		})
	}

	return alerts
}
