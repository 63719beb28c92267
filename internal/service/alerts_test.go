package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/service"
)

func kinds(alerts []entity.Alert) []entity.AlertKind {
	out := make([]entity.AlertKind, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, a.Kind)
	}
	return out
}

// healthyAggregates is a baseline that triggers no rule on its own.
func healthyAggregates() service.Aggregates {
	return service.Aggregates{
		WindowDays:       7,
		Mood:             6,
		Anxiety:          5,
		SleepHours:       6.5,
		Adherence:        85,
		MedicationsTotal: 7,
		MoodEntryCount:   7,
	}
}

func TestEvaluateAlerts_LowMood(t *testing.T) {
	agg := healthyAggregates()

	agg.Mood = 4
	assert.NotContains(t, kinds(EvaluateAlerts(agg)), entity.AlertLowMood, "boundary: 4 is not below 4")

	agg.Mood = 3.99
	alerts := EvaluateAlerts(agg)
	require.Contains(t, kinds(alerts), entity.AlertLowMood)
	assert.Equal(t, entity.SeverityWarning, alerts[0].Severity)
}

func TestEvaluateAlerts_HighAnxietyBoundary(t *testing.T) {
	agg := healthyAggregates()

	agg.Anxiety = 7
	assert.NotContains(t, kinds(EvaluateAlerts(agg)), entity.AlertHighAnxiety, "boundary: exactly 7 does not trigger")

	agg.Anxiety = 7.01
	assert.Contains(t, kinds(EvaluateAlerts(agg)), entity.AlertHighAnxiety)
}

func TestEvaluateAlerts_SleepDeficit(t *testing.T) {
	agg := healthyAggregates()

	agg.SleepHours = 6
	assert.NotContains(t, kinds(EvaluateAlerts(agg)), entity.AlertSleepDeficit)

	agg.SleepHours = 5.9
	alerts := EvaluateAlerts(agg)
	require.Contains(t, kinds(alerts), entity.AlertSleepDeficit)
	for _, a := range alerts {
		if a.Kind == entity.AlertSleepDeficit {
			assert.Equal(t, entity.SeverityInfo, a.Severity)
		}
	}
}

func TestEvaluateAlerts_LowAdherence(t *testing.T) {
	agg := healthyAggregates()

	agg.Adherence = 80
	assert.NotContains(t, kinds(EvaluateAlerts(agg)), entity.AlertLowAdherence, "boundary: exactly 80 does not trigger")

	agg.Adherence = 79.9
	assert.Contains(t, kinds(EvaluateAlerts(agg)), entity.AlertLowAdherence)

	// No medications logged: the rule is suppressed even at adherence 0.
	agg.Adherence = 0
	agg.MedicationsTotal = 0
	assert.NotContains(t, kinds(EvaluateAlerts(agg)), entity.AlertLowAdherence)
}

func TestEvaluateAlerts_SymptomFrequency(t *testing.T) {
	agg := healthyAggregates()

	agg.SymptomDays = 3
	assert.NotContains(t, kinds(EvaluateAlerts(agg)), entity.AlertSymptomFrequency)

	agg.SymptomDays = 4
	alerts := EvaluateAlerts(agg)
	require.Contains(t, kinds(alerts), entity.AlertSymptomFrequency)
	for _, a := range alerts {
		if a.Kind == entity.AlertSymptomFrequency {
			assert.Equal(t, entity.SeverityCritical, a.Severity)
		}
	}
}

func TestEvaluateAlerts_AllClear(t *testing.T) {
	agg := service.Aggregates{
		Mood:             7,
		Anxiety:          3,
		SleepHours:       7,
		Adherence:        90,
		MedicationsTotal: 7,
		MoodEntryCount:   7,
	}

	alerts := EvaluateAlerts(agg)
	require.Len(t, alerts, 1)
	assert.Equal(t, entity.AlertAllClear, alerts[0].Kind)
	assert.Equal(t, entity.SeverityPositive, alerts[0].Severity)
}

func TestEvaluateAlerts_NoData(t *testing.T) {
	alerts := EvaluateAlerts(service.Aggregates{})

	assert.Contains(t, kinds(alerts), entity.AlertNoData)

	// A single sample averaging above zero suppresses the rule.
	agg := service.Aggregates{Mood: 5, Anxiety: 5, MoodEntryCount: 1, SleepHours: 7}
	assert.NotContains(t, kinds(EvaluateAlerts(agg)), entity.AlertNoData)
}

func TestEvaluateAlerts_RulesAreIndependent(t *testing.T) {
	agg := service.Aggregates{
		Mood:             2,
		Anxiety:          9,
		SleepHours:       4,
		Adherence:        50,
		MedicationsTotal: 10,
		SymptomDays:      5,
		MoodEntryCount:   6,
	}

	alerts := EvaluateAlerts(agg)

	// All matching rules fire, in fixed priority order.
	assert.Equal(t, []entity.AlertKind{
		entity.AlertLowMood,
		entity.AlertHighAnxiety,
		entity.AlertSleepDeficit,
		entity.AlertLowAdherence,
		entity.AlertSymptomFrequency,
	}, kinds(alerts))
}
