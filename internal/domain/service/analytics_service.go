package service

import (
	"time"

	"wellness-service/internal/domain/entity"
)

// Aggregates holds the unrounded rolling aggregates for one trailing window.
// Rolling means default to 0 when no qualifying entries exist; that neutral
// default is load-bearing for the alert thresholds and must not be changed
// to an absent value.
type Aggregates struct {
	WindowDays int    `json:"windowDays"`
	Since      string `json:"since"` // first date of the window, "YYYY-MM-DD"

	Mood    float64 `json:"mood"`
	Anxiety float64 `json:"anxiety"`
	Energy  float64 `json:"energy"`
	Stress  float64 `json:"stress"`

	SleepHours   float64 `json:"sleepHours"`
	SleepQuality float64 `json:"sleepQuality"`
	StudyHours   float64 `json:"studyHours"`

	// Adherence is a percentage in [0,100]; 0 when no medications are logged.
	Adherence        float64 `json:"adherence"`
	MedicationsTaken int     `json:"medicationsTaken"`
	MedicationsTotal int     `json:"medicationsTotal"`

	// SymptomDays counts distinct dates in the window with at least one
	// mood sample recording a non-empty psychotic symptom.
	SymptomDays int `json:"symptomDays"`

	MoodEntryCount    int `json:"moodEntryCount"`
	JournalEntryCount int `json:"journalEntryCount"`
}

// DashboardSummary is the full analytics view for the default window.
type DashboardSummary struct {
	Aggregates Aggregates     `json:"aggregates"`
	Alerts     []entity.Alert `json:"alerts"`
}

// TrendPoint is one dated row of a trailing-window trend, carrying the daily
// average for each requested field.
type TrendPoint struct {
	Date   string             `json:"date"`
	Values map[string]float64 `json:"values"`
}

// AnalyticsService defines the interface for windowed aggregation and alerting
type AnalyticsService interface {
	// Dashboard computes the trailing-window aggregates and evaluates the
	// alert rules against them. Pure over the current store contents.
	Dashboard(now time.Time) DashboardSummary

	// MoodTrend returns per-day mood/anxiety/energy/stress averages for the
	// most recent days that have mood samples, ascending by date.
	MoodTrend(days int) []TrendPoint

	// SleepTrend returns per-day sleep hours and quality averages.
	SleepTrend(days int) []TrendPoint

	// StudyTrend returns per-day study hours averages.
	StudyTrend(days int) []TrendPoint
}
