package entity

// AlertSeverity classifies how urgent an advisory alert is.
type AlertSeverity string

const (
	SeverityNeutral  AlertSeverity = "neutral"
	SeverityInfo     AlertSeverity = "info"
	SeverityPositive AlertSeverity = "positive"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// AlertKind identifies which threshold rule produced an alert.
type AlertKind string

const (
	AlertLowMood          AlertKind = "low_mood"
	AlertHighAnxiety      AlertKind = "high_anxiety"
	AlertSleepDeficit     AlertKind = "sleep_deficit"
	AlertLowAdherence     AlertKind = "low_adherence"
	AlertSymptomFrequency AlertKind = "symptom_frequency"
	AlertAllClear         AlertKind = "all_clear"
	AlertNoData           AlertKind = "no_data"
)

// Alert is a single advisory produced by evaluating the threshold rules
// against current window aggregates. Alerts are recomputed on every query;
// there is no persisted alert history or acknowledgement state.
type Alert struct {
	Kind     AlertKind     `json:"kind"`
	Severity AlertSeverity `json:"severity"`
	Message  string        `json:"message"`
}
