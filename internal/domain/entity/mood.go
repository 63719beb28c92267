package entity

import "time"

// MoodEntry is a freeform mood sample. Any number of samples may exist per
// calendar date; Timestamp orders them chronologically.
type MoodEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`

	// Ratings are UI-constrained to [1,10]; out-of-range values pass through.
	Mood    int `json:"mood"`
	Anxiety int `json:"anxiety"`
	Energy  int `json:"energy"`
	Stress  int `json:"stress"`

	// PsychoticSymptoms is a set drawn from a fixed vocabulary; order is
	// irrelevant and duplicates are not stored.
	PsychoticSymptoms []string `json:"psychoticSymptoms"`

	Triggers string `json:"triggers"`
	Notes    string `json:"notes"`
	Location string `json:"location,omitempty"`
	Weather  string `json:"weather,omitempty"`
}

// EntryID implements store identity.
func (e MoodEntry) EntryID() string {
	return e.ID
}

// DateKey returns the calendar-date grouping key, the date portion of the
// timestamp. Truncation is timezone-naive: the timestamp is formatted as
// stored, with no zone conversion.
func (e MoodEntry) DateKey() string {
	return e.Timestamp.Format("2006-01-02")
}

// HasSymptoms reports whether the sample records at least one non-empty
// psychotic symptom.
func (e MoodEntry) HasSymptoms() bool {
	for _, s := range e.PsychoticSymptoms {
		if s != "" {
			return true
		}
	}
	return false
}
