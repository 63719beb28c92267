package entity

// Medication is a single medication line inside a journal entry.
// A missing "taken" field in persisted JSON decodes to false.
type Medication struct {
	Name  string `json:"name"`
	Taken bool   `json:"taken"`
	Time  string `json:"time"` // "HH:MM"
}

// JournalEntry is the structured daily journal record. The UI enforces one
// entry per calendar date; the store does not.
type JournalEntry struct {
	ID   string `json:"id"`
	Date string `json:"date"` // "YYYY-MM-DD", grouping key

	Medications []Medication `json:"medications"`

	// Ratings are UI-constrained (sleep/study hours to [0,12], quality to
	// [1,10]); the store passes out-of-range values through unchanged.
	SleepHours   float64 `json:"sleepHours"`
	SleepQuality int     `json:"sleepQuality"`
	StudyHours   float64 `json:"studyHours"`

	StudySubjects    string `json:"studySubjects"`
	ClinicalRotation string `json:"clinicalRotation"`
	JournalText      string `json:"journalText"`
	Gratitude        string `json:"gratitude"`
	Goals            string `json:"goals"`
	Wellness         string `json:"wellness"`
	Challenges       string `json:"challenges"`
	Learnings        string `json:"learnings"`
}

// EntryID implements store identity.
func (e JournalEntry) EntryID() string {
	return e.ID
}

// DateKey returns the calendar-date grouping key for a journal entry.
func (e JournalEntry) DateKey() string {
	return e.Date
}

// MedicationCounts returns how many medication lines are marked taken and
// the total number of lines.
func (e JournalEntry) MedicationCounts() (taken, total int) {
	for _, m := range e.Medications {
		total++
		if m.Taken {
			taken++
		}
	}
	return taken, total
}
