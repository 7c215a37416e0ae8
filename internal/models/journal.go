package models

// DateFormat is the calendar-day key for journal entries, in the
// user's local timezone.
const DateFormat = "2006-01-02"

const (
	RatingMin = 0
	RatingMax = 5
)

// DailyJournal is a single day's reflection. At most one entry exists
// per date; submitting again for the same date overwrites.
type DailyJournal struct {
	Date      string `json:"date"` // YYYY-MM-DD, local time
	Highlight string `json:"highlight"`
	Rating    int    `json:"rating"` // 0-5
}
