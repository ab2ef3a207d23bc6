package models

// SlotDurationMinutes is the fixed bookable unit. Sub-30-minute granularity
// is not supported.
const SlotDurationMinutes = 30

// DateStatus tags a candidate date in the booking horizon.
type DateStatus string

const (
	DateOpen         DateStatus = "open"
	DateClosed       DateStatus = "closed"
	DateSpecialHours DateStatus = "specialHours"
)

// CandidateDate is a date offered to the buyer. Closed dates are listed for
// transparency but are never selectable; dates with no availability and no
// exception are omitted entirely.
type CandidateDate struct {
	Date   string     `json:"date"` // "2006-01-02"
	Status DateStatus `json:"status"`
	Label  string     `json:"label"` // e.g. "Mon, Jun 10" / "Mon, Jun 10 (closed)"
}

// Selectable reports whether the date may be chosen.
func (c CandidateDate) Selectable() bool {
	return c.Status != DateClosed
}

// TimeSlot is a derived 30-minute bookable unit, produced only when
// unoccupied and inside the applicable hours range.
type TimeSlot struct {
	Date            string `json:"date"`
	StartMinute     int    `json:"startMinute"`
	DurationMinutes int    `json:"durationMinutes"`
	Label           string `json:"label"` // "HH:MM"
}
