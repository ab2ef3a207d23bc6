package models

// SelectionPhase names the state machine phase implied by a SelectionState.
type SelectionPhase string

const (
	SelectionEmpty             SelectionPhase = "empty"
	SelectionDateChosen        SelectionPhase = "dateChosen"
	SelectionDateAndTimeChosen SelectionPhase = "dateAndTimeChosen"
)

// SelectionState holds the buyer's in-progress (date, time) choice. It is
// created empty when a booking session opens and mutated only through the
// validated transitions of the selection machine.
type SelectionState struct {
	Date string `json:"date,omitempty"` // "2006-01-02"
	Time string `json:"time,omitempty"` // "HH:MM"
}

// Phase derives the machine phase from the populated fields.
func (s SelectionState) Phase() SelectionPhase {
	switch {
	case s.Date == "":
		return SelectionEmpty
	case s.Time == "":
		return SelectionDateChosen
	default:
		return SelectionDateAndTimeChosen
	}
}
