package scheduling

import (
	"time"

	"slotwise/models"
)

// SelectionMachine validates the buyer's in-progress (date, time) choice
// against the engine's live output. States run Empty -> DateChosen ->
// DateAndTimeChosen; any rejected transition leaves the state untouched.
type SelectionMachine struct {
	engine  *Engine
	today   time.Time
	horizon int
	state   models.SelectionState
}

// NewSelectionMachine builds a machine over the session's engine, restoring
// a previously persisted selection state.
func NewSelectionMachine(engine *Engine, today time.Time, horizonDays int, state models.SelectionState) *SelectionMachine {
	return &SelectionMachine{
		engine:  engine,
		today:   today,
		horizon: horizonDays,
		state:   state,
	}
}

// State returns the current selection for persistence.
func (m *SelectionMachine) State() models.SelectionState {
	return m.state
}

// ChooseDate moves to DateChosen if the date is a selectable candidate.
// Closed dates are visible in the candidate list but never selectable; a
// date absent from the list is rejected the same way. Any previously chosen
// time is cleared on success.
func (m *SelectionMachine) ChooseDate(date string) error {
	for _, c := range m.engine.ListCandidateDates(m.today, m.horizon) {
		if c.Date != date {
			continue
		}
		if !c.Selectable() {
			return NewDateUnavailable(date)
		}
		m.state = models.SelectionState{Date: date}
		return nil
	}
	return NewDateUnavailable(date)
}

// ChooseTime moves to DateAndTimeChosen if the clock value names a slot the
// engine currently offers on the chosen date. Malformed, occupied, and
// out-of-range times are all rejected as unavailable.
func (m *SelectionMachine) ChooseTime(clock string) error {
	if m.state.Phase() == models.SelectionEmpty {
		return NewTimeUnavailable(clock)
	}
	minute, err := ToMinutes(clock)
	if err != nil {
		return NewTimeUnavailable(clock)
	}
	for _, s := range m.engine.ListTimeSlots(m.state.Date) {
		if s.StartMinute == minute {
			m.state.Time = FormatMinutes(minute)
			return nil
		}
	}
	return NewTimeUnavailable(clock)
}

// ClearTime reverts DateAndTimeChosen to DateChosen.
func (m *SelectionMachine) ClearTime() {
	m.state.Time = ""
}

// Clear returns to Empty from any state.
func (m *SelectionMachine) Clear() {
	m.state = models.SelectionState{}
}

// Finalize re-validates the completed selection against a freshly fetched
// snapshot immediately before handoff to submission. If the slot was taken
// in the interim the time is cleared, the machine reverts to DateChosen,
// and the transition is rejected. This is a best-effort client-side guard;
// the submission collaborator owns write-side conflict handling.
func (m *SelectionMachine) Finalize(fresh *Engine) error {
	if m.state.Phase() != models.SelectionDateAndTimeChosen {
		return NewSelectionIncomplete()
	}
	clock := m.state.Time
	minute, err := ToMinutes(clock)
	if err != nil {
		m.state.Time = ""
		return NewTimeUnavailable(clock)
	}
	for _, s := range fresh.ListTimeSlots(m.state.Date) {
		if s.StartMinute == minute {
			return nil
		}
	}
	m.state.Time = ""
	return NewTimeUnavailable(clock)
}
