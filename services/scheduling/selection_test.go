package scheduling

import (
	"errors"
	"testing"

	"slotwise/models"
)

func fixtureMachine(t *testing.T) *SelectionMachine {
	t.Helper()
	engine := fixtureEngine(fixtureSnapshot())
	return NewSelectionMachine(engine, testToday(), 7, models.SelectionState{})
}

func transitionCode(t *testing.T, err error) string {
	t.Helper()
	var te *TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransitionError, got %v", err)
	}
	return te.Code
}

func TestChooseDateHappyPath(t *testing.T) {
	m := fixtureMachine(t)
	if err := m.ChooseDate("2024-06-10"); err != nil {
		t.Fatalf("ChooseDate: %v", err)
	}
	state := m.State()
	if state.Phase() != models.SelectionDateChosen {
		t.Errorf("phase = %s, want dateChosen", state.Phase())
	}
	if state.Date != "2024-06-10" {
		t.Errorf("date = %s", state.Date)
	}
}

func TestChooseDateClosedRejected(t *testing.T) {
	m := fixtureMachine(t)
	err := m.ChooseDate("2024-06-12")
	if code := transitionCode(t, err); code != "dateUnavailable" {
		t.Errorf("code = %s, want dateUnavailable", code)
	}
	if m.State().Phase() != models.SelectionEmpty {
		t.Error("rejected transition must leave state unchanged")
	}
}

func TestChooseDateAbsentRejected(t *testing.T) {
	m := fixtureMachine(t)
	// 2024-06-14 has no windows and no exception: not a candidate at all.
	err := m.ChooseDate("2024-06-14")
	if code := transitionCode(t, err); code != "dateUnavailable" {
		t.Errorf("code = %s, want dateUnavailable", code)
	}
	if m.State().Phase() != models.SelectionEmpty {
		t.Error("rejected transition must leave state unchanged")
	}
}

func TestChooseTimeRequiresDate(t *testing.T) {
	m := fixtureMachine(t)
	err := m.ChooseTime("09:00")
	if code := transitionCode(t, err); code != "timeUnavailable" {
		t.Errorf("code = %s, want timeUnavailable", code)
	}
}

func TestChooseTimeHappyPath(t *testing.T) {
	m := fixtureMachine(t)
	if err := m.ChooseDate("2024-06-10"); err != nil {
		t.Fatalf("ChooseDate: %v", err)
	}
	if err := m.ChooseTime("09:30"); err != nil {
		t.Fatalf("ChooseTime: %v", err)
	}
	state := m.State()
	if state.Phase() != models.SelectionDateAndTimeChosen {
		t.Errorf("phase = %s, want dateAndTimeChosen", state.Phase())
	}
	if state.Time != "09:30" {
		t.Errorf("time = %s", state.Time)
	}
}

func TestChooseTimeOccupiedRejected(t *testing.T) {
	snap := fixtureSnapshot()
	snap.Occupied["2024-06-10"] = []models.ReservationInterval{{Start: 600, End: 660}}
	m := NewSelectionMachine(fixtureEngine(snap), testToday(), 7, models.SelectionState{})

	if err := m.ChooseDate("2024-06-10"); err != nil {
		t.Fatalf("ChooseDate: %v", err)
	}
	err := m.ChooseTime("10:00")
	if code := transitionCode(t, err); code != "timeUnavailable" {
		t.Errorf("code = %s, want timeUnavailable", code)
	}
	if m.State().Phase() != models.SelectionDateChosen {
		t.Error("rejected time must leave the chosen date intact")
	}
}

func TestChooseTimeOutsideSpecialRangeRejected(t *testing.T) {
	m := fixtureMachine(t)
	if err := m.ChooseDate("2024-06-11"); err != nil {
		t.Fatalf("ChooseDate: %v", err)
	}
	// 09:00 is inside default hours but outside the [10:00, 12:00) override.
	if err := m.ChooseTime("09:00"); err == nil {
		t.Error("time outside special hours must be rejected")
	}
	// 11:30 fits; 12:00 would escape the half-open range.
	if err := m.ChooseTime("11:30"); err != nil {
		t.Errorf("ChooseTime(11:30): %v", err)
	}
	m.ClearTime()
	if err := m.ChooseTime("12:00"); err == nil {
		t.Error("slot ending past the special range must be rejected")
	}
}

func TestChooseTimeMalformedRejected(t *testing.T) {
	m := fixtureMachine(t)
	if err := m.ChooseDate("2024-06-10"); err != nil {
		t.Fatalf("ChooseDate: %v", err)
	}
	for _, bad := range []string{"9am", "25:00", "09:61", ""} {
		err := m.ChooseTime(bad)
		if code := transitionCode(t, err); code != "timeUnavailable" {
			t.Errorf("ChooseTime(%q) code = %s, want timeUnavailable", bad, code)
		}
	}
}

func TestChooseDateClearsPreviousTime(t *testing.T) {
	m := fixtureMachine(t)
	if err := m.ChooseDate("2024-06-10"); err != nil {
		t.Fatal(err)
	}
	if err := m.ChooseTime("09:30"); err != nil {
		t.Fatal(err)
	}
	if err := m.ChooseDate("2024-06-13"); err != nil {
		t.Fatal(err)
	}
	state := m.State()
	if state.Time != "" {
		t.Errorf("choosing a new date must clear the time, got %q", state.Time)
	}
	if state.Phase() != models.SelectionDateChosen {
		t.Errorf("phase = %s, want dateChosen", state.Phase())
	}
}

func TestClearReturnsToEmpty(t *testing.T) {
	m := fixtureMachine(t)
	if err := m.ChooseDate("2024-06-10"); err != nil {
		t.Fatal(err)
	}
	if err := m.ChooseTime("09:30"); err != nil {
		t.Fatal(err)
	}
	m.Clear()
	if m.State().Phase() != models.SelectionEmpty {
		t.Error("Clear must return to Empty from any state")
	}
}

func TestFinalizeHappyPath(t *testing.T) {
	m := fixtureMachine(t)
	if err := m.ChooseDate("2024-06-10"); err != nil {
		t.Fatal(err)
	}
	if err := m.ChooseTime("09:30"); err != nil {
		t.Fatal(err)
	}
	fresh := fixtureEngine(fixtureSnapshot())
	if err := m.Finalize(fresh); err != nil {
		t.Errorf("Finalize: %v", err)
	}
}

func TestFinalizeIncompleteRejected(t *testing.T) {
	m := fixtureMachine(t)
	err := m.Finalize(fixtureEngine(fixtureSnapshot()))
	if code := transitionCode(t, err); code != "selectionIncomplete" {
		t.Errorf("code = %s, want selectionIncomplete", code)
	}

	if err := m.ChooseDate("2024-06-10"); err != nil {
		t.Fatal(err)
	}
	err = m.Finalize(fixtureEngine(fixtureSnapshot()))
	if code := transitionCode(t, err); code != "selectionIncomplete" {
		t.Errorf("code = %s, want selectionIncomplete", code)
	}
}

func TestFinalizeStaleSlotRevertsToDateChosen(t *testing.T) {
	m := fixtureMachine(t)
	if err := m.ChooseDate("2024-06-10"); err != nil {
		t.Fatal(err)
	}
	if err := m.ChooseTime("09:30"); err != nil {
		t.Fatal(err)
	}

	// Another booking landed on 09:30 between selection and confirmation.
	staleSnap := fixtureSnapshot()
	staleSnap.Occupied["2024-06-10"] = []models.ReservationInterval{{Start: 570, End: 600}}
	err := m.Finalize(fixtureEngine(staleSnap))
	if code := transitionCode(t, err); code != "timeUnavailable" {
		t.Errorf("code = %s, want timeUnavailable", code)
	}
	state := m.State()
	if state.Phase() != models.SelectionDateChosen {
		t.Errorf("phase after stale finalize = %s, want dateChosen", state.Phase())
	}
	if state.Date != "2024-06-10" {
		t.Errorf("date must survive the revert, got %q", state.Date)
	}
}
