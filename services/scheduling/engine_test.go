package scheduling

import (
	"reflect"
	"testing"
	"time"

	"slotwise/models"
)

func fixtureSnapshot() models.RegistrySnapshot {
	return models.RegistrySnapshot{
		ServiceID: "svc-1",
		WindowTimes: map[string][]int{
			"2024-06-10": {540},
			"2024-06-11": {600},
			"2024-06-13": {540, 600},
		},
		Exceptions: map[string]models.Exception{
			"2024-06-11": {
				ServiceID:  "svc-1",
				Date:       "2024-06-11",
				Kind:       models.ExceptionSpecialHours,
				RangeStart: 600, // 10:00
				RangeEnd:   720, // 12:00
			},
			"2024-06-12": {
				ServiceID: "svc-1",
				Date:      "2024-06-12",
				Kind:      models.ExceptionClosed,
			},
		},
		Occupied: map[string][]models.ReservationInterval{},
	}
}

func fixtureEngine(snap models.RegistrySnapshot) *Engine {
	return NewEngine(snap, time.UTC)
}

func testToday() time.Time {
	return time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
}

func slotStarts(slots []models.TimeSlot) []int {
	starts := make([]int, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.StartMinute)
	}
	return starts
}

func TestListCandidateDates(t *testing.T) {
	engine := fixtureEngine(fixtureSnapshot())
	dates := engine.ListCandidateDates(testToday(), 7)

	if len(dates) != 4 {
		t.Fatalf("expected 4 candidate dates, got %d: %+v", len(dates), dates)
	}

	expect := []struct {
		date   string
		status models.DateStatus
	}{
		{"2024-06-10", models.DateOpen},
		{"2024-06-11", models.DateSpecialHours},
		{"2024-06-12", models.DateClosed},
		{"2024-06-13", models.DateOpen},
	}
	for i, want := range expect {
		if dates[i].Date != want.date || dates[i].Status != want.status {
			t.Errorf("candidate %d = {%s %s}, want {%s %s}",
				i, dates[i].Date, dates[i].Status, want.date, want.status)
		}
	}
}

func TestListCandidateDatesOmitsUnconfiguredDays(t *testing.T) {
	engine := fixtureEngine(fixtureSnapshot())
	dates := engine.ListCandidateDates(testToday(), 7)

	// 2024-06-14..16 have no windows and no exception: silently absent,
	// unlike the closed 12th which stays visible.
	for _, c := range dates {
		if c.Date == "2024-06-14" || c.Date == "2024-06-15" || c.Date == "2024-06-16" {
			t.Errorf("unconfigured date %s must be omitted", c.Date)
		}
	}
}

func TestListCandidateDatesClosedVisibleButNotSelectable(t *testing.T) {
	engine := fixtureEngine(fixtureSnapshot())
	dates := engine.ListCandidateDates(testToday(), 7)

	var closed *models.CandidateDate
	for i := range dates {
		if dates[i].Date == "2024-06-12" {
			closed = &dates[i]
		}
	}
	if closed == nil {
		t.Fatal("closed date must appear in the candidate list")
	}
	if closed.Selectable() {
		t.Error("closed date must not be selectable")
	}
	if closed.Label == "" {
		t.Error("closed date must carry a label")
	}
}

func TestListCandidateDatesHorizonBound(t *testing.T) {
	engine := fixtureEngine(fixtureSnapshot())
	// Horizon of 2 stops before the closed 12th and the open 13th.
	dates := engine.ListCandidateDates(testToday(), 2)
	if len(dates) != 2 {
		t.Fatalf("expected 2 candidate dates within horizon, got %d", len(dates))
	}
	if dates[len(dates)-1].Date != "2024-06-11" {
		t.Errorf("last candidate = %s, want 2024-06-11", dates[len(dates)-1].Date)
	}
}

// Scenario: default hours, no exceptions, no reservations.
func TestListTimeSlotsDefaultHours(t *testing.T) {
	engine := fixtureEngine(fixtureSnapshot())
	slots := engine.ListTimeSlots("2024-06-10")

	if len(slots) != 15 {
		t.Fatalf("expected 15 default-hours slots, got %d", len(slots))
	}
	if slots[0].StartMinute != 540 || slots[0].Label != "09:00" {
		t.Errorf("first slot = %d (%s), want 540 (09:00)", slots[0].StartMinute, slots[0].Label)
	}
	last := slots[len(slots)-1]
	if last.StartMinute != 960 || last.Label != "16:00" {
		t.Errorf("last slot = %d (%s), want 960 (16:00); the closing boundary slot is included", last.StartMinute, last.Label)
	}
	for i := 1; i < len(slots); i++ {
		if slots[i].StartMinute-slots[i-1].StartMinute != 30 {
			t.Fatalf("slots must be 30 minutes apart: %v", slotStarts(slots))
		}
	}
	for _, s := range slots {
		if s.DurationMinutes != 30 {
			t.Errorf("slot %s duration = %d, want 30", s.Label, s.DurationMinutes)
		}
	}
}

// Scenario: a reservation [13:00, 14:00) removes 13:00 and 13:30 only.
func TestListTimeSlotsDropsOccupied(t *testing.T) {
	snap := fixtureSnapshot()
	snap.Occupied["2024-06-10"] = []models.ReservationInterval{{Start: 780, End: 840}}
	engine := fixtureEngine(snap)

	slots := engine.ListTimeSlots("2024-06-10")
	if len(slots) != 13 {
		t.Fatalf("expected 13 slots, got %d: %v", len(slots), slotStarts(slots))
	}
	for _, s := range slots {
		if s.StartMinute == 780 || s.StartMinute == 810 {
			t.Errorf("occupied slot %s must be dropped", s.Label)
		}
	}
}

// Scenario: special hours [10:00, 12:00) yield exactly four slots.
func TestListTimeSlotsSpecialHours(t *testing.T) {
	engine := fixtureEngine(fixtureSnapshot())
	slots := engine.ListTimeSlots("2024-06-11")

	want := []int{600, 630, 660, 690}
	if got := slotStarts(slots); !reflect.DeepEqual(got, want) {
		t.Errorf("special-hours slots = %v, want %v", got, want)
	}
	// Every slot fits wholly inside the half-open range.
	for _, s := range slots {
		if s.StartMinute < 600 || s.StartMinute+s.DurationMinutes > 720 {
			t.Errorf("slot %s escapes the special range", s.Label)
		}
	}
}

func TestListTimeSlotsClosedDayEmpty(t *testing.T) {
	engine := fixtureEngine(fixtureSnapshot())
	if slots := engine.ListTimeSlots("2024-06-12"); len(slots) != 0 {
		t.Errorf("closed day must yield no slots, got %v", slotStarts(slots))
	}
}

func TestListTimeSlotsBackToBackBoundary(t *testing.T) {
	snap := fixtureSnapshot()
	// Reservation [10:00, 10:30): the 10:00 slot is blocked, the
	// back-to-back 10:30 slot is offered.
	snap.Occupied["2024-06-10"] = []models.ReservationInterval{{Start: 600, End: 630}}
	engine := fixtureEngine(snap)

	starts := slotStarts(engine.ListTimeSlots("2024-06-10"))
	for _, m := range starts {
		if m == 600 {
			t.Error("slot starting inside the reservation must be blocked")
		}
	}
	found := false
	for _, m := range starts {
		if m == 630 {
			found = true
		}
	}
	if !found {
		t.Error("slot starting exactly at the reservation end must be offered")
	}
}

func TestListTimeSlotsMidSlotOverlapBlocks(t *testing.T) {
	snap := fixtureSnapshot()
	// Reservation [10:15, 10:45) straddles both the 10:00 and 10:30 slots.
	snap.Occupied["2024-06-10"] = []models.ReservationInterval{{Start: 615, End: 645}}
	engine := fixtureEngine(snap)

	for _, m := range slotStarts(engine.ListTimeSlots("2024-06-10")) {
		if m == 600 || m == 630 {
			t.Errorf("slot %s overlaps the reservation and must be blocked", FormatMinutes(m))
		}
	}
}

func TestListTimeSlotsIdempotent(t *testing.T) {
	snap := fixtureSnapshot()
	snap.Occupied["2024-06-10"] = []models.ReservationInterval{{Start: 780, End: 840}}
	engine := fixtureEngine(snap)

	first := engine.ListTimeSlots("2024-06-10")
	second := engine.ListTimeSlots("2024-06-10")
	if !reflect.DeepEqual(first, second) {
		t.Error("identical snapshot queries must yield identical, identically-ordered results")
	}
}

func TestHasAnyCandidate(t *testing.T) {
	engine := fixtureEngine(fixtureSnapshot())
	if !engine.HasAnyCandidate(testToday(), 7) {
		t.Error("fixture has candidates")
	}

	empty := NewEngine(models.RegistrySnapshot{
		WindowTimes: map[string][]int{},
		Exceptions:  map[string]models.Exception{},
		Occupied:    map[string][]models.ReservationInterval{},
	}, time.UTC)
	if empty.HasAnyCandidate(testToday(), 7) {
		t.Error("empty snapshot has no candidates")
	}
}
