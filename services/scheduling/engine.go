package scheduling

import (
	"fmt"
	"time"

	"slotwise/models"
)

// Engine answers the two availability queries over an immutable registry
// snapshot. It is a pure, synchronous derivation: no I/O, no mutation, and
// identical inputs always yield identical, identically-ordered results.
type Engine struct {
	snap models.RegistrySnapshot
	loc  *time.Location
}

// NewEngine wraps a snapshot. The location must be the reference timezone
// the snapshot was built against.
func NewEngine(snap models.RegistrySnapshot, loc *time.Location) *Engine {
	return &Engine{snap: snap, loc: loc}
}

// ListCandidateDates walks the horizon from today and returns, in ascending
// date order, every offerable date. Closed days are shown (tagged closed,
// never selectable); days with neither availability nor an exception are
// omitted entirely.
func (e *Engine) ListCandidateDates(today time.Time, horizonDays int) []models.CandidateDate {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, e.loc)

	var out []models.CandidateDate
	for i := 0; i < horizonDays; i++ {
		day := start.AddDate(0, 0, i)
		date := day.Format(DateLayout)
		label := day.Format("Mon, Jan 2")

		exc, hasExc := e.snap.Exceptions[date]
		if hasExc && exc.Kind == models.ExceptionClosed {
			out = append(out, models.CandidateDate{
				Date:   date,
				Status: models.DateClosed,
				Label:  label + " (closed)",
			})
			continue
		}

		if len(e.snap.WindowTimes[date]) == 0 {
			// No availability and no closure: not offerable, stay silent.
			continue
		}

		status := models.DateOpen
		if hasExc && exc.IsSpecialHours() {
			status = models.DateSpecialHours
			label = fmt.Sprintf("%s (%s - %s)", label,
				FormatMinutes(exc.RangeStart), FormatMinutes(exc.RangeEnd))
		}
		out = append(out, models.CandidateDate{Date: date, Status: status, Label: label})
	}
	return out
}

// ListTimeSlots returns the bookable 30-minute slots for a date in ascending
// start order. Closed days yield nothing; special hours replace the default
// business range for that date only; slots overlapping any reservation
// interval are dropped.
func (e *Engine) ListTimeSlots(date string) []models.TimeSlot {
	exc, hasExc := e.snap.Exceptions[date]
	if hasExc && exc.Kind == models.ExceptionClosed {
		return nil
	}

	var starts []int
	if hasExc && exc.IsSpecialHours() {
		// Half-open range: the whole slot must fit inside it.
		for m := exc.RangeStart; m+models.SlotDurationMinutes <= exc.RangeEnd; m += models.SlotDurationMinutes {
			starts = append(starts, m)
		}
	} else {
		// Default hours include the closing boundary slot.
		for m := DefaultOpenMinute; m <= DefaultCloseMinute; m += models.SlotDurationMinutes {
			starts = append(starts, m)
		}
	}

	occupied := e.snap.Occupied[date]
	var out []models.TimeSlot
	for _, m := range starts {
		if e.isOccupied(occupied, m) {
			continue
		}
		out = append(out, models.TimeSlot{
			Date:            date,
			StartMinute:     m,
			DurationMinutes: models.SlotDurationMinutes,
			Label:           FormatMinutes(m),
		})
	}
	return out
}

func (e *Engine) isOccupied(occupied []models.ReservationInterval, startMinute int) bool {
	for _, r := range occupied {
		if Overlaps(startMinute, startMinute+models.SlotDurationMinutes, r.Start, r.End) {
			return true
		}
	}
	return false
}

// HasAnyCandidate reports whether any date in the horizon is offerable at
// all. Used to surface "no availability configured" when every source feed
// came back empty.
func (e *Engine) HasAnyCandidate(today time.Time, horizonDays int) bool {
	return len(e.ListCandidateDates(today, horizonDays)) > 0
}
