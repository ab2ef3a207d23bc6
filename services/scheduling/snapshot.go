package scheduling

import (
	"sort"
	"time"

	"slotwise/models"
	"slotwise/utils"

	"go.uber.org/zap"
)

// BuildSnapshot assembles the immutable per-session registry snapshot from
// raw feed rows. One bad record never hides valid availability: malformed
// windows, duplicate or invalid exceptions, and inverted reservation
// intervals are skipped with a data-quality warning and the build continues.
func BuildSnapshot(
	serviceID string,
	windows []models.AvailabilityWindow,
	exceptions []models.Exception,
	reservations []models.Reservation,
	loc *time.Location,
	degraded []string,
) models.RegistrySnapshot {
	logger := utils.GetLogger()

	windowTimes := make(map[string][]int)
	for _, w := range windows {
		if !w.Active {
			continue
		}
		start, err := ParseInstant(w.StartInstant, loc)
		if err != nil {
			logger.Warn("skipping availability window with malformed start instant",
				zap.String("serviceId", serviceID), zap.String("startInstant", w.StartInstant))
			continue
		}
		if _, err := ParseInstant(w.EndInstant, loc); err != nil {
			logger.Warn("skipping availability window with malformed end instant",
				zap.String("serviceId", serviceID), zap.String("endInstant", w.EndInstant))
			continue
		}
		date := CanonicalDate(start, loc)
		windowTimes[date] = append(windowTimes[date], MinuteOfDay(start, loc))
	}
	for date, times := range windowTimes {
		windowTimes[date] = sortedUnique(times)
	}

	excByDate := make(map[string]models.Exception)
	for _, e := range exceptions {
		if _, err := ParseDate(e.Date, loc); err != nil {
			logger.Warn("skipping exception with malformed date",
				zap.String("serviceId", serviceID), zap.String("date", e.Date))
			continue
		}
		switch e.Kind {
		case models.ExceptionClosed:
		case models.ExceptionSpecialHours:
			if e.RangeStart >= e.RangeEnd {
				logger.Warn("skipping special-hours exception with inverted range",
					zap.String("serviceId", serviceID), zap.String("date", e.Date),
					zap.Int("rangeStart", e.RangeStart), zap.Int("rangeEnd", e.RangeEnd))
				continue
			}
		default:
			logger.Warn("skipping exception with unknown kind",
				zap.String("serviceId", serviceID), zap.String("kind", string(e.Kind)))
			continue
		}
		if _, dup := excByDate[e.Date]; dup {
			// At most one exception per date; first record wins.
			logger.Warn("dropping duplicate exception for date",
				zap.String("serviceId", serviceID), zap.String("date", e.Date))
			continue
		}
		excByDate[e.Date] = e
	}

	occupied := make(map[string][]models.ReservationInterval)
	for _, r := range reservations {
		if r.IntervalStart >= r.IntervalEnd {
			logger.Warn("skipping reservation with inverted interval",
				zap.String("serviceId", serviceID), zap.String("reservationId", r.ID))
			continue
		}
		occupied[r.Date] = append(occupied[r.Date], models.ReservationInterval{
			Start: r.IntervalStart,
			End:   r.IntervalEnd,
		})
	}
	for date := range occupied {
		ivs := occupied[date]
		sort.Slice(ivs, func(i, j int) bool { return ivs[i].Start < ivs[j].Start })
	}

	return models.RegistrySnapshot{
		ServiceID:       serviceID,
		WindowTimes:     windowTimes,
		Exceptions:      excByDate,
		Occupied:        occupied,
		DegradedSources: degraded,
		FetchedAt:       time.Now(),
	}
}

func sortedUnique(times []int) []int {
	sort.Ints(times)
	out := times[:0]
	for i, t := range times {
		if i == 0 || t != out[len(out)-1] {
			out = append(out, t)
		}
	}
	return out
}
