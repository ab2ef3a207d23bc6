package booking

import (
	"context"
	"sort"
	"sync"

	"slotwise/config"
	"slotwise/models"
	"slotwise/services/scheduling"
	"slotwise/utils"

	"go.uber.org/zap"
)

// Feed names reported in RegistrySnapshot.DegradedSources.
const (
	SourceAvailability = "availabilityWindows"
	SourceExceptions   = "exceptions"
	SourceReservations = "reservations"
)

// AvailabilitySource, ExceptionSource and ReservationSource are the read
// boundaries of the three external feeds.
type AvailabilitySource interface {
	GetAvailabilityWindows(ctx context.Context, serviceID string) ([]models.AvailabilityWindow, error)
}

type ExceptionSource interface {
	GetExceptions(ctx context.Context, serviceID string) ([]models.Exception, error)
}

type ReservationSource interface {
	GetReservations(ctx context.Context, serviceID string) ([]models.Reservation, error)
}

// SnapshotLoader issues the single batched fetch-all per service lookup.
// The three feeds are fetched concurrently, and each individual failure
// degrades to an empty registry rather than failing the whole engine: a
// missing exception feed still allows default-hours slots to be computed.
type SnapshotLoader struct {
	Availability AvailabilitySource
	Exceptions   ExceptionSource
	Reservations ReservationSource
}

// Load fetches all three feeds and assembles the immutable snapshot. It
// never fails; degraded feeds are listed on the snapshot and logged.
func (l *SnapshotLoader) Load(ctx context.Context, serviceID string) models.RegistrySnapshot {
	logger := utils.GetLogger()

	var (
		windows      []models.AvailabilityWindow
		exceptions   []models.Exception
		reservations []models.Reservation
		degraded     []string
		mu           sync.Mutex
		wg           sync.WaitGroup
	)

	degrade := func(source string, err error) {
		logger.Warn("source feed failed, degrading to empty registry",
			zap.String("serviceId", serviceID), zap.String("source", source), zap.Error(err))
		mu.Lock()
		degraded = append(degraded, source)
		mu.Unlock()
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		w, err := l.Availability.GetAvailabilityWindows(ctx, serviceID)
		if err != nil {
			degrade(SourceAvailability, err)
			return
		}
		windows = w
	}()
	go func() {
		defer wg.Done()
		e, err := l.Exceptions.GetExceptions(ctx, serviceID)
		if err != nil {
			degrade(SourceExceptions, err)
			return
		}
		exceptions = e
	}()
	go func() {
		defer wg.Done()
		r, err := l.Reservations.GetReservations(ctx, serviceID)
		if err != nil {
			degrade(SourceReservations, err)
			return
		}
		reservations = r
	}()
	wg.Wait()

	sort.Strings(degraded)
	return scheduling.BuildSnapshot(serviceID, windows, exceptions, reservations,
		config.ReferenceLocation(), degraded)
}
