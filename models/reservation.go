package models

import "time"

// ReservationStatus tags a reservation's persistence state. Pending
// reservations (accepted client-side, not yet settled) still block
// occupancy; only the tag differs.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
)

// Reservation is an already-accepted booking occupying time on a service.
// IntervalStart and IntervalEnd are minutes from midnight with half-open
// semantics: a reservation ending at 600 does not occupy the 600 mark.
type Reservation struct {
	ID            string            `bson:"id" json:"id"`
	ServiceID     string            `bson:"serviceId" json:"serviceId"`
	UserID        string            `bson:"userId,omitempty" json:"userId,omitempty"`
	Date          string            `bson:"date" json:"date"` // "2006-01-02"
	IntervalStart int               `bson:"intervalStart" json:"intervalStart"`
	IntervalEnd   int               `bson:"intervalEnd" json:"intervalEnd"`
	Status        ReservationStatus `bson:"status" json:"status"`
	Notes         string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time         `bson:"createdAt" json:"createdAt"`
}

// ReservationInterval is the occupancy view of a reservation: just the
// blocking minutes, status erased.
type ReservationInterval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}
