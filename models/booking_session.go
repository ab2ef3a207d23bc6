package models

import "time"

// BookingSession holds everything between opening the booking UI and final
// confirmation: the immutable registry snapshot the engine reads, plus the
// buyer's validated selection. Stored as a JSON blob in Redis under the
// session ID.
type BookingSession struct {
	SessionID string           `json:"sessionId"`
	ServiceID string           `json:"serviceId"`
	UserID    string           `json:"userId,omitempty"`
	Snapshot  RegistrySnapshot `json:"snapshot"`
	Selection SelectionState   `json:"selection"`
	CreatedAt time.Time        `json:"createdAt"`
}

// RegistrySnapshot is the per-session, immutable capture of the three source
// registries, keyed by canonical date. A refetch replaces the whole snapshot;
// the engine never sees one registry newer than another.
type RegistrySnapshot struct {
	ServiceID string `json:"serviceId"`
	// WindowTimes maps date -> sorted, deduplicated start minutes published
	// by the provider (active windows only).
	WindowTimes map[string][]int `json:"windowTimes"`
	// Exceptions maps date -> the single override for that date.
	Exceptions map[string]Exception `json:"exceptions"`
	// Occupied maps date -> blocking reservation intervals (pending and
	// confirmed alike).
	Occupied map[string][]ReservationInterval `json:"occupied"`
	// DegradedSources lists feeds that failed and fell back to empty.
	DegradedSources []string  `json:"degradedSources,omitempty"`
	FetchedAt       time.Time `json:"fetchedAt"`
}

// SubmissionPayload is handed to the booking-submission collaborator once
// the selection re-validates. The collaborator owns write-side conflict
// handling; this payload is never self-certifying.
type SubmissionPayload struct {
	ServiceID string `json:"serviceId"`
	UserID    string `json:"userId,omitempty"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Notes     string `json:"notes,omitempty"`
}

// BookingConfirmation is returned to the client after the submission
// collaborator accepts the payload.
type BookingConfirmation struct {
	BookingID string    `json:"bookingId"`
	ServiceID string    `json:"serviceId"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	CreatedAt time.Time `json:"createdAt"`
}
