package models

// AvailabilityWindow is one published open period for a service, as delivered
// by the availability feed. StartInstant and EndInstant are timestamp strings
// in the reference timezone; parsing happens at the ingestion boundary.
type AvailabilityWindow struct {
	ServiceID    string `bson:"serviceId" json:"serviceId"`
	StartInstant string `bson:"startInstant" json:"startInstant"`
	EndInstant   string `bson:"endInstant" json:"endInstant"`
	Active       bool   `bson:"active" json:"active"`
}

// ExceptionKind distinguishes the two date-scoped overrides.
type ExceptionKind string

const (
	ExceptionClosed       ExceptionKind = "closed"
	ExceptionSpecialHours ExceptionKind = "specialHours"
)

// Exception overrides availability for a single calendar date. RangeStart and
// RangeEnd (minutes from midnight, RangeStart < RangeEnd) are only meaningful
// when Kind is "specialHours".
type Exception struct {
	ServiceID  string        `bson:"serviceId" json:"serviceId"`
	Date       string        `bson:"date" json:"date"` // "2006-01-02"
	Kind       ExceptionKind `bson:"kind" json:"kind"`
	RangeStart int           `bson:"rangeStart,omitempty" json:"rangeStart,omitempty"`
	RangeEnd   int           `bson:"rangeEnd,omitempty" json:"rangeEnd,omitempty"`
}

// IsSpecialHours reports whether the exception substitutes special hours.
func (e Exception) IsSpecialHours() bool {
	return e.Kind == ExceptionSpecialHours
}
