package scheduling

import (
	"fmt"
	"time"
)

// DateLayout is the canonical calendar-date form used across all registries.
const DateLayout = "2006-01-02"

// Default business-hours range, minutes from midnight. The default range is
// inclusive of the closing boundary slot: slots are generated at every
// 30-minute mark from DefaultOpenMinute up to and including DefaultCloseMinute.
const (
	DefaultOpenMinute  = 9 * 60  // 09:00
	DefaultCloseMinute = 16 * 60 // 16:00
)

// instantLayouts are the accepted source timestamp forms, tried in order.
// Zone-less forms are interpreted in the reference location rather than
// silently coerced to UTC.
var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ToMinutes parses a strict 24h "HH:MM" clock string into minutes from
// midnight.
func ToMinutes(clock string) (int, error) {
	if len(clock) != 5 || clock[2] != ':' {
		return 0, NewMalformedTime(clock)
	}
	hh, ok1 := twoDigits(clock[0], clock[1])
	mm, ok2 := twoDigits(clock[3], clock[4])
	if !ok1 || !ok2 || hh > 23 || mm > 59 {
		return 0, NewMalformedTime(clock)
	}
	return hh*60 + mm, nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// FormatMinutes is the inverse of ToMinutes.
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// Half-open semantics: touching endpoints do not overlap, so a reservation
// ending exactly at 10:00 never blocks a slot starting at 10:00.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// ParseInstant is the single normalization point for source timestamps.
// It returns the instant expressed in the reference location, or a
// malformed-time error. Ambiguous zone-less strings are read in loc.
func ParseInstant(raw string, loc *time.Location) (time.Time, error) {
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, NewMalformedTime(raw)
}

// CanonicalDate returns the reference location's calendar date of the
// instant. The date is taken from the wall clock in loc, never from a
// UTC-normalized timestamp, so it cannot drift a day relative to the
// provider's local day.
func CanonicalDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// MinuteOfDay returns the instant's minutes since midnight in loc.
func MinuteOfDay(t time.Time, loc *time.Location) int {
	local := t.In(loc)
	return local.Hour()*60 + local.Minute()
}

// ParseDate parses a canonical "YYYY-MM-DD" string at midnight in loc.
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, NewMalformedDate(date)
	}
	return t, nil
}
