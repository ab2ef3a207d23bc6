package scheduling

import (
	"testing"
	"time"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		clock   string
		want    int
		wantErr bool
	}{
		{"09:00", 540, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"16:00", 960, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"9:00", 0, true},
		{"0900", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
		{"12:3", 0, true},
	}
	for _, tc := range cases {
		got, err := ToMinutes(tc.clock)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ToMinutes(%q): expected error, got %d", tc.clock, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ToMinutes(%q): unexpected error %v", tc.clock, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ToMinutes(%q) = %d, want %d", tc.clock, got, tc.want)
		}
	}
}

func TestFormatMinutesRoundTrip(t *testing.T) {
	for _, clock := range []string{"00:00", "09:00", "13:30", "16:00", "23:59"} {
		m, err := ToMinutes(clock)
		if err != nil {
			t.Fatalf("ToMinutes(%q): %v", clock, err)
		}
		if got := FormatMinutes(m); got != clock {
			t.Errorf("FormatMinutes(ToMinutes(%q)) = %q", clock, got)
		}
	}
}

func TestOverlapsHalfOpen(t *testing.T) {
	// A reservation ending exactly at 10:00 must not block a slot starting
	// at 10:00.
	if Overlaps(600, 630, 570, 600) {
		t.Error("touching endpoints must not overlap")
	}
	if Overlaps(570, 600, 600, 630) {
		t.Error("touching endpoints must not overlap (reversed)")
	}
	if !Overlaps(600, 630, 615, 645) {
		t.Error("partial intersection must overlap")
	}
	if !Overlaps(600, 630, 600, 630) {
		t.Error("identical intervals must overlap")
	}
	if !Overlaps(600, 630, 540, 720) {
		t.Error("containment must overlap")
	}
	if Overlaps(600, 630, 700, 730) {
		t.Error("disjoint intervals must not overlap")
	}
}

func TestParseInstantZonelessUsesReferenceLocation(t *testing.T) {
	loc := time.FixedZone("REF", -4*3600)
	got, err := ParseInstant("2024-06-10T09:00:00", loc)
	if err != nil {
		t.Fatalf("ParseInstant: %v", err)
	}
	want := time.Date(2024, 6, 10, 9, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("ParseInstant = %v, want %v", got, want)
	}
}

func TestParseInstantMalformed(t *testing.T) {
	if _, err := ParseInstant("not-a-timestamp", time.UTC); err == nil {
		t.Error("expected malformed-time error")
	}
	if _, err := ParseInstant("2024-13-40T09:00:00", time.UTC); err == nil {
		t.Error("expected malformed-time error for impossible date")
	}
}

func TestCanonicalDateNoUTCDrift(t *testing.T) {
	loc := time.FixedZone("REF", -4*3600)
	// 23:30 local is already the next day in UTC; the canonical date must
	// stay on the provider's local day.
	instant, err := ParseInstant("2024-06-10T23:30:00-04:00", loc)
	if err != nil {
		t.Fatalf("ParseInstant: %v", err)
	}
	if instant.UTC().Format(DateLayout) != "2024-06-11" {
		t.Fatalf("fixture broken: UTC date should differ from local date")
	}
	if got := CanonicalDate(instant, loc); got != "2024-06-10" {
		t.Errorf("CanonicalDate = %q, want 2024-06-10", got)
	}
}

func TestMinuteOfDay(t *testing.T) {
	loc := time.UTC
	instant := time.Date(2024, 6, 10, 13, 30, 0, 0, loc)
	if got := MinuteOfDay(instant, loc); got != 810 {
		t.Errorf("MinuteOfDay = %d, want 810", got)
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2024-06-10", time.UTC); err != nil {
		t.Errorf("ParseDate valid: %v", err)
	}
	for _, bad := range []string{"2024-6-10", "10/06/2024", "2024-06-32", ""} {
		if _, err := ParseDate(bad, time.UTC); err == nil {
			t.Errorf("ParseDate(%q): expected error", bad)
		}
	}
}
