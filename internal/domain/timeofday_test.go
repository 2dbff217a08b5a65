package domain

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"00:00", 0, false},
		{"06:00", 360, false},
		{"23:59", 1439, false},
		{"9:05", 545, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseTimeOfDay(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	if got := TimeOfDay(545).String(); got != "09:05" {
		t.Fatalf("String() = %q, want %q", got, "09:05")
	}
}

func TestTimeOfDayFrom(t *testing.T) {
	ts := time.Date(2026, 3, 2, 21, 30, 59, 0, time.UTC)
	if got := TimeOfDayFrom(ts); got != 21*60+30 {
		t.Fatalf("TimeOfDayFrom = %d, want %d", got, 21*60+30)
	}
}

func TestWindowContains(t *testing.T) {
	cases := []struct {
		name   string
		window Window
		t      TimeOfDay
		want   bool
	}{
		{"inside plain window", Window{Start: 360, End: 1260}, 540, true},
		{"start inclusive", Window{Start: 360, End: 1260}, 360, true},
		{"end exclusive", Window{Start: 360, End: 1260}, 1260, false},
		{"before start", Window{Start: 360, End: 1260}, 300, false},
		{"equal start end never matches", Window{Start: 0, End: 0}, 0, false},
		{"equal start end midday", Window{Start: 600, End: 600}, 600, false},
		{"wrap evening side", Window{Start: 1320, End: 240}, 1380, true},
		{"wrap morning side", Window{Start: 1320, End: 240}, 120, true},
		{"wrap outside", Window{Start: 1320, End: 240}, 720, false},
	}

	for _, tc := range cases {
		if got := tc.window.Contains(tc.t); got != tc.want {
			t.Errorf("%s: Contains(%v) = %v, want %v", tc.name, tc.t, got, tc.want)
		}
	}
}

func TestVehicleZoneGating(t *testing.T) {
	trailer := VehicleProfile{Type: VehicleTrailer, AxleCount: 3}
	if !trailer.SubjectToZoneRestrictions() {
		t.Fatal("trailer must be subject to zone restrictions")
	}

	fiveAxle := VehicleProfile{Type: VehicleFiveAxleTrailer, AxleCount: 5}
	if fiveAxle.SubjectToZoneRestrictions() {
		t.Fatal("5-axle trailer is not subject to zone restrictions")
	}
}
