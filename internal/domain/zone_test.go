package domain

import "testing"

func TestZoneCatalogIsClosed(t *testing.T) {
	for _, id := range AllZoneIDs() {
		z, ok := ZoneByID(id)
		if !ok {
			t.Fatalf("catalog missing zone %q", id)
		}
		if z.ID != id {
			t.Errorf("zone %q has mismatched ID %q", id, z.ID)
		}
		if z.Label == "" {
			t.Errorf("zone %q has empty label", id)
		}
		if z.RadiusMeters <= 0 {
			t.Errorf("zone %q has non-positive radius", id)
		}
	}

	if _, ok := ZoneByID("atlantis"); ok {
		t.Fatal("unknown identifier must not resolve")
	}
}

func TestDefaultWindows(t *testing.T) {
	defaults := DefaultWindows()

	cases := []struct {
		id    ZoneID
		start string
		end   string
	}{
		{ZoneMakkah, "00:00", "23:59"},
		{ZoneMedina, "00:00", "23:59"},
		{ZoneRiyadhCenter, "06:00", "21:00"},
		{ZoneJeddah, "09:00", "19:00"},
		{ZoneEasternProvince, "00:00", "00:00"},
	}

	for _, tc := range cases {
		w, ok := defaults[tc.id]
		if !ok {
			t.Fatalf("no default window for %q", tc.id)
		}
		if w.Start.String() != tc.start || w.End.String() != tc.end {
			t.Errorf("%q window = %s-%s, want %s-%s", tc.id, w.Start, w.End, tc.start, tc.end)
		}
	}
}
