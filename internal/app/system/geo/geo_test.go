package geo

import (
	"errors"
	"testing"
)

func TestParseLngLat(t *testing.T) {
	tests := []struct {
		name    string
		lng     string
		lat     string
		wantErr error
	}{
		{"valid pair", "-87.65", "41.85", nil},
		{"extremes", "180", "-90", nil},
		{"zero zero", "0", "0", nil},
		{"garbage longitude", "east", "41.85", ErrBadLongitude},
		{"garbage latitude", "-87.65", "north", ErrBadLatitude},
		{"longitude out of range", "181", "41.85", ErrBadLongitude},
		{"latitude out of range", "-87.65", "90.1", ErrBadLatitude},
		{"empty input", "", "", ErrBadLongitude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseLngLat(tt.lng, tt.lat)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseLngLat(%q, %q) err = %v, want %v", tt.lng, tt.lat, err, tt.wantErr)
			}
		})
	}
}

// A transposed pair where the latitude magnitude exceeds 90 must be caught:
// passing (lat, lng) for a point in, say, Scandinavia puts 95.2 in the
// latitude slot and fails instead of silently querying the wrong spot.
func TestParseLngLat_TransposedPairRejected(t *testing.T) {
	lng, lat, err := ParseLngLat("27.1", "95.2")
	if err == nil {
		t.Fatalf("expected transposed pair to fail, got lng=%v lat=%v", lng, lat)
	}
	if !errors.Is(err, ErrBadLatitude) {
		t.Errorf("expected ErrBadLatitude, got %v", err)
	}

	// The same numbers in the correct order parse fine.
	if _, _, err := ParseLngLat("95.2", "27.1"); err != nil {
		t.Errorf("correctly ordered pair should parse, got %v", err)
	}
}

func TestValidatePair(t *testing.T) {
	if err := ValidatePair(-87.65, 41.85); err != nil {
		t.Errorf("valid pair rejected: %v", err)
	}
	if err := ValidatePair(200, 10); !errors.Is(err, ErrBadLongitude) {
		t.Errorf("expected ErrBadLongitude, got %v", err)
	}
	if err := ValidatePair(10, -91); !errors.Is(err, ErrBadLatitude) {
		t.Errorf("expected ErrBadLatitude, got %v", err)
	}
}
