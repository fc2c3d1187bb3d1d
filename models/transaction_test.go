package models

import (
	"errors"
	"testing"
)

func TestFilterCriteriaEmpty(t *testing.T) {
	if !(FilterCriteria{}).Empty() {
		t.Error("Expected zero criteria to be empty")
	}

	c := FilterCriteria{Phones: []string{"555-0100"}}
	if c.Empty() {
		t.Error("Expected criteria with one phone to be non-empty")
	}
}

func TestFilterCriteriaFingerprintStable(t *testing.T) {
	a := FilterCriteria{Names: []string{"Alice", "Bob"}, Accounts: []string{"ACC1"}}
	b := FilterCriteria{Names: []string{"Bob", "Alice", "Alice"}, Accounts: []string{" ACC1 "}}

	if a.Fingerprint() != b.Fingerprint() {
		t.Error("Expected fingerprint to ignore set order, duplicates and whitespace")
	}
}

func TestFilterCriteriaFingerprintDistinguishesSets(t *testing.T) {
	// "Alice" as a name selects different rows than "Alice" as an account.
	a := FilterCriteria{Names: []string{"Alice"}}
	b := FilterCriteria{Accounts: []string{"Alice"}}

	if a.Fingerprint() == b.Fingerprint() {
		t.Error("Expected fingerprints to differ between criterion sets")
	}
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		input    string
		lat, lon float64
		wantErr  bool
	}{
		{"40.7128, -74.0060", 40.7128, -74.0060, false},
		{"40.7128,-74.0060", 40.7128, -74.0060, false},
		{"not a location", 0, 0, true},
		{"40.7128", 0, 0, true},
		{"40.7128, east", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		coord, err := ParseCoordinate(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseCoordinate(%q): expected error", tt.input)
				continue
			}
			var malformed *MalformedLocationError
			if !errors.As(err, &malformed) {
				t.Errorf("ParseCoordinate(%q): expected MalformedLocationError, got %T", tt.input, err)
			} else if malformed.Value != tt.input {
				t.Errorf("ParseCoordinate(%q): error names value %q", tt.input, malformed.Value)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCoordinate(%q): unexpected error %v", tt.input, err)
			continue
		}
		if coord.Lat != tt.lat || coord.Lon != tt.lon {
			t.Errorf("ParseCoordinate(%q) = %+v, expected (%v, %v)", tt.input, coord, tt.lat, tt.lon)
		}
	}
}
