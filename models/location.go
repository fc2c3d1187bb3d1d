package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinate is a branch geolocation.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// MalformedLocationError reports a branch location string that could not be
// parsed into a coordinate pair.
type MalformedLocationError struct {
	Value string
}

func (e *MalformedLocationError) Error() string {
	return fmt.Sprintf("malformed branch location %q", e.Value)
}

// ParseCoordinate parses a "lat, lon" branch location string.
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Coordinate{}, &MalformedLocationError{Value: s}
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinate{}, &MalformedLocationError{Value: s}
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinate{}, &MalformedLocationError{Value: s}
	}
	return Coordinate{Lat: lat, Lon: lon}, nil
}
