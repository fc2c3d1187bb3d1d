package models

import "time"

// FilterPreset is a named, persisted filter selection that the sidebar can
// recall later.
type FilterPreset struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Criteria  FilterCriteria `json:"criteria"`
	CreatedAt time.Time      `json:"createdAt"`
}
