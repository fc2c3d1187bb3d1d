package models

// Ledger is the read-only in-memory transaction table. Version changes on
// every load, so (Version, FilterCriteria.Fingerprint()) identifies a derived
// view for caching.
type Ledger struct {
	Version string
	Rows    []Transaction
}
