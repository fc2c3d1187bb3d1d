package models

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// FilterCriteria holds the three optional exact-match selections supplied by
// the filter widgets. A row matches when its sender or receiver falls in any
// non-empty set; the criteria combine with OR, not AND.
type FilterCriteria struct {
	Names    []string `json:"names,omitempty"`
	Phones   []string `json:"phones,omitempty"`
	Accounts []string `json:"accounts,omitempty"`
}

// Empty reports whether no selection was made at all. An empty selection is
// an explicit "no data" state, never a request for the full ledger.
func (c FilterCriteria) Empty() bool {
	return len(c.Names) == 0 && len(c.Phones) == 0 && len(c.Accounts) == 0
}

// Fingerprint returns a stable content hash of the criteria. Two criteria
// that select the same rows (same sets, any order, duplicates ignored)
// produce the same fingerprint, so it is usable as a cache key component.
func (c FilterCriteria) Fingerprint() string {
	h := sha256.New()
	for _, set := range [][]string{c.Names, c.Phones, c.Accounts} {
		h.Write([]byte{0x1d})
		for _, v := range canonical(set) {
			h.Write([]byte(v))
			h.Write([]byte{0x1f})
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

func canonical(set []string) []string {
	seen := make(map[string]struct{}, len(set))
	out := make([]string, 0, len(set))
	for _, v := range set {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
