package services

import (
	"testing"

	"bankflow/backend/models"
)

func TestDetailRowsDecoration(t *testing.T) {
	rows := twoPartyLedger()
	detail := DetailRows(rows)

	if len(detail) != 2 {
		t.Fatalf("Expected 2 detail rows, got %d", len(detail))
	}
	if detail[0].Type != "🟢 Credit" {
		t.Errorf("Expected decorated Credit type, got %q", detail[0].Type)
	}
	if detail[1].Type != "🔴 Debit" {
		t.Errorf("Expected decorated Debit type, got %q", detail[1].Type)
	}
	if detail[0].Purpose != "💰 Transfer" {
		t.Errorf("Expected decorated purpose, got %q", detail[0].Purpose)
	}

	// Decoration must not leak into the canonical rows.
	if rows[0].Type != models.TypeCredit || rows[0].Purpose != "Transfer" {
		t.Error("Expected canonical rows untouched by decoration")
	}
}

func TestDecoratePurposeUnknown(t *testing.T) {
	if got := decoratePurpose("Donation"); got != "Donation" {
		t.Errorf("Expected unmatched purpose unchanged, got %q", got)
	}
}

func TestCollectFilterOptions(t *testing.T) {
	options := CollectFilterOptions(twoPartyLedger())

	wantNames := []string{"A", "B"}
	if len(options.Names) != 2 || options.Names[0] != wantNames[0] || options.Names[1] != wantNames[1] {
		t.Errorf("Expected sorted distinct names %v, got %v", wantNames, options.Names)
	}
	if len(options.Phones) != 2 {
		t.Errorf("Expected 2 distinct phones, got %v", options.Phones)
	}
	if len(options.Accounts) != 2 {
		t.Errorf("Expected 2 distinct accounts, got %v", options.Accounts)
	}
}
