package services

import (
	"reflect"
	"testing"

	"bankflow/backend/models"
)

func TestBalanceTimelineOutgoingRoundTrip(t *testing.T) {
	// sender_post_balance = 500, amount = 100: the outgoing bucket must
	// reconstruct open=high=500, low=close=400.
	sender := testParty("ACC-S", "S", 500)
	receiver := testParty("ACC-R", "R", 1000)
	rows := []models.Transaction{
		testRow("tx1", sender, receiver, 100, "2024-03-01 09:00:00", models.TypeCredit),
	}

	bars := BalanceTimeline(rows)
	if len(bars) != 2 {
		t.Fatalf("Expected one outgoing and one incoming bar, got %d", len(bars))
	}

	out := bars[0]
	if out.Leg != models.LegOutgoing || out.Account != "ACC-S" {
		t.Fatalf("Expected the outgoing pass first, got %+v", out)
	}
	if !mustEqual(out.Open, 500) || !mustEqual(out.High, 500) {
		t.Errorf("Expected open=high=500, got open=%s high=%s", out.Open, out.High)
	}
	if !mustEqual(out.Low, 400) || !mustEqual(out.Close, 400) {
		t.Errorf("Expected low=close=400, got low=%s close=%s", out.Low, out.Close)
	}

	in := bars[1]
	if in.Leg != models.LegIncoming || in.Account != "ACC-R" {
		t.Fatalf("Expected the incoming pass second, got %+v", in)
	}
	if !mustEqual(in.Open, 1000) || !mustEqual(in.Low, 1000) {
		t.Errorf("Expected open=low=1000, got open=%s low=%s", in.Open, in.Low)
	}
	if !mustEqual(in.High, 1100) || !mustEqual(in.Close, 1100) {
		t.Errorf("Expected high=close=1100, got high=%s close=%s", in.High, in.Close)
	}
}

func TestBalanceTimelineBucketing(t *testing.T) {
	receiver := testParty("ACC-R", "R", 1000)

	// Three same-day transfers from the same account, balances declining.
	rows := []models.Transaction{
		testRow("tx1", testParty("ACC-S", "S", 500), receiver, 100, "2024-03-01 09:00:00", models.TypeCredit),
		testRow("tx2", testParty("ACC-S", "S", 450), receiver, 50, "2024-03-01 12:00:00", models.TypeCredit),
		testRow("tx3", testParty("ACC-S", "S", 430), receiver, 20, "2024-03-01 23:59:59", models.TypeCredit),
	}

	bars := BalanceTimeline(rows)

	var out []models.BalanceBar
	for _, bar := range bars {
		if bar.Leg == models.LegOutgoing {
			out = append(out, bar)
		}
	}
	if len(out) != 1 {
		t.Fatalf("Expected one outgoing bucket for the day, got %d", len(out))
	}

	bar := out[0]
	if got := bar.Date.Format("2006-01-02 15:04:05"); got != "2024-03-01 00:00:00" {
		t.Errorf("Expected calendar-day truncation, got %s", got)
	}
	if !mustEqual(bar.Open, 500) {
		t.Errorf("Expected open from first row (500), got %s", bar.Open)
	}
	if !mustEqual(bar.High, 500) {
		t.Errorf("Expected high = max post-balance (500), got %s", bar.High)
	}
	if !mustEqual(bar.Low, 400) {
		t.Errorf("Expected low = min(post-balance - amount) (400), got %s", bar.Low)
	}
	if !mustEqual(bar.Close, 410) {
		t.Errorf("Expected close from last row (430-20=410), got %s", bar.Close)
	}
}

func TestBalanceTimelineSplitsByDayAndType(t *testing.T) {
	receiver := testParty("ACC-R", "R", 1000)
	rows := []models.Transaction{
		testRow("tx1", testParty("ACC-S", "S", 500), receiver, 100, "2024-03-01 09:00:00", models.TypeCredit),
		testRow("tx2", testParty("ACC-S", "S", 450), receiver, 50, "2024-03-02 09:00:00", models.TypeCredit),
		testRow("tx3", testParty("ACC-S", "S", 430), receiver, 20, "2024-03-02 10:00:00", models.TypeDebit),
	}

	bars := BalanceTimeline(rows)

	var out []models.BalanceBar
	for _, bar := range bars {
		if bar.Leg == models.LegOutgoing {
			out = append(out, bar)
		}
	}
	// Day 1 Credit, day 2 Credit, day 2 Debit.
	if len(out) != 3 {
		t.Fatalf("Expected 3 outgoing buckets across days/types, got %d", len(out))
	}
}

func TestBalanceTimelineConcatenatesLegs(t *testing.T) {
	// A and B pay each other the same day: each account appears once per leg.
	bars := BalanceTimeline(twoPartyLedger())

	if len(bars) != 4 {
		t.Fatalf("Expected 4 bars (2 rows x 2 legs), got %d", len(bars))
	}
	for i, bar := range bars {
		wantLeg := models.LegOutgoing
		if i >= 2 {
			wantLeg = models.LegIncoming
		}
		if bar.Leg != wantLeg {
			t.Errorf("Bar %d: expected leg %s, got %s", i, wantLeg, bar.Leg)
		}
	}
}

func TestBalanceTimelineEmptyInput(t *testing.T) {
	bars := BalanceTimeline(nil)
	if len(bars) != 0 {
		t.Errorf("Expected no bars for empty input, got %d", len(bars))
	}
}

func TestBalanceTimelineIdempotent(t *testing.T) {
	rows := twoPartyLedger()
	first := BalanceTimeline(rows)
	second := BalanceTimeline(rows)
	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical output across repeated runs")
	}
}
