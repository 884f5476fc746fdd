package donation

import (
	"testing"
	"time"
)

func TestAggregate(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	records := []Record{
		{DonorID: "a", CloseDate: now.AddDate(0, 0, -10), Amount: 100},
		{DonorID: "a", CloseDate: now.AddDate(0, 0, -200), Amount: 50},
		{DonorID: "a", CloseDate: now.AddDate(0, 0, -400), Amount: 25},
		{DonorID: "b", CloseDate: now.AddDate(0, 0, -30), Amount: 1000},
	}

	aggregates := Aggregate(records, now)
	if len(aggregates) != 2 {
		t.Fatalf("got %d aggregates, want 2", len(aggregates))
	}

	// Sorted by donor id.
	a, b := aggregates[0], aggregates[1]
	if a.DonorID != "a" || b.DonorID != "b" {
		t.Fatalf("unexpected order: %s, %s", a.DonorID, b.DonorID)
	}

	if a.Frequency != 3 {
		t.Errorf("donor a frequency = %d, want 3", a.Frequency)
	}
	if a.Monetary != 175 {
		t.Errorf("donor a monetary = %v, want 175", a.Monetary)
	}
	if !a.LastGift.Equal(now.AddDate(0, 0, -10)) {
		t.Errorf("donor a last gift = %v, want 10 days ago", a.LastGift)
	}
	if a.RecencyDays != 10 {
		t.Errorf("donor a recency = %v days, want 10", a.RecencyDays)
	}
	if b.Frequency != 1 || b.Monetary != 1000 {
		t.Errorf("donor b = {freq %d, monetary %v}, want {1, 1000}", b.Frequency, b.Monetary)
	}
}

func TestAggregateDropsNonPositiveAmounts(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	records := []Record{
		{DonorID: "a", CloseDate: now.AddDate(0, 0, -10), Amount: 100},
		{DonorID: "a", CloseDate: now.AddDate(0, 0, -5), Amount: 0},
		{DonorID: "a", CloseDate: now.AddDate(0, 0, -3), Amount: -40},
		{DonorID: "refund-only", CloseDate: now.AddDate(0, 0, -2), Amount: -100},
	}

	aggregates := Aggregate(records, now)
	if len(aggregates) != 1 {
		t.Fatalf("got %d aggregates, want 1: a donor with only non-positive gifts produces no row", len(aggregates))
	}

	a := aggregates[0]
	if a.Frequency != 1 {
		t.Errorf("frequency = %d, want 1: non-positive gifts count nothing", a.Frequency)
	}
	if a.Monetary != 100 {
		t.Errorf("monetary = %v, want 100", a.Monetary)
	}
	if a.RecencyDays != 10 {
		t.Errorf("recency = %v, want 10: the zero-amount gift must not move last gift date", a.RecencyDays)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	if got := Aggregate(nil, time.Now()); len(got) != 0 {
		t.Fatalf("expected no aggregates, got %d", len(got))
	}
}
