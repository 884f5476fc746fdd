package donation

import (
	"testing"
	"time"
)

func gift(donorID string, accountType AccountType, recurring bool) Record {
	return Record{
		DonorID:         donorID,
		AccountType:     accountType,
		CloseDate:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Amount:          50,
		RecurringLinked: recurring,
	}
}

func TestPartitionFourGroups(t *testing.T) {
	records := []Record{
		gift("org", AccountOrganisation, false),
		gift("org", AccountOrganisation, true),
		gift("rg", AccountIndividual, true),
		gift("rg", AccountIndividual, true),
		gift("oneoff", AccountIndividual, false),
		gift("mixed", AccountIndividual, true),
		gift("mixed", AccountIndividual, false),
	}

	groups := Partition(records)

	tests := []struct {
		group Group
		donor string
		count int
	}{
		{GroupOrganisation, "org", 2},
		{GroupRGOnly, "rg", 2},
		{GroupNonRGOnly, "oneoff", 1},
		{GroupRGAndNonRG, "mixed", 2},
	}
	for _, tt := range tests {
		got := groups[tt.group]
		if len(got) != tt.count {
			t.Errorf("group %s: got %d records, want %d", tt.group, len(got), tt.count)
			continue
		}
		for _, rec := range got {
			if rec.DonorID != tt.donor {
				t.Errorf("group %s: unexpected donor %s", tt.group, rec.DonorID)
			}
		}
	}
}

func TestPartitionIsCompleteAndDisjoint(t *testing.T) {
	records := []Record{
		gift("a", AccountIndividual, true),
		gift("a", AccountIndividual, false),
		gift("b", AccountOrganisation, true),
		gift("c", AccountIndividual, false),
		gift("d", AccountIndividual, true),
		gift("e", AccountOrganisation, false),
	}

	groups := Partition(records)

	total := 0
	donorGroup := make(map[string]Group)
	for group, recs := range groups {
		total += len(recs)
		for _, rec := range recs {
			if prev, seen := donorGroup[rec.DonorID]; seen && prev != group {
				t.Errorf("donor %s appears in both %s and %s", rec.DonorID, prev, group)
			}
			donorGroup[rec.DonorID] = group
		}
	}
	if total != len(records) {
		t.Fatalf("partition holds %d records, want %d", total, len(records))
	}
}

func TestPartitionMixedDonorNeverInSingleTypeGroups(t *testing.T) {
	records := []Record{
		gift("mixed", AccountIndividual, true),
		gift("mixed", AccountIndividual, false),
	}

	groups := Partition(records)

	if len(groups[GroupRGOnly]) != 0 || len(groups[GroupNonRGOnly]) != 0 {
		t.Error("mixed donor leaked into a single-type group")
	}
	if len(groups[GroupRGAndNonRG]) != 2 {
		t.Errorf("mixed group has %d records, want 2", len(groups[GroupRGAndNonRG]))
	}
}

func TestPartitionOrganisationWinsOverGiftMix(t *testing.T) {
	// An organisation with both gift kinds belongs to the organisation
	// group, not the mixed group.
	records := []Record{
		gift("org", AccountOrganisation, true),
		gift("org", AccountOrganisation, false),
	}

	groups := Partition(records)
	if len(groups[GroupOrganisation]) != 2 {
		t.Errorf("organisation group has %d records, want 2", len(groups[GroupOrganisation]))
	}
	if len(groups[GroupRGAndNonRG]) != 0 {
		t.Error("organisation donor leaked into the mixed group")
	}
}
