package rfm

import (
	"testing"

	"github.com/ktevon/donorkit/pkg/donation"
)

func TestSegmentPartitionCompleteness(t *testing.T) {
	// Every composite score 111-555 (digits 1-5) must map to exactly
	// one segment.
	seen := 0
	for r := 1; r <= 5; r++ {
		for f := 1; f <= 5; f++ {
			for m := 1; m <= 5; m++ {
				composite := 100*r + 10*f + m
				if _, ok := SegmentFor(composite); !ok {
					t.Errorf("composite %d has no segment", composite)
				}
				seen++
			}
		}
	}
	if seen != 125 {
		t.Fatalf("expected 125 composites, checked %d", seen)
	}
}

func TestSegmentPartitionExclusivity(t *testing.T) {
	total := 0
	owner := make(map[int]Segment)
	for segment, composites := range segmentComposites {
		total += len(composites)
		for _, c := range composites {
			if prev, dup := owner[c]; dup {
				t.Errorf("composite %d appears in both %q and %q", c, prev, segment)
			}
			owner[c] = segment
		}
	}
	if total != 125 {
		t.Fatalf("segment sets hold %d composites, want 125", total)
	}
}

func TestSegmentForUnknownComposite(t *testing.T) {
	for _, composite := range []int{0, 110, 556, 600, 105, 651} {
		if segment, ok := SegmentFor(composite); ok {
			t.Errorf("composite %d unexpectedly mapped to %q", composite, segment)
		}
	}
}

func TestCommitmentTablesStrictlyDecreasing(t *testing.T) {
	ordered := Segments()
	for _, group := range donation.Groups() {
		prev := 0
		for i, segment := range ordered {
			score, ok := CommitmentFor(group, segment)
			if !ok {
				t.Fatalf("group %s has no commitment score for %q", group, segment)
			}
			if i > 0 && score >= prev {
				t.Errorf("group %s: %q (%d) should score strictly below its predecessor (%d)",
					group, segment, score, prev)
			}
			prev = score
		}
	}
}

func TestChampionsOutscoreLostInEveryGroup(t *testing.T) {
	for _, group := range donation.Groups() {
		champions, _ := CommitmentFor(group, SegmentChampions)
		lost, _ := CommitmentFor(group, SegmentLost)
		if champions <= lost {
			t.Errorf("group %s: Champions (%d) must outscore Lost (%d)", group, champions, lost)
		}
	}
}

func TestCommitmentForUnknownSegment(t *testing.T) {
	if _, ok := CommitmentFor(donation.GroupRGOnly, Segment("Whales")); ok {
		t.Error("unknown segment should not resolve to a commitment score")
	}
	if _, ok := CommitmentFor(donation.Group("vip"), SegmentChampions); ok {
		t.Error("unknown group should not resolve to a commitment score")
	}
}
