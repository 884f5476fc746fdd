package rfm

import "github.com/ktevon/donorkit/pkg/donation"

// Segment is one of the eleven fixed donor segments.
type Segment string

const (
	SegmentChampions         Segment = "Champions"
	SegmentLoyalCustomers    Segment = "Loyal Customers"
	SegmentPotentialLoyalist Segment = "Potential Loyalist"
	SegmentRecentCustomers   Segment = "Recent Customers"
	SegmentPromising         Segment = "Promising"
	SegmentNeedingAttention  Segment = "Customer Needing Attention"
	SegmentAboutToSleep      Segment = "About to Sleep"
	SegmentAtRisk            Segment = "At Risk"
	SegmentCantLoseThem      Segment = "Can't Lose Them"
	SegmentHibernating       Segment = "Hibernating"
	SegmentLost              Segment = "Lost"
)

// Segments lists all segments from best to worst donor behavior.
func Segments() []Segment {
	return []Segment{
		SegmentChampions,
		SegmentLoyalCustomers,
		SegmentPotentialLoyalist,
		SegmentRecentCustomers,
		SegmentPromising,
		SegmentNeedingAttention,
		SegmentAboutToSleep,
		SegmentAtRisk,
		SegmentCantLoseThem,
		SegmentHibernating,
		SegmentLost,
	}
}

// segmentComposites is the hand-authored partition of all 125 composite
// scores (r/f/m digit order) into the eleven segments. Every value in
// [111,555] appears in exactly one set.
var segmentComposites = map[Segment][]int{
	SegmentChampions:      {555, 554, 544, 545, 454, 455, 445},
	SegmentLoyalCustomers: {543, 444, 435, 355, 354, 345, 344, 335},
	SegmentPotentialLoyalist: {
		553, 551, 552, 541, 542, 533, 532, 531, 452, 451, 442, 441,
		431, 453, 433, 432, 423, 353, 352, 351, 342, 341, 333, 323,
	},
	SegmentRecentCustomers: {512, 511, 422, 421, 412, 411, 311},
	SegmentPromising: {
		525, 524, 523, 522, 521, 515, 514, 513,
		425, 424, 413, 414, 415, 315, 314, 313,
	},
	SegmentNeedingAttention: {535, 534, 443, 434, 343, 334, 325, 324},
	SegmentAboutToSleep:     {331, 321, 312, 221, 213},
	SegmentAtRisk: {
		255, 254, 245, 244, 253, 252, 243, 242, 235, 234, 225,
		224, 153, 152, 145, 143, 142, 135, 134, 133, 125, 124,
	},
	SegmentCantLoseThem: {155, 154, 144, 214, 215, 115, 114, 113},
	SegmentHibernating: {
		332, 322, 231, 241, 251, 233, 232, 223, 222, 132, 123, 122, 212, 211,
	},
	SegmentLost: {111, 112, 121, 131, 141, 151},
}

var segmentByComposite = buildCompositeIndex()

func buildCompositeIndex() map[int]Segment {
	index := make(map[int]Segment, 125)
	for segment, composites := range segmentComposites {
		for _, c := range composites {
			index[c] = segment
		}
	}
	return index
}

// SegmentFor looks up the segment for a composite score. A composite
// outside the table yields ok=false; callers must surface that as a
// data-quality signal rather than defaulting.
func SegmentFor(composite int) (Segment, bool) {
	segment, ok := segmentByComposite[composite]
	return segment, ok
}

// commitmentTables maps (group, segment) to a commitment score. One table
// per donor group; within each table the values strictly decrease from
// Champions to Lost.
var commitmentTables = map[donation.Group]map[Segment]int{
	donation.GroupRGAndNonRG: {
		SegmentChampions:         100,
		SegmentLoyalCustomers:    95,
		SegmentPotentialLoyalist: 88,
		SegmentRecentCustomers:   80,
		SegmentPromising:         74,
		SegmentNeedingAttention:  65,
		SegmentAboutToSleep:      55,
		SegmentAtRisk:            48,
		SegmentCantLoseThem:      42,
		SegmentHibernating:       25,
		SegmentLost:              10,
	},
	donation.GroupRGOnly: {
		SegmentChampions:         95,
		SegmentLoyalCustomers:    90,
		SegmentPotentialLoyalist: 82,
		SegmentRecentCustomers:   74,
		SegmentPromising:         68,
		SegmentNeedingAttention:  60,
		SegmentAboutToSleep:      50,
		SegmentAtRisk:            44,
		SegmentCantLoseThem:      38,
		SegmentHibernating:       22,
		SegmentLost:              8,
	},
	donation.GroupNonRGOnly: {
		SegmentChampions:         85,
		SegmentLoyalCustomers:    78,
		SegmentPotentialLoyalist: 70,
		SegmentRecentCustomers:   64,
		SegmentPromising:         58,
		SegmentNeedingAttention:  50,
		SegmentAboutToSleep:      42,
		SegmentAtRisk:            36,
		SegmentCantLoseThem:      30,
		SegmentHibernating:       18,
		SegmentLost:              6,
	},
	donation.GroupOrganisation: {
		SegmentChampions:         90,
		SegmentLoyalCustomers:    84,
		SegmentPotentialLoyalist: 76,
		SegmentRecentCustomers:   68,
		SegmentPromising:         62,
		SegmentNeedingAttention:  54,
		SegmentAboutToSleep:      46,
		SegmentAtRisk:            40,
		SegmentCantLoseThem:      34,
		SegmentHibernating:       20,
		SegmentLost:              7,
	},
}

// CommitmentFor looks up the commitment score for a segment within a
// donor group. Unknown pairs yield ok=false.
func CommitmentFor(group donation.Group, segment Segment) (int, bool) {
	table, ok := commitmentTables[group]
	if !ok {
		return 0, false
	}
	score, ok := table[segment]
	return score, ok
}
