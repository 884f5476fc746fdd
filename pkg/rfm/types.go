package rfm

import "github.com/ktevon/donorkit/pkg/donation"

// DonorScore is the scored output for one donor within one group.
// Commitment is nil when the composite score fell outside the segment
// table; such donors still appear in the output.
type DonorScore struct {
	DonorID    string
	Group      donation.Group
	Recency    int
	Frequency  int
	Monetary   int
	Composite  int
	Segment    Segment
	Commitment *int
}

// Result is the engine output for one donor group.
type Result struct {
	Group    donation.Group
	Scores   []DonorScore
	Unscored int
}

// GroupOutcome pairs a group's result with its error. A failed group
// never blocks its siblings; the caller decides what to do with it.
type GroupOutcome struct {
	Result *Result
	Err    error
}
