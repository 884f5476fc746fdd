package output

import "github.com/ktevon/donorkit/pkg/rfm"

// ScoreWriter emits scored donors to some destination. A nil commitment
// score must be written as an explicitly empty value, never defaulted.
type ScoreWriter interface {
	WriteScores(scores []rfm.DonorScore) error
	Close() error
}
