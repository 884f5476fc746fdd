package rfm

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ktevon/donorkit/pkg/donation"
)

const (
	// DefaultClusters is the number of score levels per dimension.
	DefaultClusters = 5
	// DefaultRestarts is the number of k-means restarts per dimension.
	DefaultRestarts = 20
	// DefaultSeed keeps repeated runs on identical input identical.
	DefaultSeed = 42
)

// Engine computes RFM segments and commitment scores. It is a pure
// transform from donation records to scores: all I/O lives with the
// caller.
type Engine struct {
	Clusters int
	Restarts int
	Seed     int64
}

func NewEngine() *Engine {
	return &Engine{
		Clusters: DefaultClusters,
		Restarts: DefaultRestarts,
		Seed:     DefaultSeed,
	}
}

// Run partitions records into the four donor groups and scores each one.
// A group that cannot be scored (for example, fewer donors than score
// levels) carries its error in the outcome; the other groups complete
// normally.
func (e *Engine) Run(records []donation.Record, now time.Time) map[donation.Group]GroupOutcome {
	partitions := donation.Partition(records)

	outcomes := make(map[donation.Group]GroupOutcome, len(donation.Groups()))
	for i, group := range donation.Groups() {
		groupRecords := partitions[group]
		if len(groupRecords) == 0 {
			continue
		}
		aggregates := donation.Aggregate(groupRecords, now)
		result, err := e.Score(group, aggregates, e.Seed+int64(i)*3)
		outcomes[group] = GroupOutcome{Result: result, Err: err}
	}
	return outcomes
}

// Score computes per-donor scores for a single group. The three
// dimensions are clustered independently and concurrently; each gets its
// own derived seed so the run stays deterministic.
func (e *Engine) Score(group donation.Group, aggregates []donation.DonorAggregate, seed int64) (*Result, error) {
	n := len(aggregates)
	if n < e.Clusters {
		return nil, fmt.Errorf("group %s: %d donors is fewer than %d clusters", group, n, e.Clusters)
	}

	recency := make([]float64, n)
	frequency := make([]float64, n)
	monetary := make([]float64, n)
	for i, agg := range aggregates {
		recency[i] = agg.RecencyDays
		frequency[i] = float64(agg.Frequency)
		monetary[i] = agg.Monetary
	}

	var rScores, fScores, mScores []int
	var g errgroup.Group
	g.Go(func() error {
		var err error
		rScores, err = scoreDimension(recency, false, e.Clusters, e.Restarts, seed)
		if err != nil {
			return fmt.Errorf("recency: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		fScores, err = scoreDimension(frequency, true, e.Clusters, e.Restarts, seed+1)
		if err != nil {
			return fmt.Errorf("frequency: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		mScores, err = scoreDimension(monetary, true, e.Clusters, e.Restarts, seed+2)
		if err != nil {
			return fmt.Errorf("monetary: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("group %s: %w", group, err)
	}

	result := &Result{Group: group, Scores: make([]DonorScore, n)}
	for i, agg := range aggregates {
		score := DonorScore{
			DonorID:   agg.DonorID,
			Group:     group,
			Recency:   rScores[i],
			Frequency: fScores[i],
			Monetary:  mScores[i],
		}
		score.Composite = 100*score.Recency + 10*score.Frequency + score.Monetary

		if segment, ok := SegmentFor(score.Composite); ok {
			score.Segment = segment
			if commitment, ok := CommitmentFor(group, segment); ok {
				c := commitment
				score.Commitment = &c
			}
		}
		if score.Commitment == nil {
			result.Unscored++
		}
		result.Scores[i] = score
	}
	return result, nil
}
