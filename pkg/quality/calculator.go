// Package quality scores an ingested donation export so runs on dirty or
// stale data are flagged before anyone trusts the resulting segments.
package quality

import (
	"math"
	"time"
)

type DefaultCalculator struct {
	config *Config
}

func NewDefaultCalculator() *DefaultCalculator {
	return &DefaultCalculator{
		config: DefaultConfig(),
	}
}

func NewCalculatorWithConfig(config *Config) *DefaultCalculator {
	return &DefaultCalculator{
		config: config,
	}
}

// Calculate scores a dataset from its exclusion rate, with a bonus for
// large clean exports and a penalty when the newest gift in the file is
// already old (the export itself is probably stale).
func (c *DefaultCalculator) Calculate(totalRows, validRows, excludedRows int, newestGift *time.Time) *Score {
	excludedPercentage := 0.0
	if totalRows > 0 {
		excludedPercentage = float64(excludedRows) / float64(totalRows)
	}

	score := c.baseScoreFromExclusions(excludedPercentage)

	if validRows >= c.config.SizeBonusThreshold && excludedPercentage <= c.config.SizeBonusMaxExcluded {
		score += c.config.SizeBonusAmount
	}

	if newestGift != nil {
		score -= c.stalePenalty(*newestGift)
	}

	score = math.Max(c.config.MinScore, math.Min(c.config.MaxScore, score))
	score = math.Round(score*10) / 10

	return &Score{
		QualityScore:       score,
		QualityCategory:    c.GetCategory(score),
		ExcludedPercentage: excludedPercentage,
		TotalRows:          totalRows,
		ValidRows:          validRows,
		ExcludedRows:       excludedRows,
		AlgorithmVersion:   "1.0",
	}
}

func (c *DefaultCalculator) baseScoreFromExclusions(excludedPercentage float64) float64 {
	for _, threshold := range c.config.ExcludedThresholds {
		if excludedPercentage < threshold.MaxPercent {
			return threshold.Score
		}
	}
	return c.config.MinScore
}

func (c *DefaultCalculator) stalePenalty(newestGift time.Time) float64 {
	ageDays := time.Since(newestGift).Hours() / 24

	penaltyThreshold := float64(c.config.StalePenaltyDays)
	maxPenalty := c.config.StalePenaltyMax

	if ageDays <= penaltyThreshold {
		return 0.0
	}

	penalty := (ageDays - penaltyThreshold) / (365 - penaltyThreshold) * maxPenalty
	if penalty > maxPenalty {
		return maxPenalty
	}
	return penalty
}

func (c *DefaultCalculator) GetCategory(score float64) string {
	if score >= 4.5 {
		return "excellent"
	} else if score >= 3.5 {
		return "good"
	} else if score >= 2.5 {
		return "fair"
	} else if score >= 1.5 {
		return "poor"
	} else {
		return "stale"
	}
}
