package quality

import "time"

type Score struct {
	QualityScore       float64 `json:"quality_score"`
	QualityCategory    string  `json:"quality_category"`
	ExcludedPercentage float64 `json:"excluded_percentage"`
	TotalRows          int     `json:"total_rows"`
	ValidRows          int     `json:"valid_rows"`
	ExcludedRows       int     `json:"excluded_rows"`
	AlgorithmVersion   string  `json:"scoring_algorithm_version"`
}

type Config struct {
	MinScore             float64
	MaxScore             float64
	ExcludedThresholds   []ExcludedThreshold
	SizeBonusThreshold   int
	SizeBonusAmount      float64
	SizeBonusMaxExcluded float64
	StalePenaltyDays     int
	StalePenaltyMax      float64
}

type ExcludedThreshold struct {
	MaxPercent float64
	Score      float64
}

type Calculator interface {
	Calculate(totalRows, validRows, excludedRows int, newestGift *time.Time) *Score
	GetCategory(score float64) string
}

func DefaultConfig() *Config {
	return &Config{
		MinScore: 1.0,
		MaxScore: 5.0,
		ExcludedThresholds: []ExcludedThreshold{
			{MaxPercent: 0.02, Score: 5.0}, // < 2% excluded: clean export
			{MaxPercent: 0.05, Score: 4.0},
			{MaxPercent: 0.15, Score: 3.0},
			{MaxPercent: 0.30, Score: 2.0},
			{MaxPercent: 1.00, Score: 1.0},
		},
		SizeBonusThreshold:   10000,
		SizeBonusAmount:      0.5,
		SizeBonusMaxExcluded: 0.03,
		StalePenaltyDays:     90,
		StalePenaltyMax:      1.0,
	}
}
