package quality

import (
	"testing"
	"time"
)

func TestCalculateQualityScore(t *testing.T) {
	calc := NewDefaultCalculator()

	tests := []struct {
		name             string
		totalRows        int
		validRows        int
		excludedRows     int
		expectedCategory string
		expectedMinScore float64
		expectedMaxScore float64
	}{
		{
			name:             "Excellent - near-clean export",
			totalRows:        10000,
			validRows:        9950,
			excludedRows:     50, // 0.5% excluded
			expectedCategory: "excellent",
			expectedMinScore: 4.5,
			expectedMaxScore: 5.0,
		},
		{
			name:             "Good - minor exclusions",
			totalRows:        1000,
			validRows:        970,
			excludedRows:     30, // 3% excluded
			expectedCategory: "good",
			expectedMinScore: 3.5,
			expectedMaxScore: 4.5,
		},
		{
			name:             "Fair - noticeable exclusions",
			totalRows:        1000,
			validRows:        900,
			excludedRows:     100, // 10% excluded
			expectedCategory: "fair",
			expectedMinScore: 2.5,
			expectedMaxScore: 3.5,
		},
		{
			name:             "Poor - heavy exclusions",
			totalRows:        1000,
			validRows:        800,
			excludedRows:     200, // 20% excluded
			expectedCategory: "poor",
			expectedMinScore: 1.5,
			expectedMaxScore: 2.5,
		},
		{
			name:             "Stale - mostly unusable",
			totalRows:        1000,
			validRows:        500,
			excludedRows:     500, // 50% excluded
			expectedCategory: "stale",
			expectedMinScore: 1.0,
			expectedMaxScore: 1.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := calc.Calculate(tt.totalRows, tt.validRows, tt.excludedRows, nil)

			if score.QualityCategory != tt.expectedCategory {
				t.Errorf("Expected category %s, got %s", tt.expectedCategory, score.QualityCategory)
			}
			if score.QualityScore < tt.expectedMinScore || score.QualityScore > tt.expectedMaxScore {
				t.Errorf("Expected score between %f and %f, got %f",
					tt.expectedMinScore, tt.expectedMaxScore, score.QualityScore)
			}

			expectedExcluded := float64(tt.excludedRows) / float64(tt.totalRows)
			if score.ExcludedPercentage != expectedExcluded {
				t.Errorf("Expected excluded percentage %f, got %f",
					expectedExcluded, score.ExcludedPercentage)
			}
		})
	}
}

func TestStalePenalty(t *testing.T) {
	calc := NewDefaultCalculator()

	oldGift := time.Now().AddDate(0, 0, -200)
	recentGift := time.Now().AddDate(0, 0, -10)

	stale := calc.Calculate(1000, 970, 30, &oldGift)
	fresh := calc.Calculate(1000, 970, 30, &recentGift)

	if stale.QualityScore >= fresh.QualityScore {
		t.Errorf("Expected stale export to score below fresh one. Stale: %f, Fresh: %f",
			stale.QualityScore, fresh.QualityScore)
	}
}

func TestSizeBonus(t *testing.T) {
	calc := NewDefaultCalculator()

	// Both exports are ~3% excluded; only the large one earns the bonus.
	large := calc.Calculate(20000, 19400, 600, nil)
	small := calc.Calculate(500, 485, 15, nil)

	if large.QualityScore <= small.QualityScore {
		t.Errorf("Expected large clean export to score above small one. Large: %f, Small: %f",
			large.QualityScore, small.QualityScore)
	}
}

func TestEmptyDataset(t *testing.T) {
	calc := NewDefaultCalculator()
	score := calc.Calculate(0, 0, 0, nil)
	if score.ExcludedPercentage != 0 {
		t.Errorf("empty dataset excluded percentage = %f, want 0", score.ExcludedPercentage)
	}
}
