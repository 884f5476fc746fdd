// Package hcluster implements agglomerative clustering over mixed-type
// donor attributes: Gower distance, average linkage, and silhouette
// scoring to guide the choice of cluster count.
package hcluster

import (
	"fmt"
	"math"
)

// Observation is one row of mixed-type features. All observations in a
// dataset must have the same feature layout.
type Observation struct {
	Numeric     []float64
	Categorical []string
}

// GowerMatrix computes the pairwise Gower distance matrix: numeric
// features contribute |xi-xj| scaled by the feature's range, categorical
// features contribute 0 for a match and 1 otherwise, and the distance is
// the mean contribution across features.
func GowerMatrix(observations []Observation) ([][]float64, error) {
	n := len(observations)
	if n == 0 {
		return nil, fmt.Errorf("no observations")
	}

	numNumeric := len(observations[0].Numeric)
	numCategorical := len(observations[0].Categorical)
	if numNumeric+numCategorical == 0 {
		return nil, fmt.Errorf("observations have no features")
	}
	for i, obs := range observations {
		if len(obs.Numeric) != numNumeric || len(obs.Categorical) != numCategorical {
			return nil, fmt.Errorf("observation %d has inconsistent feature layout", i)
		}
	}

	ranges := featureRanges(observations, numNumeric)

	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}
	features := float64(numNumeric + numCategorical)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			total := 0.0
			for f := 0; f < numNumeric; f++ {
				if ranges[f] > 0 {
					total += math.Abs(observations[i].Numeric[f]-observations[j].Numeric[f]) / ranges[f]
				}
			}
			for f := 0; f < numCategorical; f++ {
				if observations[i].Categorical[f] != observations[j].Categorical[f] {
					total++
				}
			}
			d := total / features
			matrix[i][j] = d
			matrix[j][i] = d
		}
	}
	return matrix, nil
}

func featureRanges(observations []Observation, numNumeric int) []float64 {
	ranges := make([]float64, numNumeric)
	for f := 0; f < numNumeric; f++ {
		min, max := observations[0].Numeric[f], observations[0].Numeric[f]
		for _, obs := range observations[1:] {
			if obs.Numeric[f] < min {
				min = obs.Numeric[f]
			}
			if obs.Numeric[f] > max {
				max = obs.Numeric[f]
			}
		}
		ranges[f] = max - min
	}
	return ranges
}
