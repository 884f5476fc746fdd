package hcluster

import (
	"fmt"
	"math"
)

// Silhouette computes the mean silhouette coefficient for a labeling over
// a precomputed distance matrix. Observations in singleton clusters score
// zero, the standard convention.
func Silhouette(dist [][]float64, labels []int) (float64, error) {
	n := len(dist)
	if len(labels) != n {
		return 0, fmt.Errorf("got %d labels for %d observations", len(labels), n)
	}

	clusters := make(map[int][]int)
	for i, label := range labels {
		clusters[label] = append(clusters[label], i)
	}
	if len(clusters) < 2 {
		return 0, fmt.Errorf("silhouette requires at least 2 clusters, got %d", len(clusters))
	}

	total := 0.0
	for i := 0; i < n; i++ {
		own := clusters[labels[i]]
		if len(own) == 1 {
			continue
		}

		a := meanDistanceTo(dist, i, own)

		b := math.Inf(1)
		for label, indices := range clusters {
			if label == labels[i] {
				continue
			}
			if d := meanDistanceTo(dist, i, indices); d < b {
				b = d
			}
		}

		if max := math.Max(a, b); max > 0 {
			total += (b - a) / max
		}
	}
	return total / float64(n), nil
}

// meanDistanceTo averages the distance from i to every index in the set,
// excluding i itself.
func meanDistanceTo(dist [][]float64, i int, indices []int) float64 {
	sum := 0.0
	count := 0
	for _, j := range indices {
		if j == i {
			continue
		}
		sum += dist[i][j]
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// ScoreRange evaluates silhouette scores for every k in [minK, maxK] and
// returns the scores keyed by k plus the best k.
func ScoreRange(dist [][]float64, minK, maxK int) (map[int]float64, int, error) {
	if minK < 2 {
		minK = 2
	}
	if maxK >= len(dist) {
		maxK = len(dist) - 1
	}
	if minK > maxK {
		return nil, 0, fmt.Errorf("no valid k in range [%d,%d] for %d observations", minK, maxK, len(dist))
	}

	scores := make(map[int]float64)
	bestK := minK
	bestScore := math.Inf(-1)
	for k := minK; k <= maxK; k++ {
		labels, err := CutTree(dist, k)
		if err != nil {
			return nil, 0, err
		}
		score, err := Silhouette(dist, labels)
		if err != nil {
			return nil, 0, err
		}
		scores[k] = score
		if score > bestScore {
			bestScore = score
			bestK = k
		}
	}
	return scores, bestK, nil
}
