package rfm

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// scoreDimension turns one raw RFM column into per-donor 1-5 scores.
// The column is standardized, clustered into k groups, and the clusters
// are dense-ranked by their mean raw value so that the best-behaved
// cluster always scores k (most recent gifts, highest frequency, highest
// monetary) and worse clusters score lower. Tied cluster means share a
// score and no score is skipped between distinct means.
func scoreDimension(raw []float64, higherIsBetter bool, k, restarts int, seed int64) ([]int, error) {
	std, err := standardize(raw)
	if err != nil {
		return nil, err
	}

	assign, err := Cluster(std, k, restarts, seed)
	if err != nil {
		return nil, err
	}

	means := clusterMeans(raw, assign, k)
	rank := denseRank(means, higherIsBetter)

	scores := make([]int, len(raw))
	for i, c := range assign {
		scores[i] = k + 1 - rank[c]
	}
	return scores, nil
}

// standardize centers the column on zero with unit sample standard
// deviation so all three dimensions cluster on a comparable scale.
func standardize(raw []float64) ([]float64, error) {
	mean, sd := stat.MeanStdDev(raw, nil)
	if sd == 0 {
		return nil, fmt.Errorf("column has zero variance, cannot cluster")
	}
	std := make([]float64, len(raw))
	for i, v := range raw {
		std[i] = (v - mean) / sd
	}
	return std, nil
}

func clusterMeans(raw []float64, assign []int, k int) []float64 {
	sums := make([]float64, k)
	counts := make([]float64, k)
	for i, v := range raw {
		sums[assign[i]] += v
		counts[assign[i]]++
	}
	means := make([]float64, k)
	for c := 0; c < k; c++ {
		if counts[c] > 0 {
			means[c] = sums[c] / counts[c]
		}
	}
	return means
}

// denseRank ranks clusters 1 (best) upward by mean. For recency the best
// cluster is the one with the lowest mean (most recent gifts); for
// frequency and monetary it is the highest. Equal means share a rank and
// the next distinct mean takes the following rank with no gap.
func denseRank(means []float64, higherIsBetter bool) []int {
	sorted := append([]float64(nil), means...)
	if higherIsBetter {
		sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	} else {
		sort.Float64s(sorted)
	}

	rankByMean := make(map[float64]int, len(sorted))
	next := 1
	for _, m := range sorted {
		if _, seen := rankByMean[m]; !seen {
			rankByMean[m] = next
			next++
		}
	}

	ranks := make([]int, len(means))
	for c, m := range means {
		ranks[c] = rankByMean[m]
	}
	return ranks
}
