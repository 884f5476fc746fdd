package hcluster

import (
	"fmt"
	"math"
)

// CutTree runs average-linkage (UPGMA) agglomerative clustering on a
// precomputed distance matrix and stops when k clusters remain. Ward
// linkage would be wrong here: Gower distances are not Euclidean.
// Returned labels are 1-based cluster ids.
func CutTree(dist [][]float64, k int) ([]int, error) {
	n := len(dist)
	if k < 1 || k > n {
		return nil, fmt.Errorf("k must be between 1 and %d, got %d", n, k)
	}

	// Active cluster state. between[i][j] is the average-linkage
	// distance between active clusters i and j.
	between := make([][]float64, n)
	for i := range between {
		between[i] = append([]float64(nil), dist[i]...)
	}
	size := make([]int, n)
	active := make([]bool, n)
	members := make([][]int, n)
	for i := 0; i < n; i++ {
		size[i] = 1
		active[i] = true
		members[i] = []int{i}
	}

	for remaining := n; remaining > k; remaining-- {
		a, b := closestPair(between, active)

		// Lance-Williams update for average linkage: the merged
		// cluster's distance to any other is the size-weighted mean.
		for o := 0; o < n; o++ {
			if !active[o] || o == a || o == b {
				continue
			}
			merged := (float64(size[a])*between[a][o] + float64(size[b])*between[b][o]) /
				float64(size[a]+size[b])
			between[a][o] = merged
			between[o][a] = merged
		}

		members[a] = append(members[a], members[b]...)
		size[a] += size[b]
		active[b] = false
	}

	labels := make([]int, n)
	next := 1
	for i := 0; i < n; i++ {
		if !active[i] {
			continue
		}
		for _, m := range members[i] {
			labels[m] = next
		}
		next++
	}
	return labels, nil
}

func closestPair(between [][]float64, active []bool) (int, int) {
	bestA, bestB := -1, -1
	best := math.Inf(1)
	for i := range between {
		if !active[i] {
			continue
		}
		for j := i + 1; j < len(between); j++ {
			if !active[j] {
				continue
			}
			if between[i][j] < best {
				best = between[i][j]
				bestA, bestB = i, j
			}
		}
	}
	return bestA, bestB
}
