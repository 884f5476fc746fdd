package rfm

import (
	"fmt"
	"math"
	"math/rand"
)

const maxIterations = 100

// Cluster partitions a single-column dataset into k clusters with seeded
// k-means (k-means++ initialization, Lloyd iterations). The algorithm is
// restarted the requested number of times and the assignment with the
// lowest within-cluster sum of squares wins, so results are deterministic
// for a fixed seed. Cluster ids are arbitrary: callers rank them by mean
// before using them as scores.
func Cluster(values []float64, k, restarts int, seed int64) ([]int, error) {
	if k < 1 {
		return nil, fmt.Errorf("k must be positive, got %d", k)
	}
	if restarts < 1 {
		restarts = 1
	}
	if distinct(values) < k {
		return nil, fmt.Errorf("need at least %d distinct values to form %d clusters, got %d",
			k, k, distinct(values))
	}

	rng := rand.New(rand.NewSource(seed))

	var best []int
	bestWSS := math.Inf(1)
	for r := 0; r < restarts; r++ {
		assign, wss := runOnce(values, k, rng)
		if wss < bestWSS {
			bestWSS = wss
			best = assign
		}
	}
	return best, nil
}

func runOnce(values []float64, k int, rng *rand.Rand) ([]int, float64) {
	centroids := seedCentroids(values, k, rng)
	assign := make([]int, len(values))

	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for i, v := range values {
			c := nearest(centroids, v)
			if c != assign[i] {
				assign[i] = c
				changed = true
			}
		}

		sums := make([]float64, k)
		counts := make([]int, k)
		for i, v := range values {
			sums[assign[i]] += v
			counts[assign[i]]++
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				// Re-seed an emptied cluster with the point farthest
				// from its centroid.
				centroids[c] = farthestPoint(values, centroids, assign)
				changed = true
				continue
			}
			centroids[c] = sums[c] / float64(counts[c])
		}

		if !changed && iter > 0 {
			break
		}
	}

	wss := 0.0
	for i, v := range values {
		d := v - centroids[assign[i]]
		wss += d * d
	}
	return assign, wss
}

// seedCentroids implements k-means++: the first centroid is uniform, each
// later one is drawn with probability proportional to squared distance
// from the nearest centroid chosen so far.
func seedCentroids(values []float64, k int, rng *rand.Rand) []float64 {
	centroids := make([]float64, 0, k)
	centroids = append(centroids, values[rng.Intn(len(values))])

	dist2 := make([]float64, len(values))
	for len(centroids) < k {
		total := 0.0
		for i, v := range values {
			d := v - centroids[0]
			min := d * d
			for _, c := range centroids[1:] {
				d = v - c
				if d*d < min {
					min = d * d
				}
			}
			dist2[i] = min
			total += min
		}

		if total == 0 {
			centroids = append(centroids, values[rng.Intn(len(values))])
			continue
		}
		target := rng.Float64() * total
		cum := 0.0
		picked := len(values) - 1
		for i, d := range dist2 {
			cum += d
			if cum >= target {
				picked = i
				break
			}
		}
		centroids = append(centroids, values[picked])
	}
	return centroids
}

func nearest(centroids []float64, v float64) int {
	best := 0
	bestDist := math.Abs(v - centroids[0])
	for c := 1; c < len(centroids); c++ {
		if d := math.Abs(v - centroids[c]); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

func farthestPoint(values, centroids []float64, assign []int) float64 {
	best := values[0]
	bestDist := -1.0
	for i, v := range values {
		if d := math.Abs(v - centroids[assign[i]]); d > bestDist {
			bestDist = d
			best = v
		}
	}
	return best
}

func distinct(values []float64) int {
	seen := make(map[float64]bool, len(values))
	for _, v := range values {
		seen[v] = true
	}
	return len(seen)
}
