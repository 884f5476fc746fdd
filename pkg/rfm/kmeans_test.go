package rfm

import (
	"reflect"
	"testing"
)

func TestClusterSeparatesObviousGroups(t *testing.T) {
	values := []float64{0, 0.2, 10, 10.3, 20, 20.1, 30, 30.4, 40, 40.2}

	assign, err := Cluster(values, 5, 20, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < len(values); i += 2 {
		if assign[i] != assign[i+1] {
			t.Errorf("values %v and %v should share a cluster, got %d and %d",
				values[i], values[i+1], assign[i], assign[i+1])
		}
	}

	distinct := make(map[int]bool)
	for _, c := range assign {
		distinct[c] = true
	}
	if len(distinct) != 5 {
		t.Errorf("expected 5 clusters, got %d", len(distinct))
	}
}

func TestClusterDeterministicForFixedSeed(t *testing.T) {
	values := []float64{3, 17, 42, 8, 99, 23, 56, 71, 12, 88, 5, 64}

	first, err := Cluster(values, 5, 20, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Cluster(values, 5, 20, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed produced different assignments: %v vs %v", first, second)
	}
}

func TestClusterTooFewDistinctValues(t *testing.T) {
	_, err := Cluster([]float64{1, 1, 2, 2, 3, 3}, 5, 20, 42)
	if err == nil {
		t.Fatal("expected error for fewer distinct values than clusters, got nil")
	}
}

func TestClusterInvalidK(t *testing.T) {
	_, err := Cluster([]float64{1, 2, 3}, 0, 20, 42)
	if err == nil {
		t.Fatal("expected error for k=0, got nil")
	}
}
