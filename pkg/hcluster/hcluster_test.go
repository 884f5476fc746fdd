package hcluster

import (
	"math"
	"testing"
)

func TestGowerMatrixMixedFeatures(t *testing.T) {
	observations := []Observation{
		{Numeric: []float64{0}, Categorical: []string{"Monthly"}},
		{Numeric: []float64{100}, Categorical: []string{"Monthly"}},
		{Numeric: []float64{50}, Categorical: []string{"One-off"}},
	}

	dist, err := GowerMatrix(observations)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Numeric contribution is |xi-xj|/range, categorical 0/1, averaged
	// over the two features.
	tests := []struct {
		i, j int
		want float64
	}{
		{0, 1, (1.0 + 0) / 2},
		{0, 2, (0.5 + 1) / 2},
		{1, 2, (0.5 + 1) / 2},
	}
	for _, tt := range tests {
		if got := dist[tt.i][tt.j]; math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("dist[%d][%d] = %v, want %v", tt.i, tt.j, got, tt.want)
		}
		if dist[tt.i][tt.j] != dist[tt.j][tt.i] {
			t.Errorf("distance matrix not symmetric at (%d,%d)", tt.i, tt.j)
		}
	}
	for i := range dist {
		if dist[i][i] != 0 {
			t.Errorf("dist[%d][%d] = %v, want 0", i, i, dist[i][i])
		}
	}
}

func TestGowerMatrixInconsistentLayout(t *testing.T) {
	observations := []Observation{
		{Numeric: []float64{1, 2}},
		{Numeric: []float64{1}},
	}
	if _, err := GowerMatrix(observations); err == nil {
		t.Fatal("expected error for inconsistent feature layout, got nil")
	}
}

func twoBandObservations() []Observation {
	return []Observation{
		{Numeric: []float64{1.0}},
		{Numeric: []float64{1.1}},
		{Numeric: []float64{0.9}},
		{Numeric: []float64{10.0}},
		{Numeric: []float64{10.2}},
		{Numeric: []float64{9.8}},
	}
}

func TestCutTreeRecoversObviousClusters(t *testing.T) {
	dist, err := GowerMatrix(twoBandObservations())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	labels, err := CutTree(dist, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if labels[0] != labels[1] || labels[1] != labels[2] {
		t.Errorf("low band split across clusters: %v", labels)
	}
	if labels[3] != labels[4] || labels[4] != labels[5] {
		t.Errorf("high band split across clusters: %v", labels)
	}
	if labels[0] == labels[3] {
		t.Errorf("bands merged into one cluster: %v", labels)
	}
}

func TestCutTreeInvalidK(t *testing.T) {
	dist, _ := GowerMatrix(twoBandObservations())
	if _, err := CutTree(dist, 0); err == nil {
		t.Error("expected error for k=0")
	}
	if _, err := CutTree(dist, 7); err == nil {
		t.Error("expected error for k larger than the dataset")
	}
}

func TestSilhouetteFavorsTrueStructure(t *testing.T) {
	dist, err := GowerMatrix(twoBandObservations())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	labels, err := CutTree(dist, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	score, err := Silhouette(dist, labels)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score < 0.8 {
		t.Errorf("silhouette = %v for clean two-band data, expected > 0.8", score)
	}
}

func TestSilhouetteSingleCluster(t *testing.T) {
	dist, _ := GowerMatrix(twoBandObservations())
	if _, err := Silhouette(dist, []int{1, 1, 1, 1, 1, 1}); err == nil {
		t.Fatal("expected error for a single cluster, got nil")
	}
}

func TestScoreRangePicksTwoBands(t *testing.T) {
	dist, err := GowerMatrix(twoBandObservations())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	scores, bestK, err := ScoreRange(dist, 2, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bestK != 2 {
		t.Errorf("best k = %d, want 2 (scores: %v)", bestK, scores)
	}
	if len(scores) != 4 {
		t.Errorf("got %d scores, want 4 (k=2..5)", len(scores))
	}
}
