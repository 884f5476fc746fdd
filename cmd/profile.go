package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ktevon/donorkit/internal/command"
	"github.com/ktevon/donorkit/pkg/fileutil"
	"github.com/ktevon/donorkit/pkg/hcluster"
)

var (
	profileBaseCmd  command.BaseCommand
	profileNumeric  string
	profileCategory string
	profileK        int
	profileMaxK     int
)

var profileCmd = &cobra.Command{
	Use:   "profile [input-file] [output-file]",
	Short: "Profile donors with hierarchical clustering over mixed attributes",
	Long: `Profile donors with hierarchical clustering over mixed attributes.
Computes Gower distances over the named numeric and categorical columns,
applies average-linkage agglomerative clustering, reports silhouette
scores for a range of cluster counts, and writes the input rows back out
with a cluster assignment column.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().StringVar(&profileNumeric, "numeric-cols", "", "Comma-separated numeric columns to cluster on")
	profileCmd.Flags().StringVar(&profileCategory, "categorical-cols", "", "Comma-separated categorical columns to cluster on")
	profileCmd.Flags().IntVarP(&profileK, "profile-clusters", "c", 0, "Cluster count (0 = pick best silhouette in 2..max)")
	profileCmd.Flags().IntVar(&profileMaxK, "max-clusters", 10, "Upper bound when searching for the best cluster count")

	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if err := profileBaseCmd.ValidateInput(inputPath); err != nil {
		return err
	}
	numericCols := splitCols(profileNumeric)
	categoricalCols := splitCols(profileCategory)
	if len(numericCols)+len(categoricalCols) == 0 {
		return fmt.Errorf("at least one of --numeric-cols or --categorical-cols is required")
	}

	header, rows, err := readTable(inputPath)
	if err != nil {
		return err
	}

	observations, err := buildObservations(header, rows, numericCols, categoricalCols)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Computing Gower distances for %d donors\n", len(observations))
	dist, err := hcluster.GowerMatrix(observations)
	if err != nil {
		return err
	}

	k := profileK
	if k == 0 {
		scores, bestK, err := hcluster.ScoreRange(dist, 2, profileMaxK)
		if err != nil {
			return err
		}
		reportSilhouettes(scores)
		k = bestK
		fmt.Fprintf(os.Stderr, "Selected k=%d by silhouette\n", k)
	}

	labels, err := hcluster.CutTree(dist, k)
	if err != nil {
		return err
	}

	outputPath := fileutil.DefaultOutputPath(inputPath, "_clustered")
	if len(args) > 1 {
		outputPath = args[1]
	}
	if err := writeClusteredTable(outputPath, header, rows, labels); err != nil {
		return err
	}

	reportClusterSizes(labels, k)
	fmt.Fprintf(os.Stderr, "Completed: %s\n", outputPath)
	return nil
}

func splitCols(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func readTable(path string) ([]string, [][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(all) < 2 {
		return nil, nil, fmt.Errorf("%s has no data rows", path)
	}
	return all[0], all[1:], nil
}

func buildObservations(header []string, rows [][]string, numericCols, categoricalCols []string) ([]hcluster.Observation, error) {
	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[strings.ToLower(strings.TrimSpace(name))] = i
	}
	locate := func(names []string) ([]int, error) {
		indices := make([]int, len(names))
		for i, name := range names {
			idx, ok := colIndex[strings.ToLower(name)]
			if !ok {
				return nil, fmt.Errorf("column '%s' not found in input", name)
			}
			indices[i] = idx
		}
		return indices, nil
	}

	numericIdx, err := locate(numericCols)
	if err != nil {
		return nil, err
	}
	categoricalIdx, err := locate(categoricalCols)
	if err != nil {
		return nil, err
	}

	observations := make([]hcluster.Observation, len(rows))
	for r, row := range rows {
		obs := hcluster.Observation{
			Numeric:     make([]float64, len(numericIdx)),
			Categorical: make([]string, len(categoricalIdx)),
		}
		for i, idx := range numericIdx {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: column '%s' is not numeric: %q", r+1, numericCols[i], row[idx])
			}
			obs.Numeric[i] = v
		}
		for i, idx := range categoricalIdx {
			obs.Categorical[i] = strings.TrimSpace(row[idx])
		}
		observations[r] = obs
	}
	return observations, nil
}

func writeClusteredTable(path string, header []string, rows [][]string, labels []int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(append(append([]string(nil), header...), "cluster")); err != nil {
		return err
	}
	for i, row := range rows {
		if err := writer.Write(append(append([]string(nil), row...), strconv.Itoa(labels[i]))); err != nil {
			return err
		}
	}
	return writer.Error()
}

func reportSilhouettes(scores map[int]float64) {
	ks := make([]int, 0, len(scores))
	for k := range scores {
		ks = append(ks, k)
	}
	sort.Ints(ks)
	for _, k := range ks {
		fmt.Fprintf(os.Stderr, "k=%d silhouette=%.4f\n", k, scores[k])
	}
}

func reportClusterSizes(labels []int, k int) {
	counts := make(map[int]int)
	for _, label := range labels {
		counts[label]++
	}
	for cluster := 1; cluster <= k; cluster++ {
		fmt.Fprintf(os.Stderr, "Cluster %d: %d donors (%.1f%%)\n",
			cluster, counts[cluster], float64(counts[cluster])/float64(len(labels))*100)
	}
}
