package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ktevon/donorkit/internal/command"
	"github.com/ktevon/donorkit/internal/flags"
	"github.com/ktevon/donorkit/pkg/crm"
	"github.com/ktevon/donorkit/pkg/donation"
	"github.com/ktevon/donorkit/pkg/fileutil"
	"github.com/ktevon/donorkit/pkg/output"
	"github.com/ktevon/donorkit/pkg/quality"
	"github.com/ktevon/donorkit/pkg/rfm"
)

var (
	segmentCmdFlags flags.CommonFlags
	segmentBaseCmd  command.BaseCommand
)

var segmentCmd = &cobra.Command{
	Use:   "segment [input-file] [output-file]",
	Short: "Segment donors with RFM scoring and commitment-score mapping",
	Long: `Segment donors with RFM scoring and commitment-score mapping.
Donors are split into four groups (organisation, regular-giving only,
one-off only, mixed), scored 1-5 on recency, frequency and monetary value
by clustering each dimension, then mapped to one of eleven segments and a
group-specific commitment score.

Input is a CSV export or, with --dsn, a MariaDB/MySQL CRM mirror.
With --write-back, existing commitment scores are cleared and the new
ones written in a single transaction.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runSegment,
}

func init() {
	flags.AddScoringFlags(segmentCmd, &segmentCmdFlags)
	flags.AddSourceFlags(segmentCmd, &segmentCmdFlags)
	segmentCmd.Flags().BoolVar(&segmentCmdFlags.Stdout, "stdout", false, "Output to stdout instead of file")

	rootCmd.AddCommand(segmentCmd)
}

func runSegment(cmd *cobra.Command, args []string) error {
	if segmentCmdFlags.DSN == "" && len(args) == 0 {
		return fmt.Errorf("either an input file or --dsn is required")
	}
	if segmentCmdFlags.WriteBack && segmentCmdFlags.DSN == "" {
		return fmt.Errorf("--write-back requires --dsn")
	}

	now := time.Now().UTC()
	windowStart := now.AddDate(-segmentCmdFlags.WindowYears, 0, 0)
	ctx := context.Background()

	records, db, err := loadDonations(ctx, args, windowStart)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}
	if len(records) == 0 {
		return fmt.Errorf("no usable donation records in input")
	}

	engine := rfm.NewEngine()
	engine.Clusters = segmentCmdFlags.Clusters
	engine.Restarts = segmentCmdFlags.Restarts
	engine.Seed = seed

	outcomes := engine.Run(records, now)

	var allScores []rfm.DonorScore
	failed := 0
	for _, group := range donation.Groups() {
		outcome, ok := outcomes[group]
		if !ok {
			continue
		}
		if outcome.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Warning: skipping group: %v\n", outcome.Err)
			continue
		}
		if !quiet {
			segmentBaseCmd.ReportGroupResult(outcome.Result)
		}
		allScores = append(allScores, outcome.Result.Scores...)
	}
	if len(allScores) == 0 {
		return fmt.Errorf("no donor group could be scored (%d failed)", failed)
	}

	if err := writeScores(args, allScores); err != nil {
		return err
	}

	if segmentCmdFlags.WriteBack {
		fmt.Fprintf(os.Stderr, "Writing %d commitment scores back to CRM\n", len(allScores))
		if err := crm.NewSink(db).WriteScores(ctx, allScores); err != nil {
			return fmt.Errorf("failed to write scores back: %w", err)
		}
	}
	return nil
}

func loadDonations(ctx context.Context, args []string, windowStart time.Time) ([]donation.Record, *sql.DB, error) {
	if segmentCmdFlags.DSN != "" {
		db, dsnUsed, err := crm.Open(segmentCmdFlags.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open CRM mirror: %w", err)
		}
		if !quiet {
			fmt.Fprintf(os.Stderr, "Connected: %s\n", dsnUsed)
		}
		records, err := crm.NewSource(db).FetchDonations(ctx, windowStart)
		if err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to fetch donations: %w", err)
		}
		return records, db, nil
	}

	inputPath := args[0]
	if err := segmentBaseCmd.ValidateInput(inputPath); err != nil {
		return nil, nil, err
	}

	reader := donation.NewCSVReader()
	result, err := reader.ReadFile(inputPath, donation.ReadOptions{
		Dedupe:      !segmentCmdFlags.NoDedupe,
		WindowStart: windowStart,
	})
	if err != nil {
		return nil, nil, err
	}

	if !quiet {
		segmentBaseCmd.ReportReadStats(result.Stats)
		segmentBaseCmd.ReportQuality(datasetQuality(result))
	}
	return result.Records, nil, nil
}

func datasetQuality(result *donation.ReadResult) *quality.Score {
	var newest *time.Time
	for i := range result.Records {
		if newest == nil || result.Records[i].CloseDate.After(*newest) {
			newest = &result.Records[i].CloseDate
		}
	}
	calc := quality.NewDefaultCalculator()
	return calc.Calculate(result.Stats.TotalRows, result.Stats.ValidRows, result.Stats.ExcludedRows, newest)
}

func writeScores(args []string, scores []rfm.DonorScore) error {
	if segmentCmdFlags.Stdout {
		writer := output.NewStdoutWriter()
		if err := writer.WriteScores(scores); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return writer.Close()
	}

	outputPath := "commitment_scores.csv"
	if len(args) > 1 {
		outputPath = args[1]
	} else if len(args) == 1 {
		outputPath = fileutil.DefaultOutputPath(args[0], "_scored")
	}

	writer, err := output.NewScoreCSVWriter(outputPath)
	if err != nil {
		return err
	}

	bar := newBar(int64(len(scores)), "writing scores")
	for i := range scores {
		if err := writer.WriteScores(scores[i : i+1]); err != nil {
			writer.Close()
			return err
		}
		_ = bar.Add(1)
	}
	if err := writer.Close(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Completed: %s\n", outputPath)
	return nil
}
