package command

import (
	"fmt"
	"os"

	"github.com/ktevon/donorkit/internal/flags"
	"github.com/ktevon/donorkit/pkg/donation"
	"github.com/ktevon/donorkit/pkg/fileutil"
	"github.com/ktevon/donorkit/pkg/quality"
	"github.com/ktevon/donorkit/pkg/rfm"
)

type BaseCommand struct {
	Flags flags.CommonFlags
}

func (b *BaseCommand) ValidateInput(inputPath string) error {
	if !fileutil.FileExists(inputPath) {
		return fmt.Errorf("input file '%s' not found", inputPath)
	}
	return nil
}

func (b *BaseCommand) ReportReadStats(stats donation.Stats) {
	fmt.Fprintf(os.Stderr, "Processed %d total rows\n", stats.TotalRows)
	fmt.Fprintf(os.Stderr, "Valid donation records: %d\n", stats.ValidRows)
	if stats.DuplicateRows > 0 {
		fmt.Fprintf(os.Stderr, "Duplicate opportunities removed: %d\n", stats.DuplicateRows)
	}
	if stats.ExcludedRows == 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "Excluded rows: %d\n", stats.ExcludedRows)
	report := func(label string, n int) {
		if n > 0 {
			fmt.Fprintf(os.Stderr, "  %s: %d\n", label, n)
		}
	}
	report("missing donor id", stats.MissingDonorID)
	report("bad account type", stats.BadAccountType)
	report("bad close date", stats.BadCloseDate)
	report("bad amount", stats.BadAmount)
	report("non-positive amount", stats.NonPositiveAmount)
	report("outside analysis window", stats.OutsideWindow)
	report("not closed-won", stats.NotClosedWon)
}

func (b *BaseCommand) ReportQuality(score *quality.Score) {
	fmt.Fprintf(os.Stderr, "Data quality: %.1f (%s), %.1f%% of rows excluded\n",
		score.QualityScore, score.QualityCategory, score.ExcludedPercentage*100)
}

func (b *BaseCommand) ReportGroupResult(result *rfm.Result) {
	fmt.Fprintf(os.Stderr, "Group %s: %d donors scored", result.Group, len(result.Scores))
	if result.Unscored > 0 {
		fmt.Fprintf(os.Stderr, ", %d without a commitment score", result.Unscored)
	}
	fmt.Fprintln(os.Stderr)
}
