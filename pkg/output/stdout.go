package output

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ktevon/donorkit/pkg/rfm"
)

// StdoutWriter prints scored donors as CSV on stdout for piping into
// other tools.
type StdoutWriter struct {
	writer     *bufio.Writer
	headerDone bool
}

func NewStdoutWriter() *StdoutWriter {
	return &StdoutWriter{
		writer: bufio.NewWriter(os.Stdout),
	}
}

func (w *StdoutWriter) WriteScores(scores []rfm.DonorScore) error {
	if !w.headerDone {
		if _, err := w.writer.WriteString("contact_id,group,rfm_score,segment,commitment_score\n"); err != nil {
			return err
		}
		w.headerDone = true
	}

	for _, score := range scores {
		commitment := ""
		if score.Commitment != nil {
			commitment = strconv.Itoa(*score.Commitment)
		}
		segment := string(score.Segment)
		if strings.Contains(segment, ",") {
			segment = `"` + segment + `"`
		}
		line := fmt.Sprintf("%s,%s,%d,%s,%s\n",
			score.DonorID, score.Group, score.Composite, segment, commitment)
		if _, err := w.writer.WriteString(line); err != nil {
			return err
		}
	}
	return nil
}

func (w *StdoutWriter) Flush() error {
	return w.writer.Flush()
}

func (w *StdoutWriter) Close() error {
	return w.writer.Flush()
}
