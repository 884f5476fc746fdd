package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ktevon/donorkit/pkg/rfm"
	"github.com/ktevon/donorkit/pkg/synthetic"
)

const dateLayout = "2006-01-02"

// ScoreCSVWriter writes segmentation results, one row per donor. Donors
// whose composite fell outside the segment table keep their row with
// empty segment and commitment fields.
type ScoreCSVWriter struct {
	writer *csv.Writer
	file   *os.File
}

func NewScoreCSVWriter(filename string) (*ScoreCSVWriter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV file: %w", err)
	}

	writer := csv.NewWriter(file)
	header := []string{"contact_id", "group", "r_score", "f_score", "m_score", "rfm_score", "segment", "commitment_score"}
	if err := writer.Write(header); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	return &ScoreCSVWriter{writer: writer, file: file}, nil
}

func (w *ScoreCSVWriter) WriteScores(scores []rfm.DonorScore) error {
	for _, score := range scores {
		if err := w.writer.Write(scoreRecord(score)); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	w.writer.Flush()
	return w.writer.Error()
}

func scoreRecord(score rfm.DonorScore) []string {
	commitment := ""
	if score.Commitment != nil {
		commitment = strconv.Itoa(*score.Commitment)
	}
	return []string{
		score.DonorID,
		string(score.Group),
		strconv.Itoa(score.Recency),
		strconv.Itoa(score.Frequency),
		strconv.Itoa(score.Monetary),
		strconv.Itoa(score.Composite),
		string(score.Segment),
		commitment,
	}
}

func (w *ScoreCSVWriter) Close() error {
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		return err
	}
	return w.file.Close()
}

// WriteContactsCSV writes a generated contact base.
func WriteContactsCSV(filename string, contacts []synthetic.Contact) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"contact_id", "name", "age", "gender", "account_type", "is_major", "is_regular"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, contact := range contacts {
		record := []string{
			contact.ID,
			contact.Name,
			strconv.Itoa(contact.Age),
			contact.Gender,
			string(contact.AccountType),
			strconv.FormatBool(contact.IsMajor),
			strconv.FormatBool(contact.IsRegular),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	return writer.Error()
}

// WriteOpportunitiesCSV writes generated gifts in the layout the segment
// command ingests.
func WriteOpportunitiesCSV(filename string, opportunities []synthetic.Opportunity) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	if err := writeOpportunities(file, opportunities); err != nil {
		return err
	}
	return nil
}

func writeOpportunities(dst io.Writer, opportunities []synthetic.Opportunity) error {
	writer := csv.NewWriter(dst)
	defer writer.Flush()

	header := []string{"opportunity_id", "contact_id", "account_type", "close_date", "amount", "type", "stage", "campaign", "is_major_gift"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, opp := range opportunities {
		txType := "One-off"
		if opp.Recurring {
			txType = "Regular"
		}
		record := []string{
			opp.ID,
			opp.ContactID,
			string(opp.AccountType),
			opp.CloseDate.Format(dateLayout),
			strconv.FormatFloat(opp.Amount, 'f', 2, 64),
			txType,
			opp.Stage,
			opp.Campaign,
			strconv.FormatBool(opp.MajorGift),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	return writer.Error()
}
