package donation

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Column names the CSV reader requires. Extra columns are ignored so the
// reader accepts both raw CRM report exports and files produced by the
// synthetic generator.
const (
	colOpportunityID = "opportunity_id"
	colContactID     = "contact_id"
	colAccountType   = "account_type"
	colCloseDate     = "close_date"
	colAmount        = "amount"
	colType          = "type"
	colStage         = "stage"
	colCampaign      = "campaign"
)

type CSVReader struct {
	seenOpportunities map[string]bool
}

func NewCSVReader() *CSVReader {
	return &CSVReader{
		seenOpportunities: make(map[string]bool),
	}
}

// ReadFile ingests a donation export. Rows that fail validation are
// excluded and counted, never fatal: a dirty export still produces a
// usable dataset plus a data-quality report.
func (r *CSVReader) ReadFile(path string, opts ReadOptions) (*ReadResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer file.Close()

	result, err := r.Read(file, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return result, nil
}

func (r *CSVReader) Read(src io.Reader, opts ReadOptions) (*ReadResult, error) {
	cr := csv.NewReader(src)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	if opts.Dedupe {
		r.seenOpportunities = make(map[string]bool)
	}

	result := &ReadResult{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		result.Stats.TotalRows++
		rec, reason := parseRow(row, cols)
		if reason != nil {
			reason(&result.Stats)
			result.Stats.ExcludedRows++
			continue
		}

		if !opts.WindowStart.IsZero() && rec.CloseDate.Before(opts.WindowStart) {
			result.Stats.OutsideWindow++
			result.Stats.ExcludedRows++
			continue
		}

		if opts.Dedupe && rec.OpportunityID != "" {
			if r.seenOpportunities[rec.OpportunityID] {
				result.Stats.DuplicateRows++
				continue
			}
			r.seenOpportunities[rec.OpportunityID] = true
		}

		result.Records = append(result.Records, *rec)
		result.Stats.ValidRows++
	}

	return result, nil
}

type columnIndex struct {
	opportunityID int
	contactID     int
	accountType   int
	closeDate     int
	amount        int
	txType        int
	stage         int
	campaign      int
}

func indexColumns(header []string) (*columnIndex, error) {
	idx := &columnIndex{
		opportunityID: -1, contactID: -1, accountType: -1, closeDate: -1,
		amount: -1, txType: -1, stage: -1, campaign: -1,
	}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case colOpportunityID:
			idx.opportunityID = i
		case colContactID:
			idx.contactID = i
		case colAccountType:
			idx.accountType = i
		case colCloseDate:
			idx.closeDate = i
		case colAmount:
			idx.amount = i
		case colType:
			idx.txType = i
		case colStage:
			idx.stage = i
		case colCampaign:
			idx.campaign = i
		}
	}
	if idx.contactID == -1 || idx.closeDate == -1 || idx.amount == -1 || idx.accountType == -1 {
		return nil, fmt.Errorf("missing required columns (need %s, %s, %s, %s)",
			colContactID, colAccountType, colCloseDate, colAmount)
	}
	return idx, nil
}

type excludeReason func(*Stats)

func parseRow(row []string, cols *columnIndex) (*Record, excludeReason) {
	get := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	donorID := get(cols.contactID)
	if donorID == "" {
		return nil, func(s *Stats) { s.MissingDonorID++ }
	}

	var accountType AccountType
	switch strings.ToLower(get(cols.accountType)) {
	case "organisation", "organization":
		accountType = AccountOrganisation
	case "individual":
		accountType = AccountIndividual
	default:
		return nil, func(s *Stats) { s.BadAccountType++ }
	}

	closeDate, err := time.Parse(dateLayout, get(cols.closeDate))
	if err != nil {
		return nil, func(s *Stats) { s.BadCloseDate++ }
	}

	rawAmount := get(cols.amount)
	if rawAmount == "" {
		return nil, func(s *Stats) { s.BadAmount++ }
	}
	amount, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil {
		return nil, func(s *Stats) { s.BadAmount++ }
	}
	if amount <= 0 {
		return nil, func(s *Stats) { s.NonPositiveAmount++ }
	}

	if stage := get(cols.stage); cols.stage != -1 && stage != "" && stage != "Closed Won" {
		return nil, func(s *Stats) { s.NotClosedWon++ }
	}

	return &Record{
		OpportunityID:   get(cols.opportunityID),
		DonorID:         donorID,
		AccountType:     accountType,
		CloseDate:       closeDate,
		Amount:          amount,
		RecurringLinked: strings.EqualFold(get(cols.txType), "Regular"),
		Campaign:        get(cols.campaign),
	}, nil
}
