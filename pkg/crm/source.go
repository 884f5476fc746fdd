package crm

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ktevon/donorkit/pkg/donation"
)

const closedWonStage = "Closed Won"

// Source fetches donation history from the CRM mirror, pre-filtered the
// way the segmentation pipeline expects: completed gifts only, inside the
// analysis window, excluding anonymous, internal, deceased and
// bequest-confirmed contacts.
type Source struct {
	db *sql.DB
}

func NewSource(db *sql.DB) *Source {
	return &Source{db: db}
}

func (s *Source) FetchDonations(ctx context.Context, windowStart time.Time) ([]donation.Record, error) {
	const q = `
		SELECT
			o.opportunity_id,
			o.contact_id,
			c.account_type,
			o.close_date,
			o.amount,
			o.recurring_donation_id IS NOT NULL,
			COALESCE(o.campaign, '')
		FROM opportunity o
		JOIN contact c ON c.contact_id = o.contact_id
		WHERE o.stage = ?
		  AND o.close_date >= ?
		  AND o.amount > 0
		  AND c.is_anonymous = 0
		  AND c.is_internal = 0
		  AND c.is_deceased = 0
		  AND c.bequest_confirmed = 0
	`

	rows, err := s.db.QueryContext(ctx, q, closedWonStage, windowStart.UTC().Format("2006-01-02 15:04:05"))
	if err != nil {
		return nil, fmt.Errorf("query donations: %w", err)
	}
	defer rows.Close()

	var records []donation.Record
	for rows.Next() {
		var rec donation.Record
		var accountType string
		if err := rows.Scan(&rec.OpportunityID, &rec.DonorID, &accountType,
			&rec.CloseDate, &rec.Amount, &rec.RecurringLinked, &rec.Campaign); err != nil {
			return nil, fmt.Errorf("scan donation row: %w", err)
		}
		rec.AccountType = donation.AccountType(accountType)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read donations: %w", err)
	}
	return records, nil
}
