package crm

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ktevon/donorkit/pkg/rfm"
)

// Sink writes commitment scores back to the CRM mirror. The write is
// two-phase inside one transaction: every existing score is cleared
// first, then the new values go in, so a completed run fully replaces the
// previous one and a failed run changes nothing.
type Sink struct {
	db *sql.DB
}

func NewSink(db *sql.DB) *Sink {
	return &Sink{db: db}
}

func (s *Sink) WriteScores(ctx context.Context, scores []rfm.DonorScore) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin score write: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE contact SET commitment_score = NULL, segment = NULL WHERE commitment_score IS NOT NULL`); err != nil {
		return fmt.Errorf("clear existing scores: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`UPDATE contact SET commitment_score = ?, segment = ? WHERE contact_id = ?`)
	if err != nil {
		return fmt.Errorf("prepare score update: %w", err)
	}
	defer stmt.Close()

	for _, score := range scores {
		commitment := sql.NullInt64{}
		if score.Commitment != nil {
			commitment = sql.NullInt64{Int64: int64(*score.Commitment), Valid: true}
		}
		segment := sql.NullString{String: string(score.Segment), Valid: score.Segment != ""}

		if _, err := stmt.ExecContext(ctx, commitment, segment, score.DonorID); err != nil {
			return fmt.Errorf("update contact %s: %w", score.DonorID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit score write: %w", err)
	}
	return nil
}
