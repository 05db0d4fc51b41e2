package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when a requested digest does not exist
var ErrNotFound = errors.New("not found")

// Digest is one synthesized document. Date is the digest day in
// YYYY-MM-DD form, one digest per day.
type Digest struct {
	ID        int64     `db:"id" json:"id"`
	Date      string    `db:"digest_date" json:"date"`
	Content   string    `db:"content" json:"content"`
	Model     string    `db:"model" json:"model,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// DigestRepository handles digest persistence
type DigestRepository struct {
	db *sqlx.DB
}

// NewDigestRepository creates a new digest repository
func NewDigestRepository(db *sqlx.DB) *DigestRepository {
	return &DigestRepository{db: db}
}

// SaveDigest stores a digest, replacing any existing one for the same day
func (r *DigestRepository) SaveDigest(ctx context.Context, d Digest) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO digests (digest_date, content, model)
			VALUES (:digest_date, :content, :model)
			ON CONFLICT (digest_date) DO UPDATE SET
				content = excluded.content,
				model = excluded.model,
				created_at = CURRENT_TIMESTAMP
		`
		if _, err := r.db.NamedExecContext(ctx, query, d); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("save digest: %w", err)}
		}
		return nil
	})
}

// LatestDigest returns the most recent digest
func (r *DigestRepository) LatestDigest(ctx context.Context) (*Digest, error) {
	var d Digest
	err := r.db.GetContext(ctx, &d, "SELECT * FROM digests ORDER BY digest_date DESC LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("latest digest: %w", err)
	}
	return &d, nil
}

// DigestByDate returns the digest for a specific day (YYYY-MM-DD)
func (r *DigestRepository) DigestByDate(ctx context.Context, date string) (*Digest, error) {
	var d Digest
	err := r.db.GetContext(ctx, &d, "SELECT * FROM digests WHERE digest_date = ?", date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("digest by date: %w", err)
	}
	return &d, nil
}
