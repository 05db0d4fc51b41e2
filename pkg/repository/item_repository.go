package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
)

// item kinds, one per collection pipeline
const (
	KindPeople    = "people"
	KindCompanies = "companies"
	KindNews      = "news"
)

// Item is a stored normalized record. Entity is the person or company the
// record belongs to, Published is nil for undated records.
type Item struct {
	ID          int64      `db:"id" json:"id"`
	RunID       string     `db:"run_id" json:"runId"`
	Kind        string     `db:"kind" json:"kind"`
	Entity      string     `db:"entity" json:"entity"`
	Category    string     `db:"category" json:"category,omitempty"`
	Title       string     `db:"title" json:"title"`
	Link        string     `db:"link" json:"link"`
	Published   *time.Time `db:"published" json:"published"`
	Source      string     `db:"source" json:"source,omitempty"`
	SourceURL   string     `db:"source_url" json:"sourceUrl,omitempty"`
	Description string     `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
}

// ItemRepository handles collected item persistence
type ItemRepository struct {
	db *sqlx.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *sqlx.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// SaveItems stores a batch of items from one run. An item already present
// under the same (kind, link) is refreshed rather than duplicated, reruns
// on the same day are common.
func (r *ItemRepository) SaveItems(ctx context.Context, items []Item) error {
	if len(items) == 0 {
		return nil
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("begin tx: %w", err)}
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		query := `
			INSERT INTO items (
				run_id, kind, entity, category, title, link,
				published, source, source_url, description
			) VALUES (
				:run_id, :kind, :entity, :category, :title, :link,
				:published, :source, :source_url, :description
			)
			ON CONFLICT (kind, link) DO UPDATE SET
				run_id = excluded.run_id,
				title = excluded.title,
				published = excluded.published,
				description = excluded.description
		`
		for i := range items {
			if _, err := tx.NamedExecContext(ctx, query, items[i]); err != nil {
				if isLockError(err) {
					return err // retry
				}
				return &criticalError{err: fmt.Errorf("save item %s: %w", items[i].Link, err)}
			}
		}

		if err := tx.Commit(); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("commit items: %w", err)}
		}
		return nil
	})
}

// GetItems retrieves the most recently collected items of one kind
func (r *ItemRepository) GetItems(ctx context.Context, kind string, limit int) ([]Item, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT * FROM items
		WHERE kind = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	var items []Item
	if err := r.db.SelectContext(ctx, &items, query, kind, limit); err != nil {
		return nil, fmt.Errorf("get items: %w", err)
	}
	return items, nil
}

// RecentLinks returns links collected since the given time across all
// kinds, used as the do-not-repeat context for digest synthesis
func (r *ItemRepository) RecentLinks(ctx context.Context, since time.Time) ([]string, error) {
	query := `
		SELECT link FROM items
		WHERE created_at >= ?
		ORDER BY created_at DESC
	`
	var links []string
	if err := r.db.SelectContext(ctx, &links, query, since); err != nil {
		return nil, fmt.Errorf("recent links: %w", err)
	}
	return links, nil
}

// CountItems returns the number of stored items per kind
func (r *ItemRepository) CountItems(ctx context.Context, kind string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM items WHERE kind = ?", kind); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return count, nil
}
