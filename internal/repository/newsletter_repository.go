package repository

import (
	"context"
	"database/sql"
)

// NewsletterRepo manages the newsletter subscriber list.
type NewsletterRepo struct {
	db *sql.DB
}

// NewNewsletterRepo constructs a NewsletterRepo with the given DB handle.
func NewNewsletterRepo(db *sql.DB) *NewsletterRepo {
	return &NewsletterRepo{db: db}
}

// InsertSubscriber records an email address. Subscribing twice is a no-op
// (INSERT IGNORE on the unique email column), not an error.
func (r *NewsletterRepo) InsertSubscriber(ctx context.Context, email string) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	const q = `INSERT IGNORE INTO newsletter_subscribers (email) VALUES (?)`
	_, err := r.db.ExecContext(ctx, q, email)
	return err
}
