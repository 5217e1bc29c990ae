package repository

import (
	"context"
	"database/sql"
)

// SocialLink is one entry of the social/contact link list.
type SocialLink struct {
	Label    string  `json:"label"`
	URL      string  `json:"url"`
	Platform *string `json:"platform"`
}

// SocialRepo manages persistence for social links.
type SocialRepo struct {
	db *sql.DB
}

// NewSocialRepo constructs a SocialRepo with the given DB handle.
func NewSocialRepo(db *sql.DB) *SocialRepo {
	return &SocialRepo{db: db}
}

// ListSocialLinks returns the links in insertion order.
func (r *SocialRepo) ListSocialLinks(ctx context.Context) ([]SocialLink, error) {
	if r.db == nil {
		return []SocialLink{}, nil
	}
	const q = `SELECT label, url, platform FROM social_links ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []SocialLink
	for rows.Next() {
		var (
			l        SocialLink
			platform sql.NullString
		)
		if err := rows.Scan(&l.Label, &l.URL, &platform); err != nil {
			return nil, err
		}
		if platform.Valid {
			l.Platform = &platform.String
		}
		result = append(result, l)
	}
	return result, rows.Err()
}
