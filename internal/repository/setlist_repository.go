// This file holds persistence for the fan-voted setlist: the canonical track
// catalog, the append-only vote log and the free-form comment box. Votes
// always store the canonical track name, never the fan's raw spelling; the
// resolution happens one layer up in the setlist service.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Track is one entry of the canonical setlist catalog. Rows are created at
// seed time and immutable afterwards; Slug is derived deterministically from
// TrackName.
type Track struct {
	ID        uint64
	TrackName string
	Slug      string
	Position  *int64 // display order; nil when unpositioned
	CreatedAt time.Time
}

// TrackVoteStats is one unranked leaderboard input row: a catalog track with
// its accumulated vote count. Tracks with zero votes are included (outer
// join) with a nil LastVoteAt.
type TrackVoteStats struct {
	TrackName       string
	VoteCount       int64
	LastVoteAt      *time.Time
	CatalogPosition *int64
}

// Comment is a free-form repertoire suggestion. It is intentionally not
// validated against the track catalog.
type Comment struct {
	ContributorName *string   `json:"contributor_name"`
	Idea            string    `json:"idea"`
	CreatedAt       time.Time `json:"created_at"`
}

// SetlistRepo manages persistence for tracks, votes and comments. A nil db
// puts the repo in degraded mode: reads return empty sets, writes return
// ErrStoreUnavailable.
type SetlistRepo struct {
	db *sql.DB
}

// NewSetlistRepo constructs a SetlistRepo with the given DB handle, which
// may be nil when no database is configured.
func NewSetlistRepo(db *sql.DB) *SetlistRepo {
	return &SetlistRepo{db: db}
}

// ListTracks returns the whole catalog ordered by display position (tracks
// without a position sort last, then by name).
func (r *SetlistRepo) ListTracks(ctx context.Context) ([]Track, error) {
	if r.db == nil {
		return []Track{}, nil
	}
	const q = `SELECT id, track_name, slug, position, created_at
	           FROM setlist_tracks
	           ORDER BY position IS NULL, position ASC, track_name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []Track
	for rows.Next() {
		var (
			t   Track
			pos sql.NullInt64
		)
		if err := rows.Scan(&t.ID, &t.TrackName, &t.Slug, &pos, &t.CreatedAt); err != nil {
			return nil, err
		}
		if pos.Valid {
			t.Position = &pos.Int64
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

// LookupTrackBySlugOrName finds the canonical track matching either the
// normalized slug or the lower-cased raw name. Returns ErrTrackNotFound when
// nothing matches.
func (r *SetlistRepo) LookupTrackBySlugOrName(ctx context.Context, slug, lowered string) (*Track, error) {
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}
	const q = `SELECT id, track_name, slug, position, created_at
	           FROM setlist_tracks
	           WHERE slug = ? OR LOWER(track_name) = ?
	           LIMIT 1`
	var (
		t   Track
		pos sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, q, slug, lowered).Scan(&t.ID, &t.TrackName, &t.Slug, &pos, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTrackNotFound
		}
		return nil, err
	}
	if pos.Valid {
		t.Position = &pos.Int64
	}
	return &t, nil
}

// InsertVote appends one vote for the given canonical track name. There is
// deliberately no per-voter deduplication; popularity accumulates by design.
func (r *SetlistRepo) InsertVote(ctx context.Context, trackName string, voterName, voterContact *string) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	const q = `INSERT INTO setlist_votes (track_name, voter_name, voter_contact) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, trackName, voterName, voterContact)
	return err
}

// ListTrackVoteStats returns one row per catalog track with its vote count
// and most recent vote timestamp. The rows come back unranked; ordering and
// the top-10 cut are applied by the setlist service so the tie-break rules
// live in one testable place.
func (r *SetlistRepo) ListTrackVoteStats(ctx context.Context) ([]TrackVoteStats, error) {
	if r.db == nil {
		return []TrackVoteStats{}, nil
	}
	const q = `SELECT t.track_name,
	                  COALESCE(COUNT(v.id), 0) AS vote_count,
	                  MAX(v.created_at) AS last_vote_at,
	                  MIN(t.position) AS catalog_position
	           FROM setlist_tracks t
	           LEFT JOIN setlist_votes v ON v.track_name = t.track_name
	           GROUP BY t.track_name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []TrackVoteStats
	for rows.Next() {
		var (
			s    TrackVoteStats
			last sql.NullTime
			pos  sql.NullInt64
		)
		if err := rows.Scan(&s.TrackName, &s.VoteCount, &last, &pos); err != nil {
			return nil, err
		}
		if last.Valid {
			t := last.Time
			s.LastVoteAt = &t
		}
		if pos.Valid {
			s.CatalogPosition = &pos.Int64
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// InsertComment appends one free-form suggestion.
func (r *SetlistRepo) InsertComment(ctx context.Context, contributorName *string, idea string) error {
	if r.db == nil {
		return ErrStoreUnavailable
	}
	const q = `INSERT INTO setlist_comments (contributor_name, idea) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, q, contributorName, idea)
	return err
}

// ListRecentComments returns the latest comments, newest first.
func (r *SetlistRepo) ListRecentComments(ctx context.Context, limit int) ([]Comment, error) {
	if r.db == nil {
		return []Comment{}, nil
	}
	const q = `SELECT contributor_name, idea, created_at
	           FROM setlist_comments
	           ORDER BY created_at DESC
	           LIMIT ?`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []Comment
	for rows.Next() {
		var (
			c    Comment
			name sql.NullString
		)
		if err := rows.Scan(&name, &c.Idea, &c.CreatedAt); err != nil {
			return nil, err
		}
		if name.Valid {
			c.ContributorName = &name.String
		}
		result = append(result, c)
	}
	return result, rows.Err()
}
