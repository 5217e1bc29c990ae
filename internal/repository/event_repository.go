package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Event is one tour date. DateISO carries only the calendar date; the
// handler layer renders both the ISO form and the dd/mm/yyyy label the
// front-end displays.
type Event struct {
	ID           uint64
	Title        string
	DateISO      time.Time
	City         string
	Venue        string
	Status       string
	Description  *string
	TicketsLink  *string
	InstagramURL *string
}

// EventRepo manages persistence for tour events.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo constructs an EventRepo with the given DB handle.
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

// ListEvents returns all events in chronological order.
func (r *EventRepo) ListEvents(ctx context.Context) ([]Event, error) {
	if r.db == nil {
		return []Event{}, nil
	}
	const q = `SELECT id, title, date_iso, city, venue, status, description, tickets_link, instagram_url
	           FROM events
	           ORDER BY date_iso ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	return result, rows.Err()
}

// GetEvent fetches one event by id, for the story-card endpoint. Returns
// ErrEventNotFound when the id matches nothing.
func (r *EventRepo) GetEvent(ctx context.Context, id uint64) (*Event, error) {
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}
	const q = `SELECT id, title, date_iso, city, venue, status, description, tickets_link, instagram_url
	           FROM events WHERE id = ?`
	e, err := scanEvent(r.db.QueryRowContext(ctx, q, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return e, nil
}

func scanEvent(scan func(...any) error) (*Event, error) {
	var (
		e                     Event
		desc, tickets, status sql.NullString
		instagram             sql.NullString
	)
	if err := scan(&e.ID, &e.Title, &e.DateISO, &e.City, &e.Venue, &status, &desc, &tickets, &instagram); err != nil {
		return nil, err
	}
	if status.Valid {
		e.Status = status.String
	}
	if desc.Valid {
		e.Description = &desc.String
	}
	if tickets.Valid {
		e.TicketsLink = &tickets.String
	}
	if instagram.Valid {
		e.InstagramURL = &instagram.String
	}
	return &e, nil
}
