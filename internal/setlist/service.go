// Package setlist implements the fan-voted setlist core: resolving free-text
// vote submissions against the canonical track catalog and ranking the
// leaderboard. The logic lives here exactly once; HTTP handlers are thin
// adapters and the store is injected, so the same code serves any deployment
// shape.
package setlist

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/munhozvinicius/divinomaravilhoso/internal/apperr"
	"github.com/munhozvinicius/divinomaravilhoso/internal/repository"
	"github.com/munhozvinicius/divinomaravilhoso/internal/slug"
)

// Store is the narrow persistence surface the service needs. The production
// implementation is *repository.SetlistRepo; tests inject fakes.
type Store interface {
	LookupTrackBySlugOrName(ctx context.Context, slug, lowered string) (*repository.Track, error)
	InsertVote(ctx context.Context, trackName string, voterName, voterContact *string) error
	ListTrackVoteStats(ctx context.Context) ([]repository.TrackVoteStats, error)
}

// leaderboardSize caps the ranked output.
const leaderboardSize = 10

// LeaderboardEntry is one ranked row of the top-tracks listing. Field names
// are part of the wire contract with the front-end.
type LeaderboardEntry struct {
	TrackName       string     `json:"track_name"`
	VoteCount       int64      `json:"vote_count"`
	LastVoteAt      *time.Time `json:"last_vote_at"`
	CatalogPosition *int64     `json:"catalog_position"`
}

// Service resolves votes and computes the leaderboard.
type Service struct {
	store Store
}

// NewService constructs a Service over the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// SubmitVote accepts a fan-typed track name plus optional voter identity and
// records one vote under the canonical catalog spelling. Matching tolerates
// casing, accent and punctuation differences (via the slug) but is not fuzzy:
// a track outside the official setlist is rejected, never created. Votes are
// deliberately not deduplicated per voter.
func (s *Service) SubmitVote(ctx context.Context, trackName string, voterName, voterContact *string) (string, error) {
	cleaned := strings.TrimSpace(trackName)
	if cleaned == "" {
		return "", apperr.Validation("Informe a música que quer ouvir")
	}

	track, err := s.store.LookupTrackBySlugOrName(ctx, slug.Make(cleaned), strings.ToLower(cleaned))
	if err != nil {
		if errors.Is(err, repository.ErrTrackNotFound) {
			return "", apperr.NotInCatalog("Essa faixa ainda não faz parte da setlist oficial")
		}
		return "", err
	}

	// Store the catalog's casing and accents, never the fan's raw text.
	if err := s.store.InsertVote(ctx, track.TrackName, voterName, voterContact); err != nil {
		return "", err
	}
	return track.TrackName, nil
}

// Leaderboard returns the current top tracks, fully recomputed from the vote
// log on every call. No caching or staleness is tolerated here.
func (s *Service) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	stats, err := s.store.ListTrackVoteStats(ctx)
	if err != nil {
		return nil, err
	}
	return Rank(stats), nil
}

// Rank orders per-track vote stats into the leaderboard: vote count
// descending, ties broken by most recent vote (tracks never voted for sort
// last), remaining ties by catalog position ascending (unpositioned tracks
// last). At most the top 10 rows are returned.
func Rank(stats []repository.TrackVoteStats) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(stats))
	for _, s := range stats {
		entries = append(entries, LeaderboardEntry{
			TrackName:       s.TrackName,
			VoteCount:       s.VoteCount,
			LastVoteAt:      s.LastVoteAt,
			CatalogPosition: s.CatalogPosition,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.VoteCount != b.VoteCount {
			return a.VoteCount > b.VoteCount
		}
		switch {
		case a.LastVoteAt != nil && b.LastVoteAt != nil:
			if !a.LastVoteAt.Equal(*b.LastVoteAt) {
				return a.LastVoteAt.After(*b.LastVoteAt)
			}
		case a.LastVoteAt != nil:
			return true
		case b.LastVoteAt != nil:
			return false
		}
		switch {
		case a.CatalogPosition != nil && b.CatalogPosition != nil:
			return *a.CatalogPosition < *b.CatalogPosition
		case a.CatalogPosition != nil:
			return true
		default:
			return false
		}
	})

	if len(entries) > leaderboardSize {
		entries = entries[:leaderboardSize]
	}
	return entries
}
