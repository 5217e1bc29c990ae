package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/munhozvinicius/divinomaravilhoso/internal/apperr"
	"github.com/munhozvinicius/divinomaravilhoso/internal/repository"
	"github.com/munhozvinicius/divinomaravilhoso/internal/setlist"
	"github.com/munhozvinicius/divinomaravilhoso/internal/slug"
)

// stubSetlistStore implements setlist.Store over a fixed catalog.
type stubSetlistStore struct {
	tracks []repository.Track
	votes  []string
}

func (s *stubSetlistStore) LookupTrackBySlugOrName(_ context.Context, key, lowered string) (*repository.Track, error) {
	for i := range s.tracks {
		t := &s.tracks[i]
		if t.Slug == key || strings.ToLower(t.TrackName) == lowered {
			return t, nil
		}
	}
	return nil, repository.ErrTrackNotFound
}

func (s *stubSetlistStore) InsertVote(_ context.Context, trackName string, _, _ *string) error {
	s.votes = append(s.votes, trackName)
	return nil
}

func (s *stubSetlistStore) ListTrackVoteStats(context.Context) ([]repository.TrackVoteStats, error) {
	return nil, nil
}

func newSetlistHandler(names ...string) (*SetlistHandler, *stubSetlistStore) {
	store := &stubSetlistStore{}
	for _, name := range names {
		store.tracks = append(store.tracks, repository.Track{TrackName: name, Slug: slug.Make(name)})
	}
	return &SetlistHandler{
		Repo:    repository.NewSetlistRepo(nil),
		Service: setlist.NewService(store),
	}, store
}

func TestSubmitVoteReturnsCanonicalName(t *testing.T) {
	h, store := newSetlistHandler("ODARA")
	rec := postJSON(t, h.SubmitVote, `{"track_name": "ódara", "voter_name": "Maria"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "ok", out["status"])
	assert.Equal(t, "ODARA", out["track"])
	assert.Equal(t, []string{"ODARA"}, store.votes)
}

func TestSubmitVoteUnknownTrack(t *testing.T) {
	h, store := newSetlistHandler("ODARA")
	rec := postJSON(t, h.SubmitVote, `{"track_name": "Freebird"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	out := decodeError(t, rec)
	assert.Equal(t, apperr.CodeNotInCatalog, out["error"])
	assert.Equal(t, "Essa faixa ainda não faz parte da setlist oficial", out["message"])
	assert.Empty(t, store.votes)
}

func TestSubmitVoteEmptyTrackName(t *testing.T) {
	h, _ := newSetlistHandler("ODARA")
	rec := postJSON(t, h.SubmitVote, `{"track_name": "   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperr.CodeValidation, decodeError(t, rec)["error"])
}

func TestSubmitCommentRequiresIdea(t *testing.T) {
	h, _ := newSetlistHandler()
	rec := postJSON(t, h.SubmitComment, `{"contributor_name": "Zé", "idea": "  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	out := decodeError(t, rec)
	assert.Equal(t, apperr.CodeValidation, out["error"])
	assert.Equal(t, "Conte sua ideia de música", out["message"])
}

func TestSubmitCommentWithoutStore(t *testing.T) {
	// Comments write through the repo; with no database the write must fail
	// loudly instead of vanishing.
	h, _ := newSetlistHandler()
	rec := postJSON(t, h.SubmitComment, `{"idea": "toca raul"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, apperr.CodeStoreUnavailable, decodeError(t, rec)["error"])
}
