package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/munhozvinicius/divinomaravilhoso/internal/apperr"
	"github.com/munhozvinicius/divinomaravilhoso/internal/repository"
	"github.com/munhozvinicius/divinomaravilhoso/internal/setlist"
)

// defaultCommentLimit applies when the ?limit query parameter is missing or
// unparsable.
const defaultCommentLimit = 20

// SetlistHandler serves the fan-voted setlist feature: the canonical track
// list, the leaderboard, votes and free-form comments.
type SetlistHandler struct {
	Repo    *repository.SetlistRepo
	Service *setlist.Service
}

// trackResponse is the catalog wire shape.
type trackResponse struct {
	TrackName string `json:"track_name"`
	Slug      string `json:"slug"`
	Position  *int64 `json:"position"`
}

// GetTracks lists the canonical setlist in display order.
func (h *SetlistHandler) GetTracks(c echo.Context) error {
	tracks, err := h.Repo.ListTracks(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]trackResponse, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, trackResponse{TrackName: t.TrackName, Slug: t.Slug, Position: t.Position})
	}
	return c.JSON(http.StatusOK, out)
}

// GetTop returns the leaderboard. It is recomputed from the vote log on
// every call and is intentionally kept off the response cache.
func (h *SetlistHandler) GetTop(c echo.Context) error {
	entries, err := h.Service.Leaderboard(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

// GetComments returns the most recent free-form suggestions.
func (h *SetlistHandler) GetComments(c echo.Context) error {
	limit := defaultCommentLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	comments, err := h.Repo.ListRecentComments(c.Request().Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, comments)
}

type voteRequest struct {
	TrackName    string `json:"track_name"`
	VoterName    string `json:"voter_name"`
	VoterContact string `json:"voter_contact"`
}

// SubmitVote records one vote for a track of the official setlist. The
// response echoes the canonical spelling so the front-end can display it
// regardless of how the fan typed the name.
func (h *SetlistHandler) SubmitVote(c echo.Context) error {
	var req voteRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperr.InvalidJSON)
	}
	canonical, err := h.Service.SubmitVote(
		c.Request().Context(),
		req.TrackName,
		optional(req.VoterName),
		optional(req.VoterContact),
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "track": canonical})
}

type commentRequest struct {
	ContributorName string `json:"contributor_name"`
	Idea            string `json:"idea"`
}

// SubmitComment records a free-form repertoire suggestion. Unlike votes,
// suggestions are not validated against the catalog.
func (h *SetlistHandler) SubmitComment(c echo.Context) error {
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperr.InvalidJSON)
	}
	idea := strings.TrimSpace(req.Idea)
	if idea == "" {
		return respondError(c, apperr.Validation("Conte sua ideia de música"))
	}
	if err := h.Repo.InsertComment(c.Request().Context(), optional(req.ContributorName), idea); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"status": "ok"})
}
