package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/munhozvinicius/divinomaravilhoso/internal/apperr"
	"github.com/munhozvinicius/divinomaravilhoso/internal/repository"
	"github.com/munhozvinicius/divinomaravilhoso/internal/storycard"
)

// EventHandler serves the tour agenda and the per-event story card image.
type EventHandler struct {
	Repo  *repository.EventRepo
	Cards *storycard.Renderer
}

// eventResponse mirrors the wire shape the front-end renders. The date is
// sent twice: ISO for machine use, dd/mm/yyyy label for display.
type eventResponse struct {
	ID           uint64  `json:"id"`
	Title        string  `json:"title"`
	DateISO      string  `json:"date_iso"`
	DateLabel    string  `json:"date_label"`
	City         string  `json:"city"`
	Venue        string  `json:"venue"`
	Status       string  `json:"status"`
	Description  *string `json:"description"`
	TicketsLink  *string `json:"tickets_link"`
	InstagramURL *string `json:"instagram_url"`
}

func toEventResponse(e repository.Event) eventResponse {
	return eventResponse{
		ID:           e.ID,
		Title:        e.Title,
		DateISO:      e.DateISO.Format("2006-01-02"),
		DateLabel:    e.DateISO.Format("02/01/2006"),
		City:         e.City,
		Venue:        e.Venue,
		Status:       e.Status,
		Description:  e.Description,
		TicketsLink:  e.TicketsLink,
		InstagramURL: e.InstagramURL,
	}
}

// GetEvents lists all events in chronological order.
func (h *EventHandler) GetEvents(c echo.Context) error {
	events, err := h.Repo.ListEvents(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	return c.JSON(http.StatusOK, out)
}

// GetStoryCard renders the promotional PNG for one event.
func (h *EventHandler) GetStoryCard(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respondError(c, apperr.Validation("ID inválido"))
	}
	event, err := h.Repo.GetEvent(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return respondError(c, apperr.NotFound("Evento não encontrado"))
		}
		return respondError(c, err)
	}
	payload, err := h.Cards.Render(storycard.Event{
		Title: event.Title,
		Venue: event.Venue,
		City:  event.City,
		Date:  event.DateISO,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Blob(http.StatusOK, "image/png", payload)
}
