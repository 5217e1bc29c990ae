package handler

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/munhozvinicius/divinomaravilhoso/internal/apperr"
	"github.com/munhozvinicius/divinomaravilhoso/internal/repository"
)

// NewsletterHandler manages mailing-list signups.
type NewsletterHandler struct {
	Repo *repository.NewsletterRepo
}

type newsletterRequest struct {
	Email string `json:"email"`
}

// Subscribe records an email address. Re-subscribing is a silent no-op.
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req newsletterRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperr.InvalidJSON)
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return respondError(c, apperr.Validation("E-mail é obrigatório"))
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return respondError(c, apperr.Validation("E-mail inválido"))
	}
	if err := h.Repo.InsertSubscriber(c.Request().Context(), email); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"status": "ok"})
}
