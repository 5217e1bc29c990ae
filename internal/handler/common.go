// Package handler exposes the HTTP handlers for the band-site API. Handlers
// are thin adapters: they decode requests, call the repositories/services
// and translate errors into the stable {error, message} shape the front-end
// consumes.
package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/munhozvinicius/divinomaravilhoso/internal/apperr"
	"github.com/munhozvinicius/divinomaravilhoso/internal/repository"
)

// respondError writes the client-facing JSON for err. Typed apperr values
// pass through with their code and localized message; known sentinel store
// errors map to the unavailable response; anything else is logged and hidden
// behind a generic 500 so internals never leak.
func respondError(c echo.Context, err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return c.JSON(ae.Status(), echo.Map{"error": ae.Code, "message": ae.Message})
	}
	if errors.Is(err, repository.ErrStoreUnavailable) {
		ae = apperr.StoreUnavailable
		return c.JSON(ae.Status(), echo.Map{"error": ae.Code, "message": ae.Message})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"error":   apperr.CodeInternal,
		"message": "Erro interno, tente novamente",
	})
}

// optional trims s and returns nil for the empty result, so blank form
// fields persist as NULL instead of empty strings.
func optional(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}
