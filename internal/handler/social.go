package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/munhozvinicius/divinomaravilhoso/internal/repository"
)

// SocialHandler serves the social/contact link list.
type SocialHandler struct {
	Repo *repository.SocialRepo
}

// GetSocialLinks lists the links in their configured order.
func (h *SocialHandler) GetSocialLinks(c echo.Context) error {
	links, err := h.Repo.ListSocialLinks(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, links)
}
