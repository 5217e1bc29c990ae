package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/munhozvinicius/divinomaravilhoso/internal/repository"
)

// ProductHandler serves the merchandise catalog.
type ProductHandler struct {
	Repo *repository.ProductRepo
}

// productResponse is the catalog wire shape. Money is integer cents only.
type productResponse struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	PriceCents  int64   `json:"price_cents"`
	Category    *string `json:"category"`
	IsNew       bool    `json:"is_new"`
	Inventory   int64   `json:"inventory"`
}

// GetProducts lists the catalog, new arrivals first.
func (h *ProductHandler) GetProducts(c echo.Context) error {
	products, err := h.Repo.ListProducts(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productResponse{
			ID:          p.ID,
			Name:        p.Name,
			Slug:        p.Slug,
			Description: p.Description,
			PriceCents:  p.PriceCents,
			Category:    p.Category,
			IsNew:       p.IsNew,
			Inventory:   p.Inventory,
		})
	}
	return c.JSON(http.StatusOK, out)
}
