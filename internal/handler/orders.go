package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/munhozvinicius/divinomaravilhoso/internal/apperr"
	"github.com/munhozvinicius/divinomaravilhoso/internal/queue"
	"github.com/munhozvinicius/divinomaravilhoso/internal/repository"
	"github.com/munhozvinicius/divinomaravilhoso/internal/shop"
)

// OrderHandler turns submitted carts into persisted orders. Pricing is
// always recomputed server-side; the handler owns the accept/reject decision
// for empty or zero-total results that the pricer deliberately does not make.
type OrderHandler struct {
	Pricer *shop.Pricer
	Orders *repository.OrderRepo
	// Publish sends the order-placed event after persisting. Optional; a nil
	// Publish disables events, and publish failures never fail the order.
	Publish func(ctx context.Context, ev queue.OrderPlacedEvent) error
}

type orderRequest struct {
	Customer struct {
		Name          string `json:"name"`
		Email         string `json:"email"`
		Phone         string `json:"phone"`
		Address       string `json:"address"`
		PaymentMethod string `json:"payment_method"`
	} `json:"customer"`
	Items []shop.CartLine `json:"items"`
}

// Create prices the cart, rejects empty results, persists the order and
// responds with the generated id and the authoritative total in cents.
func (h *OrderHandler) Create(c echo.Context) error {
	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperr.InvalidJSON)
	}

	name := strings.TrimSpace(req.Customer.Name)
	email := strings.TrimSpace(req.Customer.Email)
	if name == "" || email == "" {
		return respondError(c, apperr.Validation("Informações do cliente incompletas"))
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return respondError(c, apperr.Validation("E-mail inválido"))
	}

	ctx := c.Request().Context()
	totalCents, items, err := h.Pricer.PriceCart(ctx, req.Items)
	if err != nil {
		return respondError(c, err)
	}
	if dropped := len(req.Items) - len(items); dropped > 0 {
		log.Debug().Int("dropped_lines", dropped).Msg("cart lines dropped during pricing")
	}
	if totalCents == 0 || len(items) == 0 {
		return respondError(c, apperr.Validation("Nenhum item válido no pedido"))
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return respondError(c, err)
	}
	customer := repository.OrderCustomer{
		Name:          name,
		Email:         email,
		Phone:         optional(req.Customer.Phone),
		Address:       optional(req.Customer.Address),
		PaymentMethod: optional(req.Customer.PaymentMethod),
	}
	orderID, err := h.Orders.InsertOrder(ctx, customer, totalCents, itemsJSON)
	if err != nil {
		return respondError(c, err)
	}

	if h.Publish != nil {
		ev := queue.OrderPlacedEvent{
			OrderID:       orderID,
			CustomerName:  name,
			CustomerEmail: email,
			TotalCents:    totalCents,
			Items:         items,
			PlacedAt:      time.Now().UTC().Format(time.RFC3339),
		}
		if err := h.Publish(ctx, ev); err != nil {
			log.Warn().Err(err).Uint64("order_id", orderID).Msg("order event publish failed")
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{"order_id": orderID, "total_cents": totalCents})
}
