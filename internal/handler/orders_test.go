package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/munhozvinicius/divinomaravilhoso/internal/apperr"
	"github.com/munhozvinicius/divinomaravilhoso/internal/queue"
	"github.com/munhozvinicius/divinomaravilhoso/internal/repository"
	"github.com/munhozvinicius/divinomaravilhoso/internal/shop"
)

type stubCatalog struct {
	products map[uint64]repository.Product
}

func (s *stubCatalog) LookupProduct(_ context.Context, id uint64) (*repository.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return &p, nil
}

func newOrderHandler() *OrderHandler {
	catalog := &stubCatalog{products: map[uint64]repository.Product{
		1: {ID: 1, Name: "Boné Divino Maravilhoso", PriceCents: 1000},
	}}
	return &OrderHandler{
		Pricer: shop.NewPricer(catalog),
		// nil DB handle: inserts fail with ErrStoreUnavailable, which lets
		// the tests exercise both the pre-insert rejections and the
		// degraded-mode write path without a database.
		Orders: repository.NewOrderRepo(nil),
	}
}

func postJSON(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCreateOrderRejectsIncompleteCustomer(t *testing.T) {
	h := newOrderHandler()
	rec := postJSON(t, h.Create, `{"customer": {"name": "Zé"}, "items": [{"id": 1, "quantity": 1}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperr.CodeValidation, decodeError(t, rec)["error"])
}

func TestCreateOrderRejectsMalformedEmail(t *testing.T) {
	h := newOrderHandler()
	rec := postJSON(t, h.Create, `{"customer": {"name": "Zé", "email": "not-an-email"}, "items": [{"id": 1, "quantity": 1}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperr.CodeValidation, decodeError(t, rec)["error"])
}

func TestCreateOrderRejectsEmptyCart(t *testing.T) {
	h := newOrderHandler()
	// Every line is dropped: unknown product, zero quantity, garbage quantity.
	body := `{"customer": {"name": "Zé", "email": "ze@example.com"},
	          "items": [{"id": 999, "quantity": 1}, {"id": 1, "quantity": 0}, {"id": 1, "quantity": "muitos"}]}`
	rec := postJSON(t, h.Create, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	out := decodeError(t, rec)
	assert.Equal(t, apperr.CodeValidation, out["error"])
	assert.Equal(t, "Nenhum item válido no pedido", out["message"])
}

func TestCreateOrderFailsLoudlyWithoutStore(t *testing.T) {
	// A priceable cart reaching a dead store must return 503, never a silent
	// drop of the order.
	h := newOrderHandler()
	rec := postJSON(t, h.Create, `{"customer": {"name": "Zé", "email": "ze@example.com"}, "items": [{"id": 1, "quantity": 2}]}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, apperr.CodeStoreUnavailable, decodeError(t, rec)["error"])
}

func TestCreateOrderPublishFailureDoesNotFailOrder(t *testing.T) {
	// Publish is only attempted after a successful insert, so with the store
	// down it must not run at all.
	h := newOrderHandler()
	published := false
	h.Publish = func(context.Context, queue.OrderPlacedEvent) error {
		published = true
		return nil
	}
	rec := postJSON(t, h.Create, `{"customer": {"name": "Zé", "email": "ze@example.com"}, "items": [{"id": 1, "quantity": 1}]}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.False(t, published)
}

func TestCreateOrderRejectsInvalidJSON(t *testing.T) {
	h := newOrderHandler()
	rec := postJSON(t, h.Create, `{"customer": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperr.CodeInvalidJSON, decodeError(t, rec)["error"])
}
