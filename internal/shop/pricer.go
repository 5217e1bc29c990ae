// Package shop implements server-side order pricing: a client-submitted cart
// is re-validated against the current product catalog and repriced from the
// stored prices, so stale or forged client prices never reach an order.
package shop

import (
	"context"
	"errors"

	"github.com/munhozvinicius/divinomaravilhoso/internal/repository"
)

// ProductStore is the catalog surface the pricer needs. The production
// implementation is *repository.ProductRepo; tests inject fakes.
type ProductStore interface {
	LookupProduct(ctx context.Context, id uint64) (*repository.Product, error)
}

// CartLine is one submitted {product id, quantity} pair. Any price a client
// attaches to a line is ignored structurally: the field simply does not
// exist here, so it never survives decoding.
type CartLine struct {
	ID       JSONInt `json:"id"`
	Quantity JSONInt `json:"quantity"`
}

// OrderItem is one validated, repriced line. Field names and the
// cents-as-integer convention are part of the wire contract.
type OrderItem struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	PriceCents    int64  `json:"price_cents"`
	Quantity      int64  `json:"quantity"`
	SubtotalCents int64  `json:"subtotal_cents"`
}

// maxLineQuantity bounds a single cart line. No legitimate form submission
// comes anywhere near it, and it keeps the subtotal multiplication far away
// from int64 overflow, which would let a crafted quantity wrap the total.
const maxLineQuantity = 1_000_000

// Pricer computes authoritative order totals.
type Pricer struct {
	store ProductStore
}

// NewPricer constructs a Pricer over the given catalog store.
func NewPricer(store ProductStore) *Pricer {
	return &Pricer{store: store}
}

// PriceCart walks the submitted lines in order and returns the total plus
// the surviving items. Lines are silently dropped, not rejected, when the
// quantity is unparsable, non-positive or above maxLineQuantity, or when the
// product id matches nothing in the catalog; partial carts are valid. The pricer itself never
// rejects a cart: an empty or zero result is returned as-is and the caller
// decides whether that invalidates the order. Store failures (as opposed to
// missing products) do propagate, since pricing without a catalog would
// silently misprice.
func (p *Pricer) PriceCart(ctx context.Context, lines []CartLine) (int64, []OrderItem, error) {
	var totalCents int64
	items := make([]OrderItem, 0, len(lines))
	for _, line := range lines {
		quantity := int64(line.Quantity)
		if quantity <= 0 || quantity > maxLineQuantity || line.ID <= 0 {
			continue
		}
		product, err := p.store.LookupProduct(ctx, uint64(line.ID))
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				continue
			}
			return 0, nil, err
		}
		subtotal := product.PriceCents * quantity
		totalCents += subtotal
		items = append(items, OrderItem{
			ID:            product.ID,
			Name:          product.Name,
			PriceCents:    product.PriceCents,
			Quantity:      quantity,
			SubtotalCents: subtotal,
		})
	}
	return totalCents, items, nil
}
