package repository

import (
	"context"
	"database/sql"
)

// OrderCustomer carries the buyer fields persisted with an order. Name and
// Email are validated by the handler before reaching the repository.
type OrderCustomer struct {
	Name          string
	Email         string
	Phone         *string
	Address       *string
	PaymentMethod *string
}

// OrderRepo manages persistence for orders. Orders are immutable once
// created; the priced line items are stored as a JSON document so historical
// orders are immune to later catalog price changes.
type OrderRepo struct {
	db *sql.DB
}

// NewOrderRepo constructs an OrderRepo with the given DB handle.
func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// InsertOrder persists one priced order and returns its generated id.
// itemsJSON must be the already-validated line items marshalled by the
// caller; totalCents must come from the pricer, never from the client.
func (r *OrderRepo) InsertOrder(ctx context.Context, customer OrderCustomer, totalCents int64, itemsJSON []byte) (uint64, error) {
	if r.db == nil {
		return 0, ErrStoreUnavailable
	}
	const q = `INSERT INTO orders (customer_name, customer_email, customer_phone, customer_address, payment_method, total_cents, items_json)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		customer.Name, customer.Email, customer.Phone, customer.Address, customer.PaymentMethod,
		totalCents, itemsJSON,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
