// Package queue defines message payloads exchanged over the message broker
// plus the publisher and the background consumer for them.
package queue

import "github.com/munhozvinicius/divinomaravilhoso/internal/shop"

// orderQueueName is the durable queue carrying order confirmations.
const orderQueueName = "order.placed"

// OrderPlacedEvent is published after an order is persisted. It carries
// enough for downstream consumers (confirmation mail, fulfillment sheet,
// analytics) to act without querying the primary database.
type OrderPlacedEvent struct {
	OrderID       uint64           `json:"order_id"`
	CustomerName  string           `json:"customer_name"`
	CustomerEmail string           `json:"customer_email"`
	TotalCents    int64            `json:"total_cents"`
	Items         []shop.OrderItem `json:"items"`
	PlacedAt      string           `json:"placed_at"`
}
