package shop

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/munhozvinicius/divinomaravilhoso/internal/repository"
)

// fakeCatalog implements ProductStore over a fixed product map.
type fakeCatalog struct {
	products map[uint64]repository.Product
	err      error
}

func (f *fakeCatalog) LookupProduct(_ context.Context, id uint64) (*repository.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return &p, nil
}

func twoProducts() *fakeCatalog {
	return &fakeCatalog{products: map[uint64]repository.Product{
		1: {ID: 1, Name: "Boné Divino Maravilhoso", PriceCents: 1000},
		2: {ID: 2, Name: "Camiseta Manifesto", PriceCents: 15990},
	}}
}

func TestPriceCartDropsInvalidLines(t *testing.T) {
	pricer := NewPricer(twoProducts())

	// One good line, one unknown product, one zero quantity.
	lines := []CartLine{
		{ID: 1, Quantity: 2},
		{ID: 999, Quantity: 1},
		{ID: 2, Quantity: 0},
	}
	total, items, err := pricer.PriceCart(context.Background(), lines)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), total)
	require.Len(t, items, 1)
	assert.Equal(t, OrderItem{
		ID:            1,
		Name:          "Boné Divino Maravilhoso",
		PriceCents:    1000,
		Quantity:      2,
		SubtotalCents: 2000,
	}, items[0])
}

func TestPriceCartPreservesEncounterOrder(t *testing.T) {
	pricer := NewPricer(twoProducts())

	lines := []CartLine{
		{ID: 2, Quantity: 1},
		{ID: 404, Quantity: 3},
		{ID: 1, Quantity: 1},
	}
	total, items, err := pricer.PriceCart(context.Background(), lines)
	require.NoError(t, err)
	assert.Equal(t, int64(16990), total)
	require.Len(t, items, 2)
	assert.Equal(t, uint64(2), items[0].ID)
	assert.Equal(t, uint64(1), items[1].ID)
}

func TestPriceCartEmptyResultIsNotAnError(t *testing.T) {
	pricer := NewPricer(twoProducts())

	total, items, err := pricer.PriceCart(context.Background(), []CartLine{
		{ID: 1, Quantity: -2},
		{ID: 0, Quantity: 5},
	})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items, "the pricer returns the empty result; rejection happens at order creation")
}

func TestPriceCartDropsHugeQuantities(t *testing.T) {
	// Quantities big enough to wrap the int64 subtotal must be dropped like
	// any other invalid quantity, never priced into a wrapped total.
	pricer := NewPricer(twoProducts())

	lines := []CartLine{
		{ID: 1, Quantity: math.MaxInt64},
		{ID: 1, Quantity: 2066035336255469781}, // wraps 1000 * q to a small positive total
		{ID: 1, Quantity: maxLineQuantity + 1},
	}
	total, items, err := pricer.PriceCart(context.Background(), lines)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)

	// A sane line alongside the absurd ones still prices normally.
	total, items, err = pricer.PriceCart(context.Background(), append(lines, CartLine{ID: 1, Quantity: 2}))
	require.NoError(t, err)
	assert.Equal(t, int64(2000), total)
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].Quantity)
}

func TestPriceCartMaxQuantityStillPrices(t *testing.T) {
	pricer := NewPricer(twoProducts())

	total, items, err := pricer.PriceCart(context.Background(), []CartLine{{ID: 1, Quantity: maxLineQuantity}})
	require.NoError(t, err)
	assert.Equal(t, int64(1000)*maxLineQuantity, total)
	require.Len(t, items, 1)
}

func TestPriceCartIgnoresClientPrices(t *testing.T) {
	// A forged payload carrying its own price_cents: the field has nowhere
	// to land during decoding and the stored price wins.
	payload := `[{"id": 1, "quantity": 1, "price_cents": 1, "name": "hacked"}]`
	var lines []CartLine
	require.NoError(t, json.Unmarshal([]byte(payload), &lines))

	pricer := NewPricer(twoProducts())
	total, items, err := pricer.PriceCart(context.Background(), lines)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), total)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1000), items[0].PriceCents)
	assert.Equal(t, "Boné Divino Maravilhoso", items[0].Name)
}

func TestPriceCartPropagatesStoreFailure(t *testing.T) {
	pricer := NewPricer(&fakeCatalog{err: repository.ErrStoreUnavailable})

	_, _, err := pricer.PriceCart(context.Background(), []CartLine{{ID: 1, Quantity: 1}})
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
}

func TestJSONIntLeniency(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{`3`, 3},
		{`"4"`, 4},
		{`" 5 "`, 5},
		{`0`, 0},
		{`-2`, -2},
		{`3.7`, 3},   // fractional numbers truncate toward zero
		{`-2.5`, -2},
		{`"3.7"`, 0}, // strings must hold plain integers
		{`1e300`, 0}, // out of int64 range
		{`"abc"`, 0},
		{`null`, 0},
		{`""`, 0},
		{`true`, 0},
	}
	for _, tc := range cases {
		var n JSONInt
		require.NoError(t, json.Unmarshal([]byte(tc.in), &n), "input %s", tc.in)
		assert.Equal(t, tc.want, int64(n), "input %s", tc.in)
	}
}

func TestCartLineDecodingSurvivesGarbageQuantities(t *testing.T) {
	payload := `[{"id": 1, "quantity": "dois"}, {"id": "2", "quantity": "1"}]`
	var lines []CartLine
	require.NoError(t, json.Unmarshal([]byte(payload), &lines))

	pricer := NewPricer(twoProducts())
	total, items, err := pricer.PriceCart(context.Background(), lines)
	require.NoError(t, err)
	assert.Equal(t, int64(15990), total, "string ids and quantities still price")
	require.Len(t, items, 1)
	assert.Equal(t, uint64(2), items[0].ID)
}
