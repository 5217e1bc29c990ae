package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Product is one merchandise catalog entry. PriceCents is the authoritative
// price source for order pricing; client-submitted prices are never trusted.
type Product struct {
	ID          uint64
	Name        string
	Slug        *string
	Description *string
	PriceCents  int64
	Category    *string
	IsNew       bool
	Inventory   int64
}

// ProductRepo manages persistence for merchandise products.
type ProductRepo struct {
	db *sql.DB
}

// NewProductRepo constructs a ProductRepo with the given DB handle.
func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// ListProducts returns the catalog with new arrivals first, then by name.
func (r *ProductRepo) ListProducts(ctx context.Context) ([]Product, error) {
	if r.db == nil {
		return []Product{}, nil
	}
	const q = `SELECT id, name, slug, description, price_cents, category, is_new, inventory
	           FROM products
	           ORDER BY is_new DESC, name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	return result, rows.Err()
}

// LookupProduct fetches one product by id. Returns ErrProductNotFound when
// the id matches nothing, which order pricing treats as a dropped line.
func (r *ProductRepo) LookupProduct(ctx context.Context, id uint64) (*Product, error) {
	if r.db == nil {
		return nil, ErrStoreUnavailable
	}
	const q = `SELECT id, name, slug, description, price_cents, category, is_new, inventory
	           FROM products WHERE id = ?`
	p, err := scanProduct(r.db.QueryRowContext(ctx, q, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func scanProduct(scan func(...any) error) (*Product, error) {
	var (
		p                    Product
		slug, desc, category sql.NullString
	)
	if err := scan(&p.ID, &p.Name, &slug, &desc, &p.PriceCents, &category, &p.IsNew, &p.Inventory); err != nil {
		return nil, err
	}
	if slug.Valid {
		p.Slug = &slug.String
	}
	if desc.Valid {
		p.Description = &desc.String
	}
	if category.Valid {
		p.Category = &category.String
	}
	return &p, nil
}
