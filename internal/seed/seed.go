package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type itemSeed struct {
	ProductID       string
	ProductName     string
	ProductImage    string
	Quantity        int
	PricePerUnit    float64
	DiscountPercent int
}

// Apply inserts a demo cart for local SPA development. It is idempotent via
// ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	cartID, err := ensureCart(ctx, pool, "demo-user")
	if err != nil {
		return fmt.Errorf("ensure cart: %w", err)
	}

	items := []itemSeed{
		{
			ProductID:       "letterhead-a4",
			ProductName:     "A4 Letterhead, 90gsm",
			ProductImage:    "/images/products/letterhead-a4.jpg",
			Quantity:        500,
			PricePerUnit:    0.18,
			DiscountPercent: 10,
		},
		{
			ProductID:       "business-cards-350",
			ProductName:     "Business Cards, 350gsm matte",
			ProductImage:    "/images/products/business-cards.jpg",
			Quantity:        1000,
			PricePerUnit:    0.09,
			DiscountPercent: 0,
		},
	}

	for _, item := range items {
		if err := upsertItem(ctx, pool, cartID, item); err != nil {
			return fmt.Errorf("upsert item %s: %w", item.ProductID, err)
		}
	}

	return nil
}

func ensureCart(ctx context.Context, pool *pgxpool.Pool, userID string) (string, error) {
	const q = `
INSERT INTO carts (user_id)
VALUES ($1)
ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
RETURNING id::text
`
	var cartID string
	if err := pool.QueryRow(ctx, q, userID).Scan(&cartID); err != nil {
		return "", err
	}
	return cartID, nil
}

func upsertItem(ctx context.Context, pool *pgxpool.Pool, cartID string, item itemSeed) error {
	const q = `
INSERT INTO cart_items (cart_id, product_id, product_name, product_image, quantity, price_per_unit, discount_percent)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (cart_id, product_id) DO UPDATE
SET quantity = EXCLUDED.quantity,
    price_per_unit = EXCLUDED.price_per_unit,
    discount_percent = EXCLUDED.discount_percent
`
	_, err := pool.Exec(ctx, q,
		cartID,
		item.ProductID,
		item.ProductName,
		item.ProductImage,
		item.Quantity,
		item.PricePerUnit,
		item.DiscountPercent,
	)
	return err
}
