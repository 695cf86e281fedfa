package cart

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"printcart-api/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetOrCreateByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	// The no-op DO UPDATE makes RETURNING yield the existing row on
	// conflict, so concurrent first requests for the same user all land on
	// one cart.
	const q = `
INSERT INTO carts (user_id)
VALUES ($1)
ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
RETURNING id::text, user_id, created_at, updated_at
`
	var cart domain.Cart
	if err := r.pool.QueryRow(ctx, q, userID).Scan(
		&cart.ID,
		&cart.UserID,
		&cart.CreatedAt,
		&cart.UpdatedAt,
	); err != nil {
		return nil, err
	}

	items, err := r.listItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	cart.Items = items
	return &cart, nil
}

func (r *postgresRepo) GetByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	const q = `
SELECT id::text, user_id, created_at, updated_at
FROM carts
WHERE user_id = $1
`
	var cart domain.Cart
	err := r.pool.QueryRow(ctx, q, userID).Scan(
		&cart.ID,
		&cart.UserID,
		&cart.CreatedAt,
		&cart.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

func (r *postgresRepo) UpsertItem(ctx context.Context, cartID string, in AddItemInput) (*domain.CartItem, bool, error) {
	// On merge only quantity moves; name, image, price and discount stay
	// locked at first add. xmax = 0 distinguishes a fresh insert from a
	// conflict update.
	const q = `
INSERT INTO cart_items (cart_id, product_id, product_name, product_image, quantity, price_per_unit, discount_percent)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (cart_id, product_id) DO UPDATE
SET quantity = cart_items.quantity + EXCLUDED.quantity,
    updated_at = now()
RETURNING id::text, cart_id::text, product_id, product_name, product_image, quantity, price_per_unit, discount_percent, created_at, updated_at, (xmax = 0) AS inserted
`
	var item domain.CartItem
	var inserted bool
	if err := r.pool.QueryRow(ctx, q,
		cartID,
		in.ProductID,
		in.ProductName,
		in.ProductImage,
		in.Quantity,
		in.PricePerUnit,
		in.DiscountPercent,
	).Scan(
		&item.ID,
		&item.CartID,
		&item.ProductID,
		&item.ProductName,
		&item.ProductImage,
		&item.Quantity,
		&item.PricePerUnit,
		&item.DiscountPercent,
		&item.CreatedAt,
		&item.UpdatedAt,
		&inserted,
	); err != nil {
		return nil, false, err
	}
	return &item, !inserted, nil
}

func (r *postgresRepo) UpdateItemQuantity(ctx context.Context, userID, itemID string, quantity int) (*domain.CartItem, error) {
	// Joining carts on user_id makes the ownership check part of the
	// statement; zero rows means missing cart, missing item or a foreign
	// item, indistinguishably.
	const q = `
UPDATE cart_items AS ci
SET quantity = $1, updated_at = now()
FROM carts AS c
WHERE ci.id = $2 AND ci.cart_id = c.id AND c.user_id = $3
RETURNING ci.id::text, ci.cart_id::text, ci.product_id, ci.product_name, ci.product_image, ci.quantity, ci.price_per_unit, ci.discount_percent, ci.created_at, ci.updated_at
`
	var item domain.CartItem
	err := r.pool.QueryRow(ctx, q, quantity, itemID, userID).Scan(
		&item.ID,
		&item.CartID,
		&item.ProductID,
		&item.ProductName,
		&item.ProductImage,
		&item.Quantity,
		&item.PricePerUnit,
		&item.DiscountPercent,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) DeleteItem(ctx context.Context, userID, itemID string) error {
	const q = `
DELETE FROM cart_items AS ci
USING carts AS c
WHERE ci.id = $1 AND ci.cart_id = c.id AND c.user_id = $2
`
	cmd, err := r.pool.Exec(ctx, q, itemID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) ClearItems(ctx context.Context, cartID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID)
	return err
}

func (r *postgresRepo) listItems(ctx context.Context, cartID string) ([]domain.CartItem, error) {
	const q = `
SELECT id::text, cart_id::text, product_id, product_name, product_image, quantity, price_per_unit, discount_percent, created_at, updated_at
FROM cart_items
WHERE cart_id = $1
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, q, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(
			&item.ID,
			&item.CartID,
			&item.ProductID,
			&item.ProductName,
			&item.ProductImage,
			&item.Quantity,
			&item.PricePerUnit,
			&item.DiscountPercent,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
