package cart

import (
	"context"

	"printcart-api/internal/domain"
)

type AddItemInput struct {
	ProductID       string
	ProductName     string
	ProductImage    string
	Quantity        int
	PricePerUnit    float64
	DiscountPercent int
}

type Repository interface {
	// GetOrCreateByUser materializes the user's cart on first access and
	// returns it with items in insertion order.
	GetOrCreateByUser(ctx context.Context, userID string) (*domain.Cart, error)
	// GetByUser returns the user's cart without items, or ErrNotFound.
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
	// UpsertItem inserts the item or, when the product is already in the
	// cart, adds the quantity onto the existing row. The bool reports
	// whether quantities were merged.
	UpsertItem(ctx context.Context, cartID string, in AddItemInput) (*domain.CartItem, bool, error)
	// UpdateItemQuantity sets the quantity of an item in a cart owned by
	// userID. ErrNotFound covers both a missing item and a foreign one.
	UpdateItemQuantity(ctx context.Context, userID, itemID string, quantity int) (*domain.CartItem, error)
	// DeleteItem removes an item from a cart owned by userID.
	DeleteItem(ctx context.Context, userID, itemID string) error
	// ClearItems deletes every item of the cart; the cart row survives.
	ClearItems(ctx context.Context, cartID string) error
}
