package cart

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"printcart-api/internal/domain"
	cartrepo "printcart-api/internal/repository/cart"
)

type Service struct {
	repo cartRepo
}

type cartRepo interface {
	GetOrCreateByUser(ctx context.Context, userID string) (*domain.Cart, error)
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
	UpsertItem(ctx context.Context, cartID string, in cartrepo.AddItemInput) (*domain.CartItem, bool, error)
	UpdateItemQuantity(ctx context.Context, userID, itemID string, quantity int) (*domain.CartItem, error)
	DeleteItem(ctx context.Context, userID, itemID string) error
	ClearItems(ctx context.Context, cartID string) error
}

func New(repo cartrepo.Repository) *Service {
	return &Service{repo: repo}
}

type AddItemInput struct {
	ProductID       string  `json:"productId"`
	ProductName     string  `json:"productName"`
	ProductImage    string  `json:"image"`
	Quantity        int     `json:"quantity"`
	PricePerUnit    float64 `json:"pricePerUnit"`
	DiscountPercent int     `json:"discount"`
}

// GetCart returns the user's cart, creating an empty one on first access.
func (s *Service) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	userID, err := requireUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetOrCreateByUser(ctx, userID)
}

// AddItem puts a product into the user's cart. Adding a product that is
// already in the cart sums quantities; the bool reports that merge so the
// caller can phrase its confirmation accordingly.
func (s *Service) AddItem(ctx context.Context, userID string, in AddItemInput) (*domain.CartItem, bool, error) {
	userID, err := requireUserID(userID)
	if err != nil {
		return nil, false, err
	}
	if strings.TrimSpace(in.ProductID) == "" {
		return nil, false, domain.MissingField("productId")
	}
	if strings.TrimSpace(in.ProductName) == "" {
		return nil, false, domain.MissingField("productName")
	}
	if in.Quantity <= 0 {
		return nil, false, domain.InvalidField("quantity", "must be a positive integer")
	}
	if in.PricePerUnit <= 0 {
		return nil, false, domain.MissingField("pricePerUnit")
	}
	if in.DiscountPercent < 0 || in.DiscountPercent > 100 {
		return nil, false, domain.InvalidField("discount", "must be between 0 and 100")
	}

	cart, err := s.repo.GetOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	return s.repo.UpsertItem(ctx, cart.ID, cartrepo.AddItemInput{
		ProductID:       strings.TrimSpace(in.ProductID),
		ProductName:     strings.TrimSpace(in.ProductName),
		ProductImage:    strings.TrimSpace(in.ProductImage),
		Quantity:        in.Quantity,
		PricePerUnit:    in.PricePerUnit,
		DiscountPercent: in.DiscountPercent,
	})
}

// UpdateItemQuantity sets the quantity of one of the user's items.
func (s *Service) UpdateItemQuantity(ctx context.Context, userID, itemID string, quantity int) (*domain.CartItem, error) {
	userID, err := requireUserID(userID)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, domain.InvalidField("quantity", "must be a positive integer")
	}
	itemID, err = requireItemID(itemID)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateItemQuantity(ctx, userID, itemID, quantity)
}

// RemoveItem deletes one of the user's items.
func (s *Service) RemoveItem(ctx context.Context, userID, itemID string) error {
	userID, err := requireUserID(userID)
	if err != nil {
		return err
	}
	itemID, err = requireItemID(itemID)
	if err != nil {
		return err
	}
	return s.repo.DeleteItem(ctx, userID, itemID)
}

// ClearCart deletes all items of the user's cart. The cart row stays.
func (s *Service) ClearCart(ctx context.Context, userID string) error {
	userID, err := requireUserID(userID)
	if err != nil {
		return err
	}
	cart, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.ClearItems(ctx, cart.ID)
}

func requireUserID(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", domain.MissingField("userId")
	}
	return userID, nil
}

// requireItemID rejects ids that cannot be cart item ids. A malformed id is
// reported as not found, same as a foreign one.
func requireItemID(itemID string) (string, error) {
	itemID = strings.TrimSpace(itemID)
	if _, err := uuid.Parse(itemID); err != nil {
		return "", domain.ErrNotFound
	}
	return itemID, nil
}
