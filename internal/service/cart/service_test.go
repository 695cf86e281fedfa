package cart

import (
	"context"
	"errors"
	"testing"

	"printcart-api/internal/domain"
	cartrepo "printcart-api/internal/repository/cart"
)


const testItemID = "8b911649-91b3-4e17-8cfe-9a9b6ca4762e"

type stubRepo struct {
	cart           *domain.Cart
	cartErr        error
	byUserCart     *domain.Cart
	byUserErr      error
	upsertItem     *domain.CartItem
	upsertMerged   bool
	upsertErr      error
	updateItem     *domain.CartItem
	updateErr      error
	deleteErr      error
	clearErr       error
	lastUpsertCart string
	lastUpsert     cartrepo.AddItemInput
	lastUpdateUser string
	lastUpdateItem string
	lastUpdateQty  int
	lastDeleteUser string
	lastDeleteItem string
	lastClearCart  string
}

func (s *stubRepo) GetOrCreateByUser(_ context.Context, _ string) (*domain.Cart, error) {
	return s.cart, s.cartErr
}

func (s *stubRepo) GetByUser(_ context.Context, _ string) (*domain.Cart, error) {
	return s.byUserCart, s.byUserErr
}

func (s *stubRepo) UpsertItem(_ context.Context, cartID string, in cartrepo.AddItemInput) (*domain.CartItem, bool, error) {
	s.lastUpsertCart = cartID
	s.lastUpsert = in
	return s.upsertItem, s.upsertMerged, s.upsertErr
}

func (s *stubRepo) UpdateItemQuantity(_ context.Context, userID, itemID string, quantity int) (*domain.CartItem, error) {
	s.lastUpdateUser = userID
	s.lastUpdateItem = itemID
	s.lastUpdateQty = quantity
	return s.updateItem, s.updateErr
}

func (s *stubRepo) DeleteItem(_ context.Context, userID, itemID string) error {
	s.lastDeleteUser = userID
	s.lastDeleteItem = itemID
	return s.deleteErr
}

func (s *stubRepo) ClearItems(_ context.Context, cartID string) error {
	s.lastClearCart = cartID
	return s.clearErr
}

func validAddInput() AddItemInput {
	return AddItemInput{
		ProductID:    "business-cards-350",
		ProductName:  "Business Cards",
		Quantity:     5,
		PricePerUnit: 10,
	}
}

func TestGetCartRequiresUserID(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}
	_, err := svc.GetCart(context.Background(), "   ")
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Field != "userId" {
		t.Fatalf("expected userId validation error, got %v", err)
	}
}

func TestGetCartHappyPath(t *testing.T) {
	expected := &domain.Cart{ID: "c1", UserID: "u1"}
	svc := &Service{repo: &stubRepo{cart: expected}}
	got, err := svc.GetCart(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != expected {
		t.Fatalf("unexpected cart: %+v", got)
	}
}

func TestAddItemValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*AddItemInput)
		field  string
	}{
		{"missing productId", func(in *AddItemInput) { in.ProductID = "" }, "productId"},
		{"missing productName", func(in *AddItemInput) { in.ProductName = " " }, "productName"},
		{"zero quantity", func(in *AddItemInput) { in.Quantity = 0 }, "quantity"},
		{"negative quantity", func(in *AddItemInput) { in.Quantity = -2 }, "quantity"},
		{"missing price", func(in *AddItemInput) { in.PricePerUnit = 0 }, "pricePerUnit"},
		{"discount above 100", func(in *AddItemInput) { in.DiscountPercent = 101 }, "discount"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubRepo{}
			svc := &Service{repo: repo}
			in := validAddInput()
			tc.mutate(&in)
			_, _, err := svc.AddItem(context.Background(), "u1", in)
			var verr *domain.ValidationError
			if !errors.As(err, &verr) || verr.Field != tc.field {
				t.Fatalf("expected %s validation error, got %v", tc.field, err)
			}
			if repo.lastUpsertCart != "" {
				t.Fatalf("expected no mutation, got upsert on cart %s", repo.lastUpsertCart)
			}
		})
	}
}

func TestAddItemInsert(t *testing.T) {
	item := &domain.CartItem{ID: testItemID, ProductID: "business-cards-350", Quantity: 5}
	repo := &stubRepo{cart: &domain.Cart{ID: "c1"}, upsertItem: item}
	svc := &Service{repo: repo}

	got, merged, err := svc.AddItem(context.Background(), "u1", validAddInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if merged {
		t.Fatalf("expected insert, got merge")
	}
	if got != item {
		t.Fatalf("unexpected item: %+v", got)
	}
	if repo.lastUpsertCart != "c1" {
		t.Fatalf("expected upsert on cart c1, got %q", repo.lastUpsertCart)
	}
	if repo.lastUpsert.Quantity != 5 || repo.lastUpsert.PricePerUnit != 10 {
		t.Fatalf("unexpected upsert input %+v", repo.lastUpsert)
	}
}

func TestAddItemMerge(t *testing.T) {
	item := &domain.CartItem{ID: testItemID, Quantity: 8}
	repo := &stubRepo{cart: &domain.Cart{ID: "c1"}, upsertItem: item, upsertMerged: true}
	svc := &Service{repo: repo}

	got, merged, err := svc.AddItem(context.Background(), "u1", validAddInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !merged {
		t.Fatalf("expected merge")
	}
	if got.Quantity != 8 {
		t.Fatalf("unexpected quantity: %d", got.Quantity)
	}
}

func TestAddItemTrimsFields(t *testing.T) {
	repo := &stubRepo{cart: &domain.Cart{ID: "c1"}, upsertItem: &domain.CartItem{}}
	svc := &Service{repo: repo}

	in := validAddInput()
	in.ProductID = "  flyers-a5  "
	in.ProductName = " A5 Flyers "
	if _, _, err := svc.AddItem(context.Background(), " u1 ", in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastUpsert.ProductID != "flyers-a5" || repo.lastUpsert.ProductName != "A5 Flyers" {
		t.Fatalf("expected trimmed fields, got %+v", repo.lastUpsert)
	}
}

func TestUpdateItemQuantityRejectsNonPositive(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo}
	_, err := svc.UpdateItemQuantity(context.Background(), "u1", testItemID, 0)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Field != "quantity" {
		t.Fatalf("expected quantity validation error, got %v", err)
	}
	if repo.lastUpdateItem != "" {
		t.Fatalf("expected no mutation")
	}
}

func TestUpdateItemQuantityMalformedID(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}
	_, err := svc.UpdateItemQuantity(context.Background(), "u1", "not-a-uuid", 2)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateItemQuantityHappyPath(t *testing.T) {
	item := &domain.CartItem{ID: testItemID, Quantity: 2}
	repo := &stubRepo{updateItem: item}
	svc := &Service{repo: repo}

	got, err := svc.UpdateItemQuantity(context.Background(), "u1", testItemID, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != item {
		t.Fatalf("unexpected item: %+v", got)
	}
	if repo.lastUpdateUser != "u1" || repo.lastUpdateItem != testItemID || repo.lastUpdateQty != 2 {
		t.Fatalf("unexpected repo call: %s %s %d", repo.lastUpdateUser, repo.lastUpdateItem, repo.lastUpdateQty)
	}
}

func TestRemoveItemNotFoundPassthrough(t *testing.T) {
	svc := &Service{repo: &stubRepo{deleteErr: domain.ErrNotFound}}
	err := svc.RemoveItem(context.Background(), "u1", testItemID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestClearCartNoCart(t *testing.T) {
	repo := &stubRepo{byUserErr: domain.ErrNotFound}
	svc := &Service{repo: repo}
	err := svc.ClearCart(context.Background(), "u1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if repo.lastClearCart != "" {
		t.Fatalf("expected no clear call")
	}
}

func TestClearCartHappyPath(t *testing.T) {
	repo := &stubRepo{byUserCart: &domain.Cart{ID: "c1", UserID: "u1"}}
	svc := &Service{repo: repo}
	if err := svc.ClearCart(context.Background(), "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastClearCart != "c1" {
		t.Fatalf("expected clear on cart c1, got %q", repo.lastClearCart)
	}
}

func TestAddItemRepoError(t *testing.T) {
	repo := &stubRepo{cartErr: errors.New("boom")}
	svc := &Service{repo: repo}
	_, _, err := svc.AddItem(context.Background(), "u1", validAddInput())
	if err == nil || err.Error() != "boom" {
		t.Fatalf("expected repo error, got %v", err)
	}
}
