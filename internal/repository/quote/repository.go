package quote

import (
	"context"

	"printcart-api/internal/domain"
)

type CreateQuoteInput struct {
	Name      string
	Email     string
	Company   string
	Phone     string
	Message   string
	ProductID string
	Quantity  int
}

type Repository interface {
	Create(ctx context.Context, in CreateQuoteInput) (*domain.QuoteRequest, error)
}
