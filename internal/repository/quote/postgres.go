package quote

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"printcart-api/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, in CreateQuoteInput) (*domain.QuoteRequest, error) {
	const q = `
INSERT INTO quote_requests (name, email, company, phone, message, product_id, quantity)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id::text, name, email, company, phone, message, product_id, quantity, created_at
`
	var out domain.QuoteRequest
	if err := r.pool.QueryRow(ctx, q,
		in.Name,
		in.Email,
		in.Company,
		in.Phone,
		in.Message,
		in.ProductID,
		in.Quantity,
	).Scan(
		&out.ID,
		&out.Name,
		&out.Email,
		&out.Company,
		&out.Phone,
		&out.Message,
		&out.ProductID,
		&out.Quantity,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}
