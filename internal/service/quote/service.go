package quote

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"printcart-api/internal/domain"
	quoterepo "printcart-api/internal/repository/quote"
)

type Service struct {
	repo      quoteRepo
	mail      mailSender
	recipient string
	log       zerolog.Logger
}

type quoteRepo interface {
	Create(ctx context.Context, in quoterepo.CreateQuoteInput) (*domain.QuoteRequest, error)
}

type mailSender interface {
	Send(to, subject, body string) error
}

func New(repo quoterepo.Repository, mail mailSender, recipient string, log zerolog.Logger) *Service {
	return &Service{repo: repo, mail: mail, recipient: recipient, log: log}
}

type SubmitInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Submit stores the quote request and notifies the sales inbox. Delivery
// failure is logged but never fails the request: the row is already durable
// and sales can recover it from the store.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*domain.QuoteRequest, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.MissingField("name")
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, domain.MissingField("email")
	}
	if !strings.Contains(email, "@") {
		return nil, domain.InvalidField("email", "must be a valid email address")
	}
	if strings.TrimSpace(in.Message) == "" {
		return nil, domain.MissingField("message")
	}
	if in.Quantity < 0 {
		return nil, domain.InvalidField("quantity", "must not be negative")
	}

	q, err := s.repo.Create(ctx, quoterepo.CreateQuoteInput{
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		Company:   strings.TrimSpace(in.Company),
		Phone:     strings.TrimSpace(in.Phone),
		Message:   strings.TrimSpace(in.Message),
		ProductID: strings.TrimSpace(in.ProductID),
		Quantity:  in.Quantity,
	})
	if err != nil {
		return nil, err
	}

	if s.recipient != "" {
		if err := s.mail.Send(s.recipient, "New quote request from "+q.Name, notificationBody(q)); err != nil {
			s.log.Error().Err(err).Str("quote_id", q.ID).Msg("send quote notification")
		}
	}

	return q, nil
}

func notificationBody(q *domain.QuoteRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Quote request %s\n\n", q.ID)
	fmt.Fprintf(&b, "Name: %s\n", q.Name)
	fmt.Fprintf(&b, "Email: %s\n", q.Email)
	if q.Company != "" {
		fmt.Fprintf(&b, "Company: %s\n", q.Company)
	}
	if q.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", q.Phone)
	}
	if q.ProductID != "" {
		fmt.Fprintf(&b, "Product: %s\n", q.ProductID)
	}
	if q.Quantity > 0 {
		fmt.Fprintf(&b, "Quantity: %d\n", q.Quantity)
	}
	fmt.Fprintf(&b, "\n%s\n", q.Message)
	return b.String()
}
