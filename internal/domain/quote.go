package domain

import "time"

type QuoteRequest struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	ProductID string    `json:"productId,omitempty"`
	Quantity  int       `json:"quantity,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
