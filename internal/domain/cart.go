package domain

import (
	"math"
	"time"
)

type Cart struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Items     []CartItem `json:"items"`
}

type CartItem struct {
	ID              string    `json:"id"`
	CartID          string    `json:"cartId"`
	ProductID       string    `json:"productId"`
	ProductName     string    `json:"productName"`
	ProductImage    string    `json:"productImage,omitempty"`
	Quantity        int       `json:"quantity"`
	PricePerUnit    float64   `json:"pricePerUnit"`
	DiscountPercent int       `json:"discountPercent"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// LineTotal is the discounted price for the full quantity, rounded to cents.
func (i CartItem) LineTotal() float64 {
	total := i.PricePerUnit * float64(i.Quantity) * (100 - float64(i.DiscountPercent)) / 100
	return math.Round(total*100) / 100
}
