package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"printcart-api/internal/domain"
	cartsvc "printcart-api/internal/service/cart"
)

type cartHandler struct {
	svc CartService
}

type cartResponse struct {
	ID        string             `json:"id"`
	UserID    string             `json:"userId"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
	Items     []cartItemResponse `json:"items"`
}

type cartItemResponse struct {
	ID              string    `json:"id"`
	CartID          string    `json:"cartId"`
	ProductID       string    `json:"productId"`
	ProductName     string    `json:"productName"`
	ProductImage    string    `json:"productImage,omitempty"`
	Quantity        int       `json:"quantity"`
	PricePerUnit    float64   `json:"pricePerUnit"`
	DiscountPercent int       `json:"discountPercent"`
	LineTotal       float64   `json:"lineTotal"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *cartHandler) getCart(c *gin.Context) {
	cart, err := h.svc.GetCart(c.Request.Context(), userIDFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "cart": toCartResponse(*cart)})
}

func (h *cartHandler) addItem(c *gin.Context) {
	var in cartsvc.AddItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	item, merged, err := h.svc.AddItem(c.Request.Context(), userIDFrom(c), in)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "item added to cart"
	if merged {
		message = "item quantity updated"
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "item": toItemResponse(*item)})
}

func (h *cartHandler) updateItem(c *gin.Context) {
	var in updateQuantityRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	item, err := h.svc.UpdateItemQuantity(c.Request.Context(), userIDFrom(c), c.Param("itemID"), in.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "item quantity updated", "item": toItemResponse(*item)})
}

func (h *cartHandler) removeItem(c *gin.Context) {
	if err := h.svc.RemoveItem(c.Request.Context(), userIDFrom(c), c.Param("itemID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "item removed from cart"})
}

func (h *cartHandler) clearCart(c *gin.Context) {
	if err := h.svc.ClearCart(c.Request.Context(), userIDFrom(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "cart cleared"})
}

func toCartResponse(cart domain.Cart) cartResponse {
	items := make([]cartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, toItemResponse(item))
	}
	return cartResponse{
		ID:        cart.ID,
		UserID:    cart.UserID,
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
		Items:     items,
	}
}

func toItemResponse(item domain.CartItem) cartItemResponse {
	return cartItemResponse{
		ID:              item.ID,
		CartID:          item.CartID,
		ProductID:       item.ProductID,
		ProductName:     item.ProductName,
		ProductImage:    item.ProductImage,
		Quantity:        item.Quantity,
		PricePerUnit:    item.PricePerUnit,
		DiscountPercent: item.DiscountPercent,
		LineTotal:       item.LineTotal(),
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}
