package httpserver

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"printcart-api/internal/domain"
	cartsvc "printcart-api/internal/service/cart"
	quotesvc "printcart-api/internal/service/quote"
)

// CartService is what the cart handlers need from the service layer.
type CartService interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID string, in cartsvc.AddItemInput) (*domain.CartItem, bool, error)
	UpdateItemQuantity(ctx context.Context, userID, itemID string, quantity int) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, userID, itemID string) error
	ClearCart(ctx context.Context, userID string) error
}

type QuoteService interface {
	Submit(ctx context.Context, in quotesvc.SubmitInput) (*domain.QuoteRequest, error)
}

type Deps struct {
	CartSvc  CartService
	QuoteSvc QuoteService
}

// buildRouter wires routes for the API.
func buildRouter(log zerolog.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestID(), accessLog(log), gin.Recovery())
	router.Use(cors.New(corsConfig(corsOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	ch := &cartHandler{svc: deps.CartSvc}
	router.GET("/cart", ch.getCart)
	router.DELETE("/cart", ch.clearCart)
	router.POST("/cart/items", ch.addItem)
	router.PUT("/cart/items/:itemID", ch.updateItem)
	router.DELETE("/cart/items/:itemID", ch.removeItem)

	qh := &quoteHandler{svc: deps.QuoteSvc}
	router.POST("/quote", qh.submit)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = origins
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "X-User-Id"}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowOrigins = nil
			cfg.AllowAllOrigins = true
			break
		}
	}
	return cfg
}
