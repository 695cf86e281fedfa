package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(zerolog.Nop(), nil, Deps{CartSvc: &stubCartService{}, QuoteSvc: &stubQuoteService{}}, []string{"*"})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzWithoutDB(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(zerolog.Nop(), nil, Deps{CartSvc: &stubCartService{}, QuoteSvc: &stubQuoteService{}}, []string{"*"})

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRequestIDEchoed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(zerolog.Nop(), nil, Deps{CartSvc: &stubCartService{}, QuoteSvc: &stubQuoteService{}}, []string{"*"})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, "req-123", rec.Header().Get("X-Request-Id"))
}

func TestRequestIDGenerated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(zerolog.Nop(), nil, Deps{CartSvc: &stubCartService{}, QuoteSvc: &stubQuoteService{}}, []string{"*"})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestUnknownRouteIs404(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := buildRouter(zerolog.Nop(), nil, Deps{CartSvc: &stubCartService{}, QuoteSvc: &stubQuoteService{}}, []string{"*"})

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
