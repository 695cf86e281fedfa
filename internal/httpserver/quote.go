package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	quotesvc "printcart-api/internal/service/quote"
)

type quoteHandler struct {
	svc QuoteService
}

func (h *quoteHandler) submit(c *gin.Context) {
	var in quotesvc.SubmitInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	q, err := h.svc.Submit(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "quote request received", "quoteId": q.ID})
}
