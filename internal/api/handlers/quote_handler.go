package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"insurance/internal/services"
)

// QuoteHandler serves insurance quotes.
type QuoteHandler struct {
	quoteService *services.QuoteService
}

func NewQuoteHandler(quoteService *services.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// AsOfQuery is the optional ?as_of=YYYY parameter. Zero means "default year".
type AsOfQuery struct {
	AsOf int `form:"as_of" binding:"omitempty,gte=0"`
}

// QuoteVehicle handles GET /vehicles/:id/quote.
func (h *QuoteHandler) QuoteVehicle(c *gin.Context) {
	var q AsOfQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.quoteService.QuoteVehicle(c.Request.Context(), c.Param("id"), q.AsOf)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// QuoteRequest is the JSON body for POST /quote.
type QuoteRequest struct {
	RegisterVehicleRequest
	AsOf int `json:"as_of" binding:"omitempty,gte=0"`
}

// Quote handles POST /quote. Nothing is stored.
func (h *QuoteHandler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.quoteService.Quote(c.Request.Context(), services.QuoteRequest{
		VehicleSpec: services.VehicleSpec{
			Kind:  req.Kind,
			Make:  req.Make,
			Model: req.Model,
			Year:  req.Year,
		},
		AsOfYear: req.AsOf,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
