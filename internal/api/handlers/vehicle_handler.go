package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"insurance/internal/services"
)

// VehicleHandler groups the vehicle registry endpoints.
type VehicleHandler struct {
	quoteService *services.QuoteService
}

func NewVehicleHandler(quoteService *services.QuoteService) *VehicleHandler {
	return &VehicleHandler{quoteService: quoteService}
}

// RegisterVehicleRequest is the JSON body for POST /vehicles. Binding only
// checks presence; the domain constructors own the real rules.
type RegisterVehicleRequest struct {
	Kind  string `json:"kind" binding:"required"`
	Make  string `json:"make" binding:"required"`
	Model string `json:"model" binding:"required"`
	Year  int    `json:"year" binding:"required"`
}

// Register handles POST /vehicles.
func (h *VehicleHandler) Register(c *gin.Context) {
	var req RegisterVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.quoteService.RegisterVehicle(c.Request.Context(), services.VehicleSpec{
		Kind:  req.Kind,
		Make:  req.Make,
		Model: req.Model,
		Year:  req.Year,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Get handles GET /vehicles/:id.
func (h *VehicleHandler) Get(c *gin.Context) {
	resp, err := h.quoteService.GetVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// List handles GET /vehicles?kind=car.
func (h *VehicleHandler) List(c *gin.Context) {
	resp, err := h.quoteService.ListVehicles(c.Request.Context(), c.Query("kind"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicles": resp})
}

// Delete handles DELETE /vehicles/:id.
func (h *VehicleHandler) Delete(c *gin.Context) {
	if err := h.quoteService.DeleteVehicle(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Kinds handles GET /kinds.
func (h *VehicleHandler) Kinds(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"kinds": h.quoteService.Kinds()})
}
