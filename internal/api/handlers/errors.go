package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"insurance/internal/domain/validation"
	"insurance/internal/domain/vehicle"
	"insurance/internal/services"
)

// writeError maps domain errors onto HTTP statuses. Anything unrecognised is
// a 500 and is attached to the context for the request logger.
func writeError(c *gin.Context, err error) {
	var (
		ve  *validation.ValidationError
		uke *vehicle.UnknownKindError
		iye *vehicle.InvalidYearError
		ive *vehicle.InvalidVehicleError
	)

	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "field": ve.Field})
	case errors.As(err, &uke):
		c.JSON(http.StatusBadRequest, gin.H{"error": uke.Error()})
	case errors.As(err, &iye):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": iye.Error()})
	case errors.As(err, &ive):
		c.JSON(http.StatusBadRequest, gin.H{"error": ive.Error()})
	case errors.Is(err, services.ErrVehicleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
