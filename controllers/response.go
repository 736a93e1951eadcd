package controllers

import (
	"errors"

	"medicine-shop/models"

	"github.com/gin-gonic/gin"
)

// respondError translates service errors into the HTTP error shape.
// Unknown errors become a generic 500 so internals never leak.
func respondError(c *gin.Context, err error) {
	status := 500
	message := "Server Error"

	switch {
	case errors.Is(err, models.ErrMedicineNotFound),
		errors.Is(err, models.ErrCartNotFound),
		errors.Is(err, models.ErrItemNotFound),
		errors.Is(err, models.ErrOrderNotFound),
		errors.Is(err, models.ErrUserNotFound):
		status = 404
		message = err.Error()
	case errors.Is(err, models.ErrInsufficientStock),
		errors.Is(err, models.ErrEmptyOrder),
		errors.Is(err, models.ErrNegativePrice),
		errors.Is(err, models.ErrNegativeStock),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidCategory),
		errors.Is(err, models.ErrInvalidExpiryDate),
		errors.Is(err, models.ErrEmailTaken):
		status = 400
		message = err.Error()
	case errors.Is(err, models.ErrForbidden):
		status = 403
		message = err.Error()
	}

	c.JSON(status, gin.H{"success": false, "message": message})
}

func respondValidationError(c *gin.Context, err error) {
	c.JSON(400, gin.H{
		"success": false,
		"message": "Validation failed",
		"errors":  []string{err.Error()},
	})
}
