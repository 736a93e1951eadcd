package controllers

import (
	"strconv"

	"medicine-shop/models"
	"medicine-shop/repositories"
	"medicine-shop/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController() *CartController {
	return &CartController{
		cartService: services.NewCartService(
			repositories.NewCartRepository(),
			repositories.NewMedicineRepository(),
		),
	}
}

// GetCart godoc
// @Summary Get cart
// @Description Get the user's cart, creating an empty one on first access
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	cart, err := ctrl.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "data": cart})
}

// AddItem godoc
// @Summary Add item to cart
// @Description Add a medicine to the cart, merging with an existing line
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Item"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	cart, err := ctrl.cartService.AddItem(c.Request.Context(), userID, req.MedicineID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "data": cart})
}

// UpdateItem godoc
// @Summary Update cart item quantity
// @Description Set the quantity of a cart line, re-checking live stock
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param itemId path int true "Cart item ID"
// @Param request body models.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/{itemId} [put]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil || itemID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid item ID"})
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	cart, err := ctrl.cartService.UpdateItem(c.Request.Context(), userID, itemID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "data": cart})
}

// RemoveItem godoc
// @Summary Remove cart item
// @Description Remove a line from the cart; removing an unknown item is a no-op
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param itemId path int true "Cart item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/{itemId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil || itemID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid item ID"})
		return
	}

	cart, err := ctrl.cartService.RemoveItem(c.Request.Context(), userID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "data": cart})
}

// ClearCart godoc
// @Summary Clear cart
// @Description Empty the cart and reset its total to zero
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	cart, err := ctrl.cartService.ClearCart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "data": cart})
}
