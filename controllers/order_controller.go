package controllers

import (
	"log"
	"strconv"

	"medicine-shop/models"
	"medicine-shop/repositories"
	"medicine-shop/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController() *OrderController {
	return &OrderController{
		orderService: services.NewOrderService(repositories.NewOrderRepository()),
	}
}

// CreateOrder godoc
// @Summary Create order
// @Description Create an order from the submitted cart snapshot
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateOrderRequest true "Order"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	order, err := ctrl.orderService.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	// Confirmation mail is best-effort; checkout never fails on it.
	if email := c.GetString("user_email"); email != "" {
		if mailer, err := models.NewEmailService(); err == nil {
			if err := mailer.SendOrderConfirmationEmail(email, order.OrderNumber, order.TotalPrice); err != nil {
				log.Printf("order confirmation email failed: %v", err)
			}
		}
	}

	c.JSON(201, gin.H{"success": true, "message": "Order created successfully", "data": order})
}

// GetMyOrders godoc
// @Summary List my orders
// @Description List the authenticated user's orders, newest first
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.ListResponse
// @Router /orders/myorders [get]
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	userID := c.GetInt("user_id")

	orders, err := ctrl.orderService.MyOrders(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.ListResponse{Success: true, Count: len(orders), Data: orders})
}

// GetAllOrders godoc
// @Summary List all orders
// @Description List every order in the system (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.ListResponse
// @Router /orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := ctrl.orderService.AllOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, models.ListResponse{Success: true, Count: len(orders), Data: orders})
}

// GetOrder godoc
// @Summary Get order by ID
// @Description Get an order; owners see their own, admins see any
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	userID := c.GetInt("user_id")
	isAdmin := c.GetString("user_role") == "admin"

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil || orderID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	order, err := ctrl.orderService.Get(c.Request.Context(), orderID, userID, isAdmin)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "data": order})
}

// PayOrder godoc
// @Summary Mark order paid
// @Description Record a payment confirmation for the user's own order
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.PayOrderRequest true "Payment result"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id}/pay [put]
func (ctrl *OrderController) PayOrder(c *gin.Context) {
	userID := c.GetInt("user_id")

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil || orderID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	var req models.PayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	result := models.PaymentResult{
		ID:           req.ID,
		Status:       req.Status,
		UpdateTime:   req.UpdateTime,
		EmailAddress: req.EmailAddress,
	}

	order, err := ctrl.orderService.Pay(c.Request.Context(), orderID, userID, result)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order marked as paid", "data": order})
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Set the fulfillment status of an order (Admin)
// @Tags Admin - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id}/status [put]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil || orderID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	order, err := ctrl.orderService.UpdateStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order status updated", "data": order})
}
