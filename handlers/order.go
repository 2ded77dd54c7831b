package handlers

import (
	"errors"
	"net/http"

	"brewvoice/models"
	"brewvoice/services/order"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderHandler exposes the order placement and cancellation endpoints the
// ordering front end calls.
type OrderHandler struct {
	Svc    order.Service
	Logger *zap.Logger
}

func NewOrderHandler(svc order.Service, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{Svc: svc, Logger: logger}
}

// PlaceOrderHandler persists a finalized order.
func (h *OrderHandler) PlaceOrderHandler(c *gin.Context) {
	var req models.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	placed, err := h.Svc.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		var notFound *order.ItemNotFoundError
		switch {
		case errors.Is(err, order.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID and items are required"})
		case errors.As(err, &notFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item '" + notFound.Name + "' not found"})
		default:
			h.Logger.Error("failed to place order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Order placed successfully!",
		"order_id": placed.OrderID,
	})
}

// CancelOrderHandler cancels a placed order by session id.
func (h *OrderHandler) CancelOrderHandler(c *gin.Context) {
	var req models.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Svc.CancelOrder(c.Request.Context(), req.SessionID); err != nil {
		switch {
		case errors.Is(err, order.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID is required"})
		case errors.Is(err, order.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No order found for this session ID"})
		case errors.Is(err, order.ErrNotCancelable):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order cannot be canceled because it's not in 'placed' status."})
		default:
			h.Logger.Error("failed to cancel order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
