package handler

import (
	"errors"
	"net/http"

	"github.com/yNatanzinn/SalesTrackPro/internal/store"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	Store *store.Store
}

type CreatePaymentRequest struct {
	SaleID        string  `json:"sale_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" binding:"required,oneof=pix credit debit cash"`
}

// Create appends a payment to a sale; reconciliation of the sale's
// status happens atomically inside the ledger.
func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment data"})
		return
	}

	payment, err := h.Store.AddPayment(vendorID(c), req.SaleID, req.Amount, req.PaymentMethod)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}
		if errors.Is(err, store.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment data"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}
	c.JSON(http.StatusCreated, payment)
}
