package handler

import (
	"errors"
	"net/http"

	"github.com/yNatanzinn/SalesTrackPro/internal/store"

	"github.com/gin-gonic/gin"
)

type SaleHandler struct {
	Store *store.Store
}

func (h *SaleHandler) List(c *gin.Context) {
	start, end := parseWindow(c)
	sales, err := h.Store.GetSales(vendorID(c), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
		return
	}
	c.JSON(http.StatusOK, sales)
}

func (h *SaleHandler) ListPending(c *gin.Context) {
	sales, err := h.Store.GetPendingSales(vendorID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending sales"})
		return
	}
	c.JSON(http.StatusOK, sales)
}

type SaleItemRequest struct {
	ProductID    string  `json:"product_id" binding:"required"`
	ProductName  string  `json:"product_name" binding:"required"`
	ProductPrice float64 `json:"product_price" binding:"required,gt=0"`
	Quantity     int     `json:"quantity" binding:"required,gte=1"`
	Subtotal     float64 `json:"subtotal" binding:"required,gt=0"`
}

type SaleDraftRequest struct {
	CustomerID    *string `json:"customer_id"`
	CustomerName  string  `json:"customer_name"`
	Total         float64 `json:"total" binding:"required,gt=0"`
	PaymentMethod *string `json:"payment_method" binding:"omitempty,oneof=pix credit debit cash"`
	IsPaid        bool    `json:"is_paid"`
}

type CreateSaleRequest struct {
	Sale  SaleDraftRequest  `json:"sale" binding:"required"`
	Items []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (h *SaleHandler) Create(c *gin.Context) {
	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale data"})
		return
	}

	items := make([]store.SaleItemDraft, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, store.SaleItemDraft{
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			ProductPrice: it.ProductPrice,
			Quantity:     it.Quantity,
			Subtotal:     it.Subtotal,
		})
	}

	sale, err := h.Store.CreateSale(vendorID(c), store.SaleDraft{
		CustomerID:    req.Sale.CustomerID,
		CustomerName:  req.Sale.CustomerName,
		Total:         req.Sale.Total,
		PaymentMethod: req.Sale.PaymentMethod,
		IsPaid:        req.Sale.IsPaid,
	}, items)
	if err != nil {
		if errors.Is(err, store.ErrTotalMismatch) || errors.Is(err, store.ErrNoLineItems) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale data"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sale"})
		return
	}
	c.JSON(http.StatusCreated, sale)
}

type UpdateSaleStatusRequest struct {
	PaymentStatus string  `json:"payment_status" binding:"required,oneof=pending partial paid"`
	PaymentMethod *string `json:"payment_method" binding:"omitempty,oneof=pix credit debit cash"`
}

func (h *SaleHandler) UpdateStatus(c *gin.Context) {
	var req UpdateSaleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status data"})
		return
	}

	sale, err := h.Store.UpdateSaleStatus(c.Param("id"), vendorID(c), req.PaymentStatus, req.PaymentMethod)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sale status"})
		return
	}
	c.JSON(http.StatusOK, sale)
}

func (h *SaleHandler) Delete(c *gin.Context) {
	ok, err := h.Store.DeleteSale(c.Param("id"), vendorID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sale"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
