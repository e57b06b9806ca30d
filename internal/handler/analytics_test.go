package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsStats(t *testing.T) {
	r := newTestServer(t)
	cookie := registerVendor(t, r, "alice")

	// One paid sale, one pending sale with a partial payment.
	w := doJSON(t, r, http.MethodPost, "/api/sales", cookie, createSaleBody(25.00, false))
	require.Equal(t, http.StatusCreated, w.Code)
	var sale map[string]interface{}
	decode(t, w, &sale)
	saleID := sale["id"].(string)
	w = doJSON(t, r, http.MethodPost, "/api/payments", cookie, gin.H{
		"sale_id": saleID, "amount": 25.00, "payment_method": "cash",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/sales", cookie, createSaleBody(25.00, false))
	require.Equal(t, http.StatusCreated, w.Code)
	decode(t, w, &sale)
	w = doJSON(t, r, http.MethodPost, "/api/payments", cookie, gin.H{
		"sale_id": sale["id"].(string), "amount": 10.00, "payment_method": "pix",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/analytics/stats", cookie, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalSales     float64 `json:"total_sales"`
		PaidSales      float64 `json:"paid_sales"`
		PendingSales   float64 `json:"pending_sales"`
		SalesCount     int64   `json:"sales_count"`
		PaymentMethods []struct {
			Method string  `json:"method"`
			Total  float64 `json:"total"`
		} `json:"payment_methods"`
		DailySales []struct {
			Date  string  `json:"date"`
			Total float64 `json:"total"`
		} `json:"daily_sales"`
		ProductSales []struct {
			ProductName string  `json:"product_name"`
			Quantity    int64   `json:"quantity"`
			Total       float64 `json:"total"`
		} `json:"product_sales"`
	}
	decode(t, w, &stats)

	// The sale total is counted once regardless of how many payments it
	// received, and the partial sale's method stays out of the breakdown.
	assert.Equal(t, 50.00, stats.TotalSales)
	assert.Equal(t, 25.00, stats.PaidSales)
	assert.Equal(t, 25.00, stats.PendingSales)
	assert.Equal(t, int64(2), stats.SalesCount)
	assert.Equal(t, stats.TotalSales, stats.PaidSales+stats.PendingSales)

	require.Len(t, stats.PaymentMethods, 1)
	assert.Equal(t, "cash", stats.PaymentMethods[0].Method)
	assert.Equal(t, 25.00, stats.PaymentMethods[0].Total)

	require.Len(t, stats.DailySales, 1)
	assert.Equal(t, 50.00, stats.DailySales[0].Total)

	require.Len(t, stats.ProductSales, 2)
	assert.Equal(t, "Coffee", stats.ProductSales[0].ProductName)
	assert.Equal(t, int64(4), stats.ProductSales[0].Quantity)
}
