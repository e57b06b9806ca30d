package handler

import (
	"net/http"

	"github.com/yNatanzinn/SalesTrackPro/internal/store"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	Store *store.Store
}

func (h *AnalyticsHandler) Stats(c *gin.Context) {
	start, end := parseWindow(c)
	stats, err := h.Store.GetSalesStats(vendorID(c), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
