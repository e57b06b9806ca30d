package store

import (
	"testing"
	"time"

	"github.com/yNatanzinn/SalesTrackPro/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStatsFixture(t *testing.T, s *Store, vendorID string) {
	t.Helper()

	cash := models.MethodCash
	pix := models.MethodPix

	// Paid: 25.00 cash (2x Coffee + 1x Cake), 10.00 pix (1x Coffee)
	_, err := s.CreateSale(vendorID, SaleDraft{Total: 25.00, IsPaid: true, PaymentMethod: &cash}, twoItemCart())
	require.NoError(t, err)
	_, err = s.CreateSale(vendorID, SaleDraft{Total: 10.00, IsPaid: true, PaymentMethod: &pix}, []SaleItemDraft{
		{ProductID: "p1", ProductName: "Coffee", ProductPrice: 10.00, Quantity: 1, Subtotal: 10.00},
	})
	require.NoError(t, err)

	// Pending: 40.00 (4x Cake)
	_, err = s.CreateSale(vendorID, SaleDraft{Total: 40.00}, []SaleItemDraft{
		{ProductID: "p2", ProductName: "Cake", ProductPrice: 10.00, Quantity: 4, Subtotal: 40.00},
	})
	require.NoError(t, err)
}

func TestSalesStatsTotals(t *testing.T) {
	s := newTestStore(t)
	vendor := seedVendor(t, s, "alice")
	seedStatsFixture(t, s, vendor.ID)

	stats, err := s.GetSalesStats(vendor.ID, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 75.00, stats.TotalSales)
	assert.Equal(t, 35.00, stats.PaidSales)
	assert.Equal(t, 40.00, stats.PendingSales)
	assert.Equal(t, int64(3), stats.SalesCount)
	assert.Equal(t, stats.TotalSales, stats.PaidSales+stats.PendingSales)
}

func TestSalesStatsPaymentMethodsOnlyFromPaidSales(t *testing.T) {
	s := newTestStore(t)
	vendor := seedVendor(t, s, "alice")
	seedStatsFixture(t, s, vendor.ID)

	stats, err := s.GetSalesStats(vendor.ID, nil, nil)
	require.NoError(t, err)

	var methodSum float64
	byMethod := map[string]float64{}
	for _, m := range stats.PaymentMethods {
		methodSum += m.Total
		byMethod[m.Method] = m.Total
	}
	assert.Equal(t, 25.00, byMethod[models.MethodCash])
	assert.Equal(t, 10.00, byMethod[models.MethodPix])
	assert.LessOrEqual(t, methodSum, stats.PaidSales)
	assert.Equal(t, stats.PaidSales, methodSum) // every paid sale has a method here
}

func TestSalesStatsDailySeries(t *testing.T) {
	s := newTestStore(t)
	vendor := seedVendor(t, s, "alice")
	seedStatsFixture(t, s, vendor.ID)

	// Move the pending sale back a week to get a second bucket.
	var pending models.Sale
	require.NoError(t, s.db.Where("vendor_id = ? AND is_paid = ?", vendor.ID, false).First(&pending).Error)
	lastWeek := time.Now().AddDate(0, 0, -7)
	require.NoError(t, s.db.Model(&models.Sale{}).Where("id = ?", pending.ID).
		Update("created_at", lastWeek).Error)

	stats, err := s.GetSalesStats(vendor.ID, nil, nil)
	require.NoError(t, err)

	require.Len(t, stats.DailySales, 2)
	// Ascending date order: the old bucket comes first.
	assert.Equal(t, lastWeek.Format("2006-01-02"), stats.DailySales[0].Date)
	assert.Equal(t, 40.00, stats.DailySales[0].Total)
	assert.Equal(t, time.Now().Format("2006-01-02"), stats.DailySales[1].Date)
	assert.Equal(t, 35.00, stats.DailySales[1].Total)
}

func TestSalesStatsProductRanking(t *testing.T) {
	s := newTestStore(t)
	vendor := seedVendor(t, s, "alice")
	seedStatsFixture(t, s, vendor.ID)

	stats, err := s.GetSalesStats(vendor.ID, nil, nil)
	require.NoError(t, err)

	// Cake sold 5 units (1 + 4), Coffee sold 3 (2 + 1).
	require.Len(t, stats.ProductSales, 2)
	assert.Equal(t, "Cake", stats.ProductSales[0].ProductName)
	assert.Equal(t, int64(5), stats.ProductSales[0].Quantity)
	assert.Equal(t, 45.00, stats.ProductSales[0].Total)
	assert.Equal(t, "Coffee", stats.ProductSales[1].ProductName)
	assert.Equal(t, int64(3), stats.ProductSales[1].Quantity)
	assert.Equal(t, 30.00, stats.ProductSales[1].Total)
}

func TestSalesStatsWindowExcludesOutsideSales(t *testing.T) {
	s := newTestStore(t)
	vendor := seedVendor(t, s, "alice")
	seedStatsFixture(t, s, vendor.ID)

	var pending models.Sale
	require.NoError(t, s.db.Where("vendor_id = ? AND is_paid = ?", vendor.ID, false).First(&pending).Error)
	require.NoError(t, s.db.Model(&models.Sale{}).Where("id = ?", pending.ID).
		Update("created_at", time.Now().AddDate(0, 0, -7)).Error)

	start := time.Now().AddDate(0, 0, -1)
	end := time.Now().Add(time.Hour)
	stats, err := s.GetSalesStats(vendor.ID, &start, &end)
	require.NoError(t, err)

	assert.Equal(t, 35.00, stats.TotalSales)
	assert.Equal(t, 0.00, stats.PendingSales)
	assert.Equal(t, int64(2), stats.SalesCount)
	// The windowed product ranking loses the 4 cakes of the old sale.
	require.Len(t, stats.ProductSales, 2)
	assert.Equal(t, "Coffee", stats.ProductSales[0].ProductName)
	assert.Equal(t, int64(3), stats.ProductSales[0].Quantity)
}

func TestSalesStatsEmptyScope(t *testing.T) {
	s := newTestStore(t)
	alice := seedVendor(t, s, "alice")
	bob := seedVendor(t, s, "bob")
	seedStatsFixture(t, s, alice.ID)

	stats, err := s.GetSalesStats(bob.ID, nil, nil)
	require.NoError(t, err)

	assert.Zero(t, stats.TotalSales)
	assert.Zero(t, stats.PaidSales)
	assert.Zero(t, stats.PendingSales)
	assert.Zero(t, stats.SalesCount)
	assert.NotNil(t, stats.PaymentMethods)
	assert.NotNil(t, stats.DailySales)
	assert.NotNil(t, stats.ProductSales)
	assert.Empty(t, stats.PaymentMethods)
	assert.Empty(t, stats.DailySales)
	assert.Empty(t, stats.ProductSales)
}
