package store

import (
	"database/sql"
	"sort"
	"time"

	"github.com/yNatanzinn/SalesTrackPro/internal/models"

	"gorm.io/gorm"
)

type MethodTotal struct {
	Method string  `json:"method"`
	Total  float64 `json:"total"`
}

type DailyTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

type ProductTotal struct {
	ProductName string  `json:"product_name"`
	Quantity    int64   `json:"quantity"`
	Total       float64 `json:"total"`
}

type SalesStats struct {
	TotalSales     float64        `json:"total_sales"`
	PaidSales      float64        `json:"paid_sales"`
	PendingSales   float64        `json:"pending_sales"`
	SalesCount     int64          `json:"sales_count"`
	PaymentMethods []MethodTotal  `json:"payment_methods"`
	DailySales     []DailyTotal   `json:"daily_sales"`
	ProductSales   []ProductTotal `json:"product_sales"`
}

// GetSalesStats derives the vendor's summary figures over an optional
// creation-time window. Pure read-side aggregation: all sums default to
// zero and all slices are empty rather than nil when nothing matches.
func (s *Store) GetSalesStats(vendorID string, start, end *time.Time) (*SalesStats, error) {
	stats := &SalesStats{
		PaymentMethods: []MethodTotal{},
		DailySales:     []DailyTotal{},
		ProductSales:   []ProductTotal{},
	}

	scoped := func(q *gorm.DB) *gorm.DB {
		q = q.Where("sales.vendor_id = ?", vendorID)
		if start != nil && end != nil {
			q = q.Where("sales.created_at BETWEEN ? AND ?", *start, *end)
		}
		return q
	}

	var totals struct {
		TotalSales   float64
		PaidSales    float64
		PendingSales float64
		SalesCount   int64
	}
	err := scoped(s.db.Model(&models.Sale{})).
		Select(`COALESCE(SUM(total), 0) AS total_sales,
			COALESCE(SUM(CASE WHEN is_paid THEN total ELSE 0 END), 0) AS paid_sales,
			COALESCE(SUM(CASE WHEN is_paid THEN 0 ELSE total END), 0) AS pending_sales,
			COUNT(*) AS sales_count`).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	stats.TotalSales = totals.TotalSales
	stats.PaidSales = totals.PaidSales
	stats.PendingSales = totals.PendingSales
	stats.SalesCount = totals.SalesCount

	// Payment method breakdown over settled sales only; pending sales
	// have no settled method yet.
	rows, err := scoped(s.db.Model(&models.Sale{})).
		Where("is_paid = ?", true).
		Select("payment_method, COALESCE(SUM(total), 0)").
		Group("payment_method").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var method sql.NullString
		var total float64
		if err := rows.Scan(&method, &total); err != nil {
			return nil, err
		}
		name := "unknown"
		if method.Valid && method.String != "" {
			name = method.String
		}
		stats.PaymentMethods = append(stats.PaymentMethods, MethodTotal{Method: name, Total: total})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Daily series is grouped in Go so date truncation does not depend
	// on the SQL dialect.
	var saleRows []struct {
		CreatedAt time.Time
		Total     float64
	}
	if err := scoped(s.db.Model(&models.Sale{})).Select("created_at, total").Scan(&saleRows).Error; err != nil {
		return nil, err
	}
	byDay := map[string]float64{}
	for _, r := range saleRows {
		byDay[r.CreatedAt.Format("2006-01-02")] += r.Total
	}
	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		stats.DailySales = append(stats.DailySales, DailyTotal{Date: day, Total: byDay[day]})
	}

	// Product ranking from line items, joined to sales for scope,
	// grouped by the snapshotted name.
	productRows, err := scoped(s.db.Model(&models.SaleItem{}).
		Joins("JOIN sales ON sales.id = sale_items.sale_id")).
		Select(`sale_items.product_name,
			COALESCE(SUM(sale_items.quantity), 0),
			COALESCE(SUM(sale_items.subtotal), 0)`).
		Group("sale_items.product_name").
		Order("SUM(sale_items.quantity) DESC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer productRows.Close()
	for productRows.Next() {
		var pt ProductTotal
		if err := productRows.Scan(&pt.ProductName, &pt.Quantity, &pt.Total); err != nil {
			return nil, err
		}
		stats.ProductSales = append(stats.ProductSales, pt)
	}
	if err := productRows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
