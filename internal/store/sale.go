package store

import (
	"errors"
	"time"

	"github.com/yNatanzinn/SalesTrackPro/internal/models"

	"gorm.io/gorm"
)

// SaleDraft is the caller's intent for a new sale. The total is checked
// against the line items server-side, never trusted.
type SaleDraft struct {
	CustomerID    *string
	CustomerName  string
	Total         float64
	PaymentMethod *string
	IsPaid        bool
}

// SaleItemDraft snapshots product name and price as sent by the caller.
type SaleItemDraft struct {
	ProductID    string
	ProductName  string
	ProductPrice float64
	Quantity     int
	Subtotal     float64
}

// CreateSale persists the sale row and all its line items in a single
// transaction. The status is derived from the draft's paid flag; a sale
// is never persisted without its items.
func (s *Store) CreateSale(vendorID string, draft SaleDraft, items []SaleItemDraft) (*models.Sale, error) {
	if len(items) == 0 {
		return nil, ErrNoLineItems
	}

	var sum float64
	for _, it := range items {
		sum += it.Subtotal
	}
	if cents(sum) != cents(draft.Total) {
		return nil, ErrTotalMismatch
	}

	status := models.StatusPending
	if draft.IsPaid {
		status = models.StatusPaid
	}

	customerID := draft.CustomerID
	if customerID != nil && *customerID == "" {
		customerID = nil
	}

	sale := models.Sale{
		VendorID:      vendorID,
		CustomerID:    customerID,
		CustomerName:  draft.CustomerName,
		Total:         draft.Total,
		PaymentStatus: status,
		PaymentMethod: draft.PaymentMethod,
		IsPaid:        draft.IsPaid,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}
		for _, it := range items {
			item := models.SaleItem{
				SaleID:       sale.ID,
				ProductID:    it.ProductID,
				ProductName:  it.ProductName,
				ProductPrice: it.ProductPrice,
				Quantity:     it.Quantity,
				Subtotal:     it.Subtotal,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetSale(sale.ID, vendorID)
}

func (s *Store) GetSale(id, vendorID string) (*models.Sale, error) {
	var sale models.Sale
	err := s.hydrated().Where("id = ? AND vendor_id = ?", id, vendorID).First(&sale).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// GetSales lists the vendor's sales newest-first, optionally windowed by
// creation time (inclusive bounds, both ends required).
func (s *Store) GetSales(vendorID string, start, end *time.Time) ([]models.Sale, error) {
	sales := []models.Sale{}
	q := s.hydrated().Where("vendor_id = ?", vendorID).Order("created_at desc")
	if start != nil && end != nil {
		q = q.Where("created_at BETWEEN ? AND ?", *start, *end)
	}
	err := q.Find(&sales).Error
	return sales, err
}

// GetPendingSales lists unpaid and partially paid sales, newest-first.
func (s *Store) GetPendingSales(vendorID string) ([]models.Sale, error) {
	sales := []models.Sale{}
	err := s.hydrated().Where("vendor_id = ? AND is_paid = ?", vendorID, false).
		Order("created_at desc").Find(&sales).Error
	return sales, err
}

// UpdateSaleStatus is the administrative override behind "mark as paid".
// The paid flag is derived from the status so the two can never drift.
func (s *Store) UpdateSaleStatus(id, vendorID, status string, method *string) (*models.Sale, error) {
	changes := map[string]interface{}{
		"payment_status": status,
		"is_paid":        status == models.StatusPaid,
		"updated_at":     time.Now(),
	}
	if method != nil {
		changes["payment_method"] = *method
	}

	res := s.db.Model(&models.Sale{}).Where("id = ? AND vendor_id = ?", id, vendorID).Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetSale(id, vendorID)
}

// DeleteSale removes the sale's payments, then its items, then the sale
// row itself, all in one transaction. Returns false when the sale does
// not exist or belongs to another vendor.
func (s *Store) DeleteSale(id, vendorID string) (bool, error) {
	deleted := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var sale models.Sale
		if err := tx.Where("id = ? AND vendor_id = ?", id, vendorID).First(&sale).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Where("sale_id = ?", sale.ID).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("sale_id = ?", sale.ID).Delete(&models.SaleItem{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&sale).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}

func (s *Store) hydrated() *gorm.DB {
	return s.db.
		Preload("Customer").
		Preload("Items").
		Preload("Items.Product").
		Preload("Payments")
}
