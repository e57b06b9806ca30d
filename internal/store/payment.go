package store

import (
	"errors"
	"time"

	"github.com/yNatanzinn/SalesTrackPro/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AddPayment appends a payment and reconciles the sale's status in the
// same transaction, holding a row lock on the sale so concurrent
// payments against it serialize instead of racing the recompute.
//
// Cumulative amount >= total flips the sale to paid; anything positive
// below the total leaves it partial. In both cases the sale's method is
// set to the method of the payment just recorded (last payment wins).
func (s *Store) AddPayment(vendorID, saleID string, amount float64, method string) (*models.Payment, error) {
	if cents(amount) <= 0 {
		return nil, ErrInvalidAmount
	}

	var payment models.Payment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		q := tx.Where("id = ? AND vendor_id = ?", saleID, vendorID)
		if tx.Dialector.Name() == "postgres" {
			// SQLite has no SELECT ... FOR UPDATE; its single-writer
			// lock already serializes the transaction.
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var sale models.Sale
		if err := q.First(&sale).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		payment = models.Payment{
			SaleID:        sale.ID,
			Amount:        amount,
			PaymentMethod: method,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		var totalPaid float64
		if err := tx.Model(&models.Payment{}).Where("sale_id = ?", sale.ID).
			Select("COALESCE(SUM(amount), 0)").Scan(&totalPaid).Error; err != nil {
			return err
		}

		status := models.StatusPartial
		paid := false
		if cents(totalPaid) >= cents(sale.Total) {
			status = models.StatusPaid
			paid = true
		}

		return tx.Model(&models.Sale{}).Where("id = ?", sale.ID).Updates(map[string]interface{}{
			"payment_status": status,
			"is_paid":        paid,
			"payment_method": method,
			"updated_at":     time.Now(),
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *Store) GetSalePayments(saleID string) ([]models.Payment, error) {
	payments := []models.Payment{}
	err := s.db.Where("sale_id = ?", saleID).Order("created_at asc").Find(&payments).Error
	return payments, err
}
