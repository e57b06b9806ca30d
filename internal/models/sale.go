package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment status lifecycle: pending -> partial -> paid.
const (
	StatusPending = "pending"
	StatusPartial = "partial"
	StatusPaid    = "paid"
)

const (
	MethodPix    = "pix"
	MethodCredit = "credit"
	MethodDebit  = "debit"
	MethodCash   = "cash"
)

// Sale is one checkout event. Total is fixed at creation time from the
// line item subtotals and never recomputed afterwards. IsPaid must be
// true exactly when PaymentStatus is "paid".
type Sale struct {
	ID            string     `gorm:"primaryKey;size:36" json:"id"`
	VendorID      string     `gorm:"size:36;index;not null" json:"vendor_id"`
	CustomerID    *string    `gorm:"size:36" json:"customer_id"`
	Customer      *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	CustomerName  string     `gorm:"size:100" json:"customer_name"` // anonymous / ad-hoc buyers
	Total         float64    `gorm:"type:decimal(10,2);not null" json:"total"`
	PaymentStatus string     `gorm:"size:20;not null;default:pending" json:"payment_status"`
	PaymentMethod *string    `gorm:"size:20" json:"payment_method"`
	IsPaid        bool       `gorm:"default:false" json:"is_paid"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	Items         []SaleItem `gorm:"foreignKey:SaleID" json:"items"`
	Payments      []Payment  `gorm:"foreignKey:SaleID" json:"payments"`
}

// SaleItem snapshots the product name and price at the moment of sale,
// so later product edits or deletion do not rewrite history.
type SaleItem struct {
	ID           string   `gorm:"primaryKey;size:36" json:"id"`
	SaleID       string   `gorm:"size:36;index;not null" json:"sale_id"`
	ProductID    string   `gorm:"size:36;not null" json:"product_id"`
	Product      *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	ProductName  string   `gorm:"size:150;not null" json:"product_name"`
	ProductPrice float64  `gorm:"type:decimal(10,2);not null" json:"product_price"`
	Quantity     int      `gorm:"not null;default:1" json:"quantity"`
	Subtotal     float64  `gorm:"type:decimal(10,2);not null" json:"subtotal"`
}

// Payment is append-only; rows are only ever removed by cascading sale
// deletion.
type Payment struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	SaleID        string    `gorm:"size:36;index;not null" json:"sale_id"`
	Amount        float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod string    `gorm:"size:20;not null" json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (i *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
