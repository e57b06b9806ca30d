package store

import (
	"errors"
	"math"

	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrTotalMismatch = errors.New("sale total does not match line item subtotals")
	ErrNoLineItems   = errors.New("sale requires at least one line item")
	ErrInvalidAmount = errors.New("payment amount must be positive")
)

// Store is the data-access layer. Every read and write is scoped by the
// caller's vendor id; an id belonging to another vendor behaves exactly
// like a missing id.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// cents rounds a monetary value to whole cents so float arithmetic does
// not leak into status decisions.
func cents(v float64) int64 {
	return int64(math.Round(v * 100))
}
