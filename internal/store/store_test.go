package store

import (
	"testing"

	"github.com/yNatanzinn/SalesTrackPro/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	// Each pooled connection would otherwise see its own empty
	// in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Customer{},
		&models.Sale{},
		&models.SaleItem{},
		&models.Payment{},
	))
	return New(db)
}

func seedVendor(t *testing.T, s *Store, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Password: "hash", DisplayName: username}
	require.NoError(t, s.CreateUser(user))
	return user
}

// twoItemCart is the standard fixture: 2 x 10.00 + 1 x 5.00 = 25.00.
func twoItemCart() []SaleItemDraft {
	return []SaleItemDraft{
		{ProductID: "p1", ProductName: "Coffee", ProductPrice: 10.00, Quantity: 2, Subtotal: 20.00},
		{ProductID: "p2", ProductName: "Cake", ProductPrice: 5.00, Quantity: 1, Subtotal: 5.00},
	}
}
