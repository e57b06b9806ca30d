package store

import (
	"github.com/yNatanzinn/SalesTrackPro/internal/models"
)

func (s *Store) GetCustomers(vendorID string) ([]models.Customer, error) {
	customers := []models.Customer{}
	err := s.db.Where("vendor_id = ?", vendorID).Order("name asc").Find(&customers).Error
	return customers, err
}

func (s *Store) CreateCustomer(customer *models.Customer, vendorID string) error {
	customer.VendorID = vendorID
	return s.db.Create(customer).Error
}

// SearchCustomers matches the name substring within the vendor's scope.
func (s *Store) SearchCustomers(query, vendorID string) ([]models.Customer, error) {
	customers := []models.Customer{}
	err := s.db.Where("vendor_id = ? AND name LIKE ?", vendorID, "%"+query+"%").
		Order("name asc").Find(&customers).Error
	return customers, err
}
