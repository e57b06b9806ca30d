package store

import (
	"errors"
	"time"

	"github.com/yNatanzinn/SalesTrackPro/internal/models"

	"gorm.io/gorm"
)

func (s *Store) GetProducts(vendorID string) ([]models.Product, error) {
	products := []models.Product{}
	err := s.db.Where("vendor_id = ?", vendorID).Order("created_at desc").Find(&products).Error
	return products, err
}

func (s *Store) GetProduct(id, vendorID string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Where("id = ? AND vendor_id = ?", id, vendorID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *Store) CreateProduct(product *models.Product, vendorID string) error {
	product.VendorID = vendorID
	return s.db.Create(product).Error
}

// ProductUpdate carries the mutable product fields; nil means "leave
// unchanged".
type ProductUpdate struct {
	Name  *string
	Price *float64
	Stock *int
}

func (s *Store) UpdateProduct(id, vendorID string, upd ProductUpdate) (*models.Product, error) {
	changes := map[string]interface{}{"updated_at": time.Now()}
	if upd.Name != nil {
		changes["name"] = *upd.Name
	}
	if upd.Price != nil {
		changes["price"] = *upd.Price
	}
	if upd.Stock != nil {
		changes["stock"] = *upd.Stock
	}

	res := s.db.Model(&models.Product{}).Where("id = ? AND vendor_id = ?", id, vendorID).Updates(changes)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetProduct(id, vendorID)
}

func (s *Store) DeleteProduct(id, vendorID string) (bool, error) {
	res := s.db.Where("id = ? AND vendor_id = ?", id, vendorID).Delete(&models.Product{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
