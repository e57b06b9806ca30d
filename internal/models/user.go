package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a vendor account. Every product, customer and sale in the
// system belongs to exactly one vendor.
type User struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Username    string    `gorm:"size:50;unique;not null" json:"username"`
	Password    string    `gorm:"size:255;not null" json:"-"`
	DisplayName string    `gorm:"size:100;not null" json:"display_name"`
	IsAdmin     bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
