package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlaceholderDishImage is served when a dish is added without a photo.
const PlaceholderDishImage = "/api/placeholder/150/150"

// Dish belongs to exactly one restaurant and is immutable after creation.
type Dish struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	RestaurantID string    `gorm:"type:varchar(36);not null;index" json:"-"`
	Name         string    `gorm:"type:varchar(255)" json:"name"`
	Price        int       `gorm:"not null" json:"price"`
	Description  string    `gorm:"type:text" json:"description"`
	Category     string    `gorm:"type:varchar(100)" json:"category"`
	Image        string    `gorm:"type:varchar(255)" json:"image"`
	Seq          int64     `gorm:"index" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"-"`
	UpdatedAt    time.Time `gorm:"not null" json:"-"`
}

func (d *Dish) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.Seq == 0 {
		var maxSeq int64
		if err := tx.Model(&Dish{}).Select("COALESCE(MAX(seq), 0)").Row().Scan(&maxSeq); err != nil {
			return err
		}
		d.Seq = maxSeq + 1
	}
	return nil
}
