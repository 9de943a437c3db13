package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlaceholderRestaurantImage is served when an admin creates a restaurant
// without uploading a photo.
const PlaceholderRestaurantImage = "/api/placeholder/300/200"

type Restaurant struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name         string    `gorm:"type:varchar(255)" json:"name"`
	Cuisine      string    `gorm:"type:varchar(100)" json:"cuisine"`
	Rating       float64   `gorm:"type:decimal(3,1);default:0" json:"rating"`
	DeliveryTime string    `gorm:"type:varchar(50)" json:"deliveryTime"`
	Price        string    `gorm:"type:varchar(50)" json:"price"`
	Image        string    `gorm:"type:varchar(255)" json:"image"`
	Dishes       []Dish    `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"dishes"`
	Seq          int64     `gorm:"index" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"-"`
	UpdatedAt    time.Time `gorm:"not null" json:"-"`
}

// BeforeCreate assigns a fresh identifier and the next insertion sequence
// number. Timestamps alone cannot order two appends landing in the same
// datetime tick. Seed records keep their fixed ids.
func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Seq == 0 {
		var maxSeq int64
		if err := tx.Model(&Restaurant{}).Select("COALESCE(MAX(seq), 0)").Row().Scan(&maxSeq); err != nil {
			return err
		}
		r.Seq = maxSeq + 1
	}
	return nil
}

// AfterFind keeps the dish list JSON-friendly: clients expect [] instead of null.
func (r *Restaurant) AfterFind(tx *gorm.DB) error {
	if r.Dishes == nil {
		r.Dishes = []Dish{}
	}
	return nil
}
