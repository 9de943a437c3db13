package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StatusPlaced is the only order status: orders are never mutated after
// creation, so no transition logic exists.
const StatusPlaced = "placed"

// OrderItem is a dish snapshot submitted by the client as one cart line.
// CartID is the client-generated line identifier and is kept only so the
// stored payload matches what was submitted.
type OrderItem struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Price       int    `json:"price"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Image       string `json:"image,omitempty"`
	CartID      int64  `json:"cartId,omitempty"`
}

// OrderItemList is stored as a JSON text column so the submitted line items
// round-trip verbatim.
type OrderItemList []OrderItem

func (l OrderItemList) Value() (driver.Value, error) {
	if l == nil {
		l = OrderItemList{}
	}
	return json.Marshal(l)
}

func (l *OrderItemList) Scan(value interface{}) error {
	if value == nil {
		*l = OrderItemList{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into OrderItemList", value)
	}
	if len(raw) == 0 {
		*l = OrderItemList{}
		return nil
	}
	return json.Unmarshal(raw, l)
}

// Order records a submitted cart as-is. Items and total are whatever the
// client sent; the store never recomputes them against the catalog.
type Order struct {
	ID              string        `gorm:"primaryKey;type:varchar(36)" json:"id"`
	RestaurantID    string        `gorm:"type:varchar(36)" json:"restaurantId"`
	RestaurantName  string        `gorm:"type:varchar(255)" json:"restaurantName"`
	Items           OrderItemList `gorm:"type:text" json:"items"`
	Total           float64       `gorm:"type:decimal(10,2);not null;default:0.00" json:"total"`
	DeliveryAddress string        `gorm:"type:varchar(255)" json:"deliveryAddress"`
	Status          string        `gorm:"type:varchar(20);not null" json:"status"`
	OrderTime       time.Time     `gorm:"not null" json:"orderTime"`
}
