package stores

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foodexpress/food-ordering-app/models"
)

// OrderStore owns placed orders. Orders are append-only: once stored they
// are never mutated or deleted.
type OrderStore interface {
	PlaceOrder(order *models.Order) error
	GetOrder(id string) (*models.Order, error)
}

type GormOrderStore struct {
	DB *gorm.DB
}

func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{DB: db}
}

// PlaceOrder stamps the server-owned fields (id, status, orderTime) and
// appends the order. Items and total stay exactly as submitted.
func (s *GormOrderStore) PlaceOrder(order *models.Order) error {
	order.ID = uuid.NewString()
	order.Status = models.StatusPlaced
	order.OrderTime = time.Now()
	if order.Items == nil {
		order.Items = models.OrderItemList{}
	}
	return s.DB.Create(order).Error
}

func (s *GormOrderStore) GetOrder(id string) (*models.Order, error) {
	var order models.Order
	err := s.DB.First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}
