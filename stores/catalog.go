package stores

import (
	"errors"

	"gorm.io/gorm"

	"github.com/foodexpress/food-ordering-app/models"
)

// CatalogStore owns restaurants and their nested dish lists. There are no
// update or delete operations: restaurants only grow by appending dishes.
type CatalogStore interface {
	ListRestaurants() ([]models.Restaurant, error)
	GetRestaurant(id string) (*models.Restaurant, error)
	AddRestaurant(restaurant *models.Restaurant) error
	AddDish(restaurantID string, dish *models.Dish) error
}

type GormCatalogStore struct {
	DB *gorm.DB
}

func NewGormCatalogStore(db *gorm.DB) *GormCatalogStore {
	return &GormCatalogStore{DB: db}
}

// ListRestaurants returns every restaurant in insertion order, dishes included.
func (s *GormCatalogStore) ListRestaurants() ([]models.Restaurant, error) {
	restaurants := []models.Restaurant{}
	err := s.DB.
		Preload("Dishes", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("dishes.seq ASC")
		}).
		Order("restaurants.seq ASC").
		Find(&restaurants).Error
	if err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *GormCatalogStore) GetRestaurant(id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.DB.
		Preload("Dishes", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("dishes.seq ASC")
		}).
		First(&restaurant, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// AddRestaurant appends a new restaurant. Rating starts at zero and the dish
// list starts empty regardless of what the caller filled in.
func (s *GormCatalogStore) AddRestaurant(restaurant *models.Restaurant) error {
	restaurant.ID = ""
	restaurant.Rating = 0
	restaurant.Dishes = []models.Dish{}
	return s.DB.Create(restaurant).Error
}

// AddDish appends a dish to an existing restaurant. A missing restaurant id
// reports ErrNotFound and mutates nothing.
func (s *GormCatalogStore) AddDish(restaurantID string, dish *models.Dish) error {
	var restaurant models.Restaurant
	err := s.DB.First(&restaurant, "id = ?", restaurantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	dish.ID = ""
	dish.RestaurantID = restaurant.ID
	return s.DB.Create(dish).Error
}
