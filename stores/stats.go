package stores

import (
	"gorm.io/gorm"

	"github.com/foodexpress/food-ordering-app/models"
)

// StatsStore derives the admin dashboard summary from live store contents.
type StatsStore interface {
	Stats() (*models.AdminStats, error)
}

type GormStatsStore struct {
	DB *gorm.DB
}

func NewGormStatsStore(db *gorm.DB) *GormStatsStore {
	return &GormStatsStore{DB: db}
}

func (s *GormStatsStore) Stats() (*models.AdminStats, error) {
	var stats models.AdminStats

	if err := s.DB.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Row().Scan(&stats.TotalRevenue); err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Restaurant{}).Count(&stats.ActiveRestaurants).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
