package database

import (
	"gorm.io/gorm"

	"github.com/foodexpress/food-ordering-app/models"
)

// SeedCatalog inserts the demo catalog on an empty database so a fresh
// install has something to browse. Seed records keep fixed ids.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := models.Restaurant{
		ID:           "1",
		Name:         "Burger King",
		Cuisine:      "Fast Food",
		Rating:       4.2,
		DeliveryTime: "30-40 mins",
		Price:        "₹200 for one",
		Image:        models.PlaceholderRestaurantImage,
		Seq:          1,
		Dishes: []models.Dish{
			{
				ID:          "101",
				Seq:         1,
				Name:        "Whopper Burger",
				Price:       199,
				Description: "Flame-grilled beef patty with fresh vegetables",
				Category:    "Burgers",
				Image:       models.PlaceholderDishImage,
			},
		},
	}

	return db.Create(&seed).Error
}
