package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/foodexpress/food-ordering-app/models"
	"github.com/foodexpress/food-ordering-app/stores"
	"github.com/foodexpress/food-ordering-app/utils"
)

type RestaurantController struct {
	Catalog stores.CatalogStore
}

func NewRestaurantController(catalog stores.CatalogStore) *RestaurantController {
	return &RestaurantController{Catalog: catalog}
}

// GetAllRestaurants -> full catalog in insertion order, dishes included.
// Search/filtering is a client responsibility.
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	restaurants, err := rc.Catalog.ListRestaurants()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of restaurants", restaurants)
}

// GetRestaurantByID -> detail of one restaurant
func (rc *RestaurantController) GetRestaurantByID(c *gin.Context) {
	id := c.Param("restaurant_id")

	restaurant, err := rc.Catalog.GetRestaurant(id)
	if errors.Is(err, stores.ErrNotFound) {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant detail", restaurant)
}

// CreateRestaurant -> admin appends a restaurant (multipart, optional image).
// Missing form fields are stored as submitted; there is no field validation.
func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	c.Request.ParseMultipartForm(10 << 20)

	image := models.PlaceholderRestaurantImage
	if file, err := c.FormFile("image"); err == nil {
		saved, err := utils.SaveUploadedImage(c, file)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		image = saved
	}

	restaurant := models.Restaurant{
		Name:         c.PostForm("name"),
		Cuisine:      c.PostForm("cuisine"),
		DeliveryTime: c.PostForm("deliveryTime"),
		Price:        c.PostForm("price"),
		Image:        image,
	}

	if err := rc.Catalog.AddRestaurant(&restaurant); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant created", restaurant)
}

// CreateDish -> admin appends a dish to an existing restaurant.
// Price comes in as a form string and is coerced to an integer; junk input
// keeps the zero coercion result rather than failing.
func (rc *RestaurantController) CreateDish(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")

	c.Request.ParseMultipartForm(10 << 20)

	image := models.PlaceholderDishImage
	if file, err := c.FormFile("image"); err == nil {
		saved, err := utils.SaveUploadedImage(c, file)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		image = saved
	}

	price, _ := strconv.Atoi(c.PostForm("price"))

	dish := models.Dish{
		Name:        c.PostForm("name"),
		Price:       price,
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Image:       image,
	}

	if err := rc.Catalog.AddDish(restaurantID, &dish); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dish created", dish)
}
