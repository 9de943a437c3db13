package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodexpress/food-ordering-app/client"
	"github.com/foodexpress/food-ordering-app/models"
)

func TestFilterRestaurants(t *testing.T) {
	restaurants := []models.Restaurant{
		{ID: "1", Name: "Burger King", Cuisine: "Fast Food"},
		{ID: "2", Name: "Pizza Palace", Cuisine: "Italian"},
		{ID: "3", Name: "Sushi Spot", Cuisine: "Japanese"},
	}

	// Matches cuisine, case-insensitively.
	byCuisine := client.FilterRestaurants(restaurants, "fast")
	assert.Len(t, byCuisine, 1)
	assert.Equal(t, "Burger King", byCuisine[0].Name)

	// Matches name, case-insensitively.
	byName := client.FilterRestaurants(restaurants, "BURGER")
	assert.Len(t, byName, 1)
	assert.Equal(t, "1", byName[0].ID)

	// Empty term keeps everything, in order.
	all := client.FilterRestaurants(restaurants, "")
	assert.Len(t, all, len(restaurants))
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "3", all[2].ID)

	// No match yields an empty, non-nil list.
	none := client.FilterRestaurants(restaurants, "steakhouse")
	assert.NotNil(t, none)
	assert.Len(t, none, 0)
}

func TestFilterRestaurantsFetched(t *testing.T) {
	server, _ := startServer(t)
	api := client.New(server.URL)

	restaurants, err := api.ListRestaurants()
	assert.NoError(t, err)

	matched := client.FilterRestaurants(restaurants, "burger")
	assert.Len(t, matched, 1)
	assert.Equal(t, "Burger King", matched[0].Name)

	assert.Empty(t, client.FilterRestaurants(restaurants, "vegan"))
}
