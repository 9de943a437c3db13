package client_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/foodexpress/food-ordering-app/client"
	"github.com/foodexpress/food-ordering-app/database"
	"github.com/foodexpress/food-ordering-app/models"
	"github.com/foodexpress/food-ordering-app/router"
	"github.com/foodexpress/food-ordering-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func startServer(t *testing.T) (*httptest.Server, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Restaurant{}, &models.Dish{}, &models.Order{}))
	require.NoError(t, database.SeedCatalog(db))

	server := httptest.NewServer(router.SetupRouter(db))
	t.Cleanup(server.Close)
	return server, db
}

func TestCartTotalAddRemove(t *testing.T) {
	session := client.NewSession(client.New("http://unused.invalid"))

	whopper := models.Dish{ID: "101", Name: "Whopper Burger", Price: 199}
	fries := models.Dish{ID: "102", Name: "Fries", Price: 99}

	line1 := session.AddToCart(whopper)
	line2 := session.AddToCart(whopper) // same dish twice, distinct lines
	line3 := session.AddToCart(fries)
	assert.NotEqual(t, line1.LineID, line2.LineID)
	assert.Equal(t, 497, session.CartTotal())

	before := session.CartTotal()
	line4 := session.AddToCart(fries)
	session.RemoveFromCart(line4.LineID)
	assert.Equal(t, before, session.CartTotal(), "add then remove must restore the total exactly")

	session.RemoveFromCart(line2.LineID)
	assert.Equal(t, 298, session.CartTotal())
	assert.Len(t, session.CartLines(), 2)
	assert.Equal(t, line3.LineID, session.CartLines()[1].LineID)
}

func TestBackPreservesCart(t *testing.T) {
	server, _ := startServer(t)
	session := client.NewSession(client.New(server.URL))

	require.NoError(t, session.SelectRestaurant("1"))
	assert.Equal(t, client.ViewingRestaurant, session.View())
	require.NotNil(t, session.Restaurant())

	session.AddToCart(session.Restaurant().Dishes[0])
	session.Back()

	assert.Equal(t, client.Browsing, session.View())
	assert.Nil(t, session.Restaurant())
	assert.Len(t, session.CartLines(), 1)
	assert.Equal(t, 199, session.CartTotal())
}

func TestSelectRestaurantUnknown(t *testing.T) {
	server, _ := startServer(t)
	session := client.NewSession(client.New(server.URL))

	err := session.SelectRestaurant("unknown-id")
	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))
	assert.Equal(t, client.Browsing, session.View())
}

func TestPlaceOrderEmptyCartSendsNoRequest(t *testing.T) {
	requests := 0
	spy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer spy.Close()

	session := client.NewSession(client.New(spy.URL))
	order, err := session.PlaceOrder("123 Main Street, City")
	assert.NoError(t, err)
	assert.Nil(t, order)
	assert.Equal(t, 0, requests)
}

func TestPlaceOrderFlow(t *testing.T) {
	server, _ := startServer(t)
	api := client.New(server.URL)
	session := client.NewSession(api)

	require.NoError(t, session.SelectRestaurant("1"))
	whopper := session.Restaurant().Dishes[0]
	session.AddToCart(whopper)
	session.AddToCart(whopper)

	order, err := session.PlaceOrder("123 Main Street, City")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.StatusPlaced, order.Status)
	assert.Equal(t, float64(398), order.Total)
	assert.Equal(t, "Burger King", order.RestaurantName)
	assert.Len(t, order.Items, 2)

	// Success clears the cart and returns to browsing.
	assert.Equal(t, client.Browsing, session.View())
	assert.Empty(t, session.CartLines())
	assert.Equal(t, 0, session.CartTotal())

	// The server kept the exact record.
	stored, err := api.GetOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, stored.ID)
	assert.Equal(t, float64(398), stored.Total)
}

func TestPlaceOrderFailureKeepsCart(t *testing.T) {
	server, _ := startServer(t)

	session := client.NewSession(client.New(server.URL))
	require.NoError(t, session.SelectRestaurant("1"))
	session.AddToCart(session.Restaurant().Dishes[0])
	server.Close() // the submission now fails at the transport

	order, err := session.PlaceOrder("123 Main Street, City")
	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Equal(t, client.ViewingRestaurant, session.View())
	assert.Len(t, session.CartLines(), 1)
	assert.Equal(t, 199, session.CartTotal())
}
