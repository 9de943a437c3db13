package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/foodexpress/food-ordering-app/controllers"
	"github.com/foodexpress/food-ordering-app/models"
	"github.com/foodexpress/food-ordering-app/stores"
)

func setupAdminRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	adminCtrl := controllers.NewAdminController(stores.NewGormStatsStore(db))
	router.GET("/admin/stats", adminCtrl.GetStats)
	return router
}

// Stats are derived from live store contents, not static placeholders.
func TestAdminStatsDerived(t *testing.T) {
	db := setupTestDB(t)
	seedBurgerKing(db)
	router := setupAdminRouter(db)

	orderStore := stores.NewGormOrderStore(db)
	assert.NoError(t, orderStore.PlaceOrder(&models.Order{Total: 199}))
	assert.NoError(t, orderStore.PlaceOrder(&models.Order{Total: 301}))

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status bool              `json:"status"`
		Data   models.AdminStats `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	assert.Equal(t, int64(2), resp.Data.TotalOrders)
	assert.Equal(t, float64(500), resp.Data.TotalRevenue)
	assert.Equal(t, int64(1), resp.Data.ActiveRestaurants)
}

func TestAdminStatsEmptyStore(t *testing.T) {
	db := setupTestDB(t)
	router := setupAdminRouter(db)

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.AdminStats `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(0), resp.Data.TotalOrders)
	assert.Equal(t, float64(0), resp.Data.TotalRevenue)
	assert.Equal(t, int64(0), resp.Data.ActiveRestaurants)
}
