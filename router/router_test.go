package router_test

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

	"github.com/foodexpress/food-ordering-app/models"
	"github.com/foodexpress/food-ordering-app/router"
	"github.com/foodexpress/food-ordering-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouter(t *testing.T) *gin.Engine {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Restaurant{}, &models.Dish{}, &models.Order{}))
	return router.SetupRouter(db)
}

// The per-IP limiter allows 50 requests per second, so a burst from one IP
// must start seeing 429s past the window.
func TestRateLimiterAppliesToRoutes(t *testing.T) {
	r := setupRouter(t)

	codes := map[int]int{}
	for i := 0; i < 55; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes[w.Code]++
	}

	assert.Equal(t, 50, codes[http.StatusOK])
	assert.Equal(t, 5, codes[http.StatusTooManyRequests])
}

func TestPing(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
