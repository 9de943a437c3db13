package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodexpress/food-ordering-app/stores"
	"github.com/foodexpress/food-ordering-app/utils"
)

type AdminController struct {
	Stats stores.StatsStore
}

func NewAdminController(stats stores.StatsStore) *AdminController {
	return &AdminController{Stats: stats}
}

// GetStats -> dashboard summary derived from live store contents
func (ac *AdminController) GetStats(c *gin.Context) {
	stats, err := ac.Stats.Stats()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}
