package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodexpress/food-ordering-app/models"
	"github.com/foodexpress/food-ordering-app/stores"
	"github.com/foodexpress/food-ordering-app/utils"
)

type OrderController struct {
	Orders stores.OrderStore
}

func NewOrderController(orders stores.OrderStore) *OrderController {
	return &OrderController{Orders: orders}
}

// CreateOrder -> append the submitted cart (status='placed').
// Items and total are stored as submitted; the id, status and timestamp are
// server-assigned no matter what the client sent.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := oc.Orders.PlaceOrder(&order); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order placed", order)
}

// GetOrderByID -> detail of one placed order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id := c.Param("order_id")

	order, err := oc.Orders.GetOrder(id)
	if errors.Is(err, stores.ErrNotFound) {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}
