package controllers

import (
	"github.com/gin-gonic/gin"

	"furniture-shop/models"
	"furniture-shop/repositories"
)

// OrderController implements the order-store collaborator endpoint: it turns
// a submitted order into a durable record.
type OrderController struct {
	orderRepo *repositories.OrderRepository
}

func NewOrderController() *OrderController {
	return &OrderController{
		orderRepo: repositories.NewOrderRepository(),
	}
}

// @Summary Create order record
// @Description Persist an order submitted by the checkout pipeline
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Order payload"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Invalid order payload",
			Error:   err.Error(),
		})
		return
	}

	if len(req.Order.Items) == 0 {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Order has no items",
		})
		return
	}

	record, err := ctrl.orderRepo.CreateOrder(req.Order, req.GrandTotal)
	if err != nil {
		c.JSON(500, models.ErrorResponse{
			Success: false,
			Message: "Failed to store order",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(201, models.Response{
		Success: true,
		Message: "Order created successfully",
		Data:    gin.H{"order": req.Order, "record": record},
	})
}

// @Summary List order records
// @Description Get the stored orders for an owner
// @Tags Orders
// @Produce json
// @Param owner_id query string true "Owner id"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/orders [get]
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	ownerID := c.Query("owner_id")
	if ownerID == "" {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "owner_id is required",
		})
		return
	}

	records, err := ctrl.orderRepo.GetOrdersByOwner(ownerID)
	if err != nil {
		c.JSON(500, models.ErrorResponse{
			Success: false,
			Message: "Failed to load orders",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    gin.H{"orders": records},
	})
}
