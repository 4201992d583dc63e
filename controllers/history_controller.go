package controllers

import (
	"github.com/gin-gonic/gin"

	"furniture-shop/models"
	"furniture-shop/services"
)

// HistoryController serves the local order echo: the best-effort history
// slot appended after each successful checkout. The order store remains the
// authoritative record.
type HistoryController struct {
	sessions *services.SessionManager
}

func NewHistoryController(sessions *services.SessionManager) *HistoryController {
	return &HistoryController{sessions: sessions}
}

// @Summary Get order history
// @Description Get the locally echoed orders for the current owner
// @Tags History
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders/history [get]
func (ctrl *HistoryController) GetHistory(c *gin.Context) {
	session := ctrl.sessions.Get(c.GetString("owner_id"))
	c.JSON(200, models.Response{
		Success: true,
		Message: "Order history retrieved successfully",
		Data:    gin.H{"orders": session.History.Read()},
	})
}
