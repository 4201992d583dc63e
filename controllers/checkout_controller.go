package controllers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"furniture-shop/models"
	"furniture-shop/services"
)

type CheckoutController struct {
	sessions *services.SessionManager
}

func NewCheckoutController(sessions *services.SessionManager) *CheckoutController {
	return &CheckoutController{sessions: sessions}
}

// @Summary Submit checkout
// @Description Run the checkout pipeline against the current cart snapshot
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param checkout body models.CheckoutRequest true "Billing details"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Submit(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Invalid billing details",
			Error:   err.Error(),
		})
		return
	}

	ownerID := c.GetString("owner_id")
	session := ctrl.sessions.Get(ownerID)

	// The pipeline must settle even if the client disconnects mid-flight;
	// only the per-step deadlines bound the remote calls. Aborting between
	// the order and email steps would strand an order the user never sees
	// confirmed.
	ctx := context.WithoutCancel(c.Request.Context())
	result, err := session.Checkout.Submit(ctx, ownerID, req.Billing)
	if err != nil {
		if errors.Is(err, services.ErrSubmitInProgress) {
			c.JSON(409, models.ErrorResponse{
				Success: false,
				Message: "Checkout already in progress",
			})
			return
		}
		c.JSON(500, models.ErrorResponse{
			Success: false,
			Message: "Checkout failed",
			Error:   err.Error(),
		})
		return
	}

	if result.State == services.CheckoutStateFailed {
		c.JSON(422, models.ErrorResponse{
			Success: false,
			Message: result.Reason,
		})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Order placed successfully",
		Data:    result,
	})
}
