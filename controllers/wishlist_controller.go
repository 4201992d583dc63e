package controllers

import (
	"github.com/gin-gonic/gin"

	"furniture-shop/models"
	"furniture-shop/services"
)

type WishlistController struct {
	sessions *services.SessionManager
}

func NewWishlistController(sessions *services.SessionManager) *WishlistController {
	return &WishlistController{sessions: sessions}
}

func (ctrl *WishlistController) wishlist(c *gin.Context) *services.WishlistService {
	return ctrl.sessions.Get(c.GetString("owner_id")).Wishlist
}

// @Summary Get wishlist
// @Description Get the saved items
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /wishlist [get]
func (ctrl *WishlistController) GetWishlist(c *gin.Context) {
	wishlist := ctrl.wishlist(c)
	c.JSON(200, models.Response{
		Success: true,
		Message: "Wishlist retrieved successfully",
		Data: gin.H{
			"items": wishlist.Items(),
			"count": wishlist.Count(),
		},
	})
}

// @Summary Add wishlist item
// @Description Save an item; adding an already saved id changes nothing
// @Tags Wishlist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param item body models.WishlistItem true "Item"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /wishlist [post]
func (ctrl *WishlistController) AddItem(c *gin.Context) {
	var item models.WishlistItem
	if err := c.ShouldBindJSON(&item); err != nil || item.ID == "" {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Invalid wishlist item",
		})
		return
	}

	wishlist := ctrl.wishlist(c)
	wishlist.Add(item)

	c.JSON(201, models.Response{
		Success: true,
		Message: "Item saved",
		Data: gin.H{
			"items": wishlist.Items(),
			"count": wishlist.Count(),
		},
	})
}

// @Summary Remove wishlist item
// @Description Remove a saved item by id
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Param id path string true "Item id"
// @Success 200 {object} models.Response
// @Router /wishlist/{id} [delete]
func (ctrl *WishlistController) RemoveItem(c *gin.Context) {
	wishlist := ctrl.wishlist(c)
	wishlist.Remove(c.Param("id"))

	c.JSON(200, models.Response{
		Success: true,
		Message: "Item removed",
		Data: gin.H{
			"items": wishlist.Items(),
			"count": wishlist.Count(),
		},
	})
}

// @Summary Get wishlist count
// @Description Number of saved items, for badge display
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /wishlist/count [get]
func (ctrl *WishlistController) GetCount(c *gin.Context) {
	c.JSON(200, models.Response{
		Success: true,
		Message: "Count retrieved",
		Data:    gin.H{"count": ctrl.wishlist(c).Count()},
	})
}
