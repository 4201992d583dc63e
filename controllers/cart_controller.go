package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"furniture-shop/models"
	"furniture-shop/services"
)

type CartController struct {
	sessions *services.SessionManager
}

func NewCartController(sessions *services.SessionManager) *CartController {
	return &CartController{sessions: sessions}
}

func (ctrl *CartController) cart(c *gin.Context) *services.CartService {
	return ctrl.sessions.Get(c.GetString("owner_id")).Cart
}

// @Summary Get cart
// @Description Get the current cart items
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart := ctrl.cart(c)
	c.JSON(200, models.Response{
		Success: true,
		Message: "Cart retrieved successfully",
		Data: gin.H{
			"items":    cart.Items(),
			"subtotal": cart.Subtotal(),
		},
	})
}

// @Summary Add cart item
// @Description Add a product variant to the cart
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param item body models.AddCartItemRequest true "Item"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Invalid cart item",
			Error:   err.Error(),
		})
		return
	}

	cart := ctrl.cart(c)
	cart.AddItem(models.CartItem{
		ID:            req.ID,
		Title:         req.Title,
		UnitPrice:     req.UnitPrice,
		Quantity:      req.Quantity,
		ImageRef:      req.ImageRef,
		SelectedSize:  req.SelectedSize,
		SelectedColor: req.SelectedColor,
	})

	c.JSON(201, models.Response{
		Success: true,
		Message: "Item added to cart",
		Data:    gin.H{"items": cart.Items()},
	})
}

// @Summary Change item quantity
// @Description Step one line's quantity up or down; down stops at 1
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param index path int true "Line index"
// @Param direction body models.ChangeQuantityRequest true "Direction"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{index}/quantity [patch]
func (ctrl *CartController) ChangeQuantity(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid line index"})
		return
	}

	var req models.ChangeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Invalid direction",
			Error:   err.Error(),
		})
		return
	}

	cart := ctrl.cart(c)
	cart.ChangeQuantity(index, req.Direction)

	c.JSON(200, models.Response{
		Success: true,
		Message: "Quantity updated",
		Data:    gin.H{"items": cart.Items()},
	})
}

// @Summary Remove cart item
// @Description Remove one line by positional index
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param index path int true "Line index"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{index} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(400, models.ErrorResponse{Success: false, Message: "Invalid line index"})
		return
	}

	cart := ctrl.cart(c)
	cart.RemoveItem(index)

	c.JSON(200, models.Response{
		Success: true,
		Message: "Item removed",
		Data:    gin.H{"items": cart.Items()},
	})
}

// @Summary Clear cart
// @Description Empty the cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	ctrl.cart(c).Clear()
	c.JSON(200, models.Response{
		Success: true,
		Message: "Cart cleared",
	})
}

// @Summary Get cart subtotal
// @Description Sum of unit price times quantity over all lines
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/subtotal [get]
func (ctrl *CartController) GetSubtotal(c *gin.Context) {
	c.JSON(200, models.Response{
		Success: true,
		Message: "Subtotal computed",
		Data:    gin.H{"subtotal": ctrl.cart(c).Subtotal()},
	})
}
