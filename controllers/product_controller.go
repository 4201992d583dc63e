package controllers

import (
	"github.com/gin-gonic/gin"

	"furniture-shop/libs"
	"furniture-shop/models"
	"furniture-shop/services"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// @Summary List products
// @Description List catalog products, optionally filtered by category or tag
// @Tags Products
// @Produce json
// @Param category query string false "Category"
// @Param tag query string false "Tag"
// @Param is_new query bool false "Only new arrivals"
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	query := libs.CatalogQuery{
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
	}

	products, err := ctrl.catalog.ListProducts(c.Request.Context(), query)
	if err != nil {
		c.JSON(502, models.ErrorResponse{
			Success: false,
			Message: "Failed to load products",
			Error:   err.Error(),
		})
		return
	}

	if c.Query("is_new") == "true" {
		filtered := []models.Product{}
		for _, product := range products {
			if product.IsNew {
				filtered = append(filtered, product)
			}
		}
		products = filtered
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    gin.H{"products": products},
	})
}

// @Summary Get product
// @Description Get one catalog product by id
// @Tags Products
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(404, models.ErrorResponse{
			Success: false,
			Message: "Product not found",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Product retrieved successfully",
		Data:    gin.H{"product": product},
	})
}
