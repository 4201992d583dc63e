package controllers

import (
	"log"

	"github.com/gin-gonic/gin"

	"furniture-shop/models"
)

// InvoiceController implements the mail-relay collaborator endpoint.
type InvoiceController struct{}

func NewInvoiceController() *InvoiceController {
	return &InvoiceController{}
}

// @Summary Send invoice email
// @Description Render and send the order confirmation email
// @Tags Invoices
// @Accept json
// @Produce json
// @Param invoice body models.SendInvoiceRequest true "Invoice payload"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/send-email [post]
func (ctrl *InvoiceController) SendInvoice(c *gin.Context) {
	var req models.SendInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.ErrorResponse{
			Success: false,
			Message: "Invalid invoice payload",
			Error:   err.Error(),
		})
		return
	}

	emailService, err := models.NewEmailService()
	if err != nil {
		log.Printf("Mail relay unavailable: %v", err)
		c.JSON(503, models.ErrorResponse{
			Success: false,
			Message: "Mail relay is not configured",
		})
		return
	}

	if err := emailService.SendInvoiceEmail(req.Email, req.OrderID, req.Products, req.TotalAmount); err != nil {
		log.Printf("Failed to send invoice for order %d: %v", req.OrderID, err)
		c.JSON(502, models.ErrorResponse{
			Success: false,
			Message: "Failed to send invoice email",
		})
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Invoice email sent",
	})
}
