package handlers

import (
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler serves the payment endpoints.
type PaymentHandler struct {
	Bookings booking.Service
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(svc booking.Service) *PaymentHandler {
	return &PaymentHandler{Bookings: svc}
}

// CreatePaymentIntent handles POST /create-payment-intent. Processor
// failures become success:false, never a protocol error.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var input struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, err)
		return
	}

	clientSecret, err := h.Bookings.CreatePaymentIntent(input.Price)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"clientSecret": clientSecret,
	})
}

// RecordPayment handles POST /payments: insert the payment, then mark the
// referenced booking paid.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var input models.Payment
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, err)
		return
	}

	id, err := h.Bookings.RecordPayment(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, gin.H{"acknowledged": true, "insertedId": id})
}
