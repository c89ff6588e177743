package handlers

import (
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves booking creation and retrieval.
type BookingHandler struct {
	Bookings booking.Service
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{Bookings: svc}
}

// GetBookings handles GET /bookings?email=E. The query email must match the
// verified identity's email claim.
func (h *BookingHandler) GetBookings(c *gin.Context) {
	email := c.Query("email")
	if email != c.GetString(middleware.ContextEmailKey) {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "Forbidden access",
		})
		return
	}

	bookings, err := h.Bookings.GetBookingsByEmail(email)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, bookings)
}

// GetBookingByID handles GET /bookings/:id.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	booking, err := h.Bookings.GetBookingByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	// An unknown id yields null data, not an error.
	utils.RespondData(c, booking)
}

// CreateBooking handles POST /bookings. A duplicate (date, email, treatment)
// is refused with success:false inside a 200 response.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.Booking
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, err)
		return
	}

	result, err := h.Bookings.CreateBooking(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if result.AlreadyBooked {
		utils.RespondMessage(c, result.Message)
		return
	}
	utils.RespondData(c, gin.H{"acknowledged": true, "insertedId": result.InsertedID})
}
