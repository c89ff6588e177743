package handlers

import (
	"doctorsportal/services/availability"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler serves the slot-availability endpoints.
type AppointmentHandler struct {
	Availability availability.Service
}

// NewAppointmentHandler creates an AppointmentHandler.
func NewAppointmentHandler(svc availability.Service) *AppointmentHandler {
	return &AppointmentHandler{Availability: svc}
}

// GetAppointmentOptions handles GET /appointment-options?date=D (in-process merge).
func (h *AppointmentHandler) GetAppointmentOptions(c *gin.Context) {
	date := c.Query("date")
	options, err := h.Availability.AvailableOptions(date)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, options)
}

// GetAppointmentOptionsV2 handles GET /v2/appointment-options?date=D (aggregation).
func (h *AppointmentHandler) GetAppointmentOptionsV2(c *gin.Context) {
	date := c.Query("date")
	options, err := h.Availability.AvailableOptionsAggregated(date)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, options)
}

// GetSpecialties handles GET /appointment-specialty.
func (h *AppointmentHandler) GetSpecialties(c *gin.Context) {
	names, err := h.Availability.SpecialtyNames()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, names)
}
