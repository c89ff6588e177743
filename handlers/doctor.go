package handlers

import (
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/doctor"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// DoctorHandler serves the admin-only doctor catalog.
type DoctorHandler struct {
	Doctors doctor.DoctorService
}

// NewDoctorHandler creates a DoctorHandler.
func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Doctors: svc}
}

// GetDoctors handles GET /doctors.
func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.Doctors.GetAllDoctors()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, doctors)
}

// CreateDoctor handles POST /doctors. The body is the doctor document.
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var input models.Doctor
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, err)
		return
	}

	id, err := h.Doctors.CreateDoctor(input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, gin.H{"acknowledged": true, "insertedId": id})
}

// DeleteDoctor handles DELETE /doctors/:id.
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	deleted, err := h.Doctors.DeleteDoctor(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  gin.H{"acknowledged": true, "deletedCount": deleted},
	})
}
