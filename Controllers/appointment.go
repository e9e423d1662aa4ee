package Controllers

import (
	"net/http"

	"github.com/wagnermocelin/DentalApp/Models"
	"github.com/wagnermocelin/DentalApp/SSE"

	"github.com/gin-gonic/gin"
)

func FetchAppointments(c *gin.Context) {
	var input struct {
		DateFrom string `json:"date_from"`
		DateTo   string `json:"date_to"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := getScopedDB(c)
	var appointments []Models.Appointment
	query := db.Model(&Models.Appointment{})
	if input.DateFrom != "" && input.DateTo != "" {
		query = query.Where("date BETWEEN ? AND ?", input.DateFrom, input.DateTo)
	}
	if err := query.Order("date, start_time").Find(&appointments).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func FetchAppointmentsByPatientID(c *gin.Context) {
	var input struct {
		PatientID uint `json:"paciente_id"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var appointments []Models.Appointment
	if err := Models.DB.Model(&Models.Appointment{}).Where("patient_id = ?", input.PatientID).Find(&appointments).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func CreateAppointment(c *gin.Context) {
	var input Models.Appointment
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.PatientID == 0 || input.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Patient and date are required"})
		return
	}

	var patient Models.Patient
	if err := Models.DB.First(&patient, input.PatientID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Patient not found"})
		return
	}

	input.PatientName = patient.Name
	input.ClinicID = getClinicID(c)
	if input.Status == "" {
		input.Status = Models.AppointmentPending
	}
	if err := Models.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Appointment Created Successfully", "id": input.ID})
}

func UpdateAppointment(c *gin.Context) {
	var input Models.Appointment
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Appointment id is required"})
		return
	}
	if err := Models.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Appointment Updated Successfully"})
}

func UpdateAppointmentStatus(c *gin.Context) {
	var input struct {
		ID     uint   `json:"ID"`
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Model(&Models.Appointment{}).Where("id = ?", input.ID).Update("status", input.Status).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Appointment Status Updated Successfully"})
}

func DeleteAppointment(c *gin.Context) {
	var input struct {
		ID uint `json:"ID"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Delete(&Models.Appointment{}, "id = ?", input.ID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Appointment Deleted Successfully"})
}
