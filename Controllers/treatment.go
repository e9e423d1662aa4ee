package Controllers

import (
	"net/http"
	"time"

	"github.com/wagnermocelin/DentalApp/Models"
	"github.com/wagnermocelin/DentalApp/SSE"

	"github.com/gin-gonic/gin"
)

func FetchTreatments(c *gin.Context) {
	db := getScopedDB(c)
	var treatments []Models.Treatment
	if err := db.Model(&Models.Treatment{}).Preload("Procedures").Order("created_at desc").Find(&treatments).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for index := range treatments {
		var patient Models.Patient
		if err := Models.DB.Select("name").First(&patient, treatments[index].PatientID).Error; err == nil {
			treatments[index].PatientName = patient.Name
		}
	}
	c.JSON(http.StatusOK, treatments)
}

// FetchTreatmentDetails returns the procedures and recorded sessions of one
// treatment, the two tabs of the treatment screen.
func FetchTreatmentDetails(c *gin.Context) {
	var input struct {
		TreatmentID uint `json:"tratamento_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var procedures []Models.TreatmentProcedure
	if err := Models.DB.Model(&Models.TreatmentProcedure{}).Where("treatment_id = ?", input.TreatmentID).Order("created_at").Find(&procedures).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var sessions []Models.Session
	if err := Models.DB.Model(&Models.Session{}).Where("treatment_id = ?", input.TreatmentID).Order("session_date desc").Find(&sessions).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"procedimentos": procedures, "sessoes": sessions})
}

func UpdateProcedureStatus(c *gin.Context) {
	var input struct {
		ID     uint   `json:"ID"`
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Model(&Models.TreatmentProcedure{}).Where("id = ?", input.ID).Update("status", input.Status).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Procedure Status Updated Successfully"})
}

func CompleteTreatment(c *gin.Context) {
	var input struct {
		ID uint `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updates := map[string]interface{}{
		"status":   Models.TreatmentDone,
		"end_date": time.Now().Format("2006-01-02"),
	}
	if err := Models.DB.Model(&Models.Treatment{}).Where("id = ?", input.ID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Treatment Completed Successfully"})
}

func PauseTreatment(c *gin.Context) {
	updateTreatmentStatus(c, Models.TreatmentPaused, "Treatment Paused Successfully")
}

func ReactivateTreatment(c *gin.Context) {
	updateTreatmentStatus(c, Models.TreatmentActive, "Treatment Reactivated Successfully")
}

func CancelTreatment(c *gin.Context) {
	updateTreatmentStatus(c, Models.TreatmentCancelled, "Treatment Cancelled Successfully")
}

func updateTreatmentStatus(c *gin.Context, status string, message string) {
	var input struct {
		ID uint `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Model(&Models.Treatment{}).Where("id = ?", input.ID).Update("status", status).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": message})
}
