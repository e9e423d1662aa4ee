package Controllers

import (
	"net/http"

	"github.com/wagnermocelin/DentalApp/Models"

	"github.com/gin-gonic/gin"
)

func FetchClinicalRecords(c *gin.Context) {
	var input struct {
		PatientID uint `json:"paciente_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var records []Models.ClinicalRecord
	query := Models.DB.Model(&Models.ClinicalRecord{}).Order("date desc")
	if input.PatientID != 0 {
		query = query.Where("patient_id = ?", input.PatientID)
	}
	if err := query.Find(&records).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

func CreateClinicalRecord(c *gin.Context) {
	var input Models.ClinicalRecord
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.PatientID == 0 || input.Procedure == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Patient and procedure are required"})
		return
	}
	input.ClinicID = getClinicID(c)
	if err := Models.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Clinical Record Created Successfully"})
}

func DeleteClinicalRecord(c *gin.Context) {
	var input struct {
		ID uint `json:"ID"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Delete(&Models.ClinicalRecord{}, "id = ?", input.ID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Clinical Record Deleted Successfully"})
}

func CreatePrescription(c *gin.Context) {
	var input Models.Prescription
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Medications == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Preencha os medicamentos prescritos"})
		return
	}
	input.ClinicID = getClinicID(c)
	if err := Models.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Prescription Created Successfully"})
}

func FetchPrescriptions(c *gin.Context) {
	var input struct {
		PatientID uint `json:"paciente_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var prescriptions []Models.Prescription
	if err := Models.DB.Model(&Models.Prescription{}).Where("patient_id = ?", input.PatientID).Order("issue_date desc").Find(&prescriptions).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

func CreateLeaveCertificate(c *gin.Context) {
	var input Models.LeaveCertificate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.StartDate == "" || input.EndDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Start and end dates are required"})
		return
	}
	input.Days = Models.CertificateDays(input.StartDate, input.EndDate)
	input.ClinicID = getClinicID(c)
	if err := Models.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Leave Certificate Created Successfully", "dias": input.Days})
}

func FetchLeaveCertificates(c *gin.Context) {
	var input struct {
		PatientID uint `json:"paciente_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var certificates []Models.LeaveCertificate
	if err := Models.DB.Model(&Models.LeaveCertificate{}).Where("patient_id = ?", input.PatientID).Order("issue_date desc").Find(&certificates).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, certificates)
}
