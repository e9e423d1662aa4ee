package Controllers

import (
	"net/http"

	"github.com/wagnermocelin/DentalApp/Models"

	"github.com/gin-gonic/gin"
)

func FetchPatients(c *gin.Context) {
	db := getScopedDB(c)
	var patients []Models.Patient
	if err := db.Model(&Models.Patient{}).Preload("History").Find(&patients).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patients)
}

func CreatePatient(c *gin.Context) {
	var input Models.Patient
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Patient name is required"})
		return
	}
	input.ClinicID = getClinicID(c)
	if err := Models.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient Created Successfully", "id": input.ID})
}

func UpdatePatient(c *gin.Context) {
	var input struct {
		ID        uint   `json:"id"`
		Name      string `json:"nome"`
		CPF       string `json:"cpf"`
		BirthDate string `json:"data_nascimento"`
		Phone     string `json:"telefone"`
		Email     string `json:"email"`
		Address   string `json:"endereco"`
		City      string `json:"cidade"`
		State     string `json:"estado"`
		ZipCode   string `json:"cep"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	var patient Models.Patient
	if err := Models.DB.First(&patient, input.ID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Patient not found"})
		return
	}

	patient.Name = input.Name
	patient.CPF = input.CPF
	patient.BirthDate = input.BirthDate
	patient.Phone = input.Phone
	patient.Email = input.Email
	patient.Address = input.Address
	patient.City = input.City
	patient.State = input.State
	patient.ZipCode = input.ZipCode

	if err := Models.DB.Save(&patient).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient Updated Successfully"})
}

func DeletePatient(c *gin.Context) {
	var input struct {
		ID uint `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Delete(&Models.Patient{}, "id = ?", input.ID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient Deleted Successfully"})
}
