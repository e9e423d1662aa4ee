package Controllers

import (
	"net/http"

	"github.com/wagnermocelin/DentalApp/Models"

	"github.com/gin-gonic/gin"
)

func FetchClinic(c *gin.Context) {
	var clinic Models.Clinic
	if err := Models.DB.First(&clinic, getClinicID(c)).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Clinic not found"})
		return
	}
	c.JSON(http.StatusOK, clinic)
}

func UpdateClinic(c *gin.Context) {
	var input Models.Clinic
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var clinic Models.Clinic
	if err := Models.DB.First(&clinic, getClinicID(c)).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Clinic not found"})
		return
	}

	clinic.Name = input.Name
	clinic.CNPJ = input.CNPJ
	clinic.Address = input.Address
	clinic.City = input.City
	clinic.State = input.State
	clinic.ZipCode = input.ZipCode
	clinic.Phone = input.Phone
	clinic.Email = input.Email
	clinic.OpeningHours = input.OpeningHours

	if err := Models.DB.Save(&clinic).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Clinic Updated Successfully"})
}

// Notification preference flags of the settings screen, stored as per-clinic
// key/value booleans. Nothing sends from this system; the flags are only kept.
func FetchSettings(c *gin.Context) {
	var settings []Models.ClinicSetting
	if err := Models.DB.Model(&Models.ClinicSetting{}).Where("clinic_id = ?", getClinicID(c)).Find(&settings).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func SaveSetting(c *gin.Context) {
	var input struct {
		Key   string `json:"key" binding:"required"`
		Value bool   `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clinicID := getClinicID(c)
	var setting Models.ClinicSetting
	err := Models.DB.Where("clinic_id = ? AND key = ?", clinicID, input.Key).First(&setting).Error
	if err != nil {
		setting = Models.ClinicSetting{ClinicID: clinicID, Key: input.Key, Value: input.Value}
		if err := Models.DB.Create(&setting).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else {
		if err := Models.DB.Model(&Models.ClinicSetting{}).Where("id = ?", setting.ID).Update("value", input.Value).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Setting Saved Successfully"})
}
