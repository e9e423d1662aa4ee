package Controllers

import (
	"net/http"

	"github.com/wagnermocelin/DentalApp/Models"

	"github.com/gin-gonic/gin"
)

func FetchStandardProcedures(c *gin.Context) {
	db := getScopedDB(c)
	var procedures []Models.StandardProcedure
	if err := db.Model(&Models.StandardProcedure{}).Where("active = ?", true).Order("name").Find(&procedures).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, procedures)
}

func AddStandardProcedure(c *gin.Context) {
	var input Models.StandardProcedure
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.Active = true
	input.ClinicID = getClinicID(c)
	if err := Models.DB.Create(&input).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Procedure Created Successfully",
	})
}

func EditStandardProcedure(c *gin.Context) {
	var input Models.StandardProcedure
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Procedure Edited Successfully",
	})
}

func DeleteStandardProcedure(c *gin.Context) {
	var input struct {
		ProcedureID uint `json:"procedure_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Delete(&Models.StandardProcedure{}, "id = ?", input.ProcedureID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Procedure Deleted Successfully",
	})
}
