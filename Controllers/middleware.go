package Controllers

import (
	"github.com/wagnermocelin/DentalApp/Models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func getScopedDB(c *gin.Context) *gorm.DB {
	db, exists := c.Get("db")
	if !exists {
		return Models.DB // Return the default DB if scoped DB doesn't exist
	}

	dbFunc, ok := db.(func(string) *gorm.DB)
	if !ok {
		return Models.DB
	}

	// Controllers that join may set the table to qualify the clinic column.
	modelName, exists := c.Get("modelName")
	if exists {
		tableName, ok := modelName.(string)
		if ok {
			return dbFunc(tableName)
		}
	}

	return dbFunc("")
}

func getClinicID(c *gin.Context) uint {
	clinicID, exists := c.Get("clinicID")
	if !exists {
		return 0
	}
	id, ok := clinicID.(uint)
	if !ok {
		return 0
	}
	return id
}
