package Controllers

import (
	"net/http"
	"testing"

	"github.com/wagnermocelin/DentalApp/Models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePatient(t *testing.T) {
	setupTestDB(t)
	patient := seedPatient(t)

	recorder := postJSON(t, UpdatePatient, gin.H{
		"id":       patient.ID,
		"nome":     "Maria Souza Lima",
		"telefone": "11988887777",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var updated Models.Patient
	require.NoError(t, Models.DB.First(&updated, patient.ID).Error)
	assert.Equal(t, "Maria Souza Lima", updated.Name)
	assert.Equal(t, "11988887777", updated.Phone)
}

func TestUpdatePatientUnknownID(t *testing.T) {
	setupTestDB(t)

	recorder := postJSON(t, UpdatePatient, gin.H{"id": 999, "nome": "Fantasma"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// No row is created for an id that does not exist.
	var count int64
	Models.DB.Model(&Models.Patient{}).Count(&count)
	assert.Zero(t, count)
}
