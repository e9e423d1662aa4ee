package Controllers

import (
	"net/http"
	"time"

	"github.com/wagnermocelin/DentalApp/Models"

	"github.com/gin-gonic/gin"
)

// FetchDashboard returns the landing-screen counters.
func FetchDashboard(c *gin.Context) {
	db := getScopedDB(c)
	today := time.Now().Format("2006-01-02")
	monthStart := time.Now().Format("2006-01") + "-01"

	var patientCount int64
	if err := db.Model(&Models.Patient{}).Count(&patientCount).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var todayAppointments int64
	if err := getScopedDB(c).Model(&Models.Appointment{}).Where("date = ?", today).Count(&todayAppointments).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var activeTreatments int64
	if err := getScopedDB(c).Model(&Models.Treatment{}).Where("status = ?", Models.TreatmentActive).Count(&activeTreatments).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var pendingBudgets int64
	if err := getScopedDB(c).Model(&Models.Budget{}).Where("status = ?", Models.BudgetPending).Count(&pendingBudgets).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var monthReceipts float64
	getScopedDB(c).Model(&Models.Receivable{}).
		Where("status = ? AND receive_date >= ?", Models.ReceivablePaid, monthStart).
		Select("COALESCE(SUM(value), 0)").
		Scan(&monthReceipts)

	c.JSON(http.StatusOK, gin.H{
		"pacientes":            patientCount,
		"agendamentos_hoje":    todayAppointments,
		"tratamentos_ativos":   activeTreatments,
		"orcamentos_pendentes": pendingBudgets,
		"recebido_mes":         monthReceipts,
	})
}
