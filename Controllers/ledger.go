package Controllers

import (
	"net/http"
	"time"

	"github.com/wagnermocelin/DentalApp/Models"
	"github.com/wagnermocelin/DentalApp/SSE"

	"github.com/gin-gonic/gin"
)

// FetchReceivables lists receivables with the derived display status; the
// optional filter treats stored and derived overdue alike.
func FetchReceivables(c *gin.Context) {
	var input struct {
		StatusFilter string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := getScopedDB(c)
	var receivables []Models.Receivable
	if err := db.Model(&Models.Receivable{}).Order("due_date desc").Find(&receivables).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	today := time.Now().Format("2006-01-02")
	output := make([]Models.Receivable, 0, len(receivables))
	for index := range receivables {
		var patient Models.Patient
		if err := Models.DB.Select("name").First(&patient, receivables[index].PatientID).Error; err == nil {
			receivables[index].PatientName = patient.Name
		}
		display := Models.LedgerDisplayStatus(receivables[index].Status, receivables[index].DueDate, today)
		receivables[index].Status = display
		if input.StatusFilter != "" && input.StatusFilter != "todos" && display != input.StatusFilter {
			continue
		}
		output = append(output, receivables[index])
	}
	c.JSON(http.StatusOK, output)
}

func FetchPayables(c *gin.Context) {
	var input struct {
		StatusFilter string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := getScopedDB(c)
	var payables []Models.Payable
	if err := db.Model(&Models.Payable{}).Order("due_date desc").Find(&payables).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	today := time.Now().Format("2006-01-02")
	output := make([]Models.Payable, 0, len(payables))
	for index := range payables {
		display := Models.LedgerDisplayStatus(payables[index].Status, payables[index].DueDate, today)
		payables[index].Status = display
		if input.StatusFilter != "" && input.StatusFilter != "todos" && display != input.StatusFilter {
			continue
		}
		output = append(output, payables[index])
	}
	c.JSON(http.StatusOK, output)
}

func SaveReceivable(c *gin.Context) {
	var input Models.Receivable
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Description == "" || input.DueDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Description and due date are required"})
		return
	}
	if input.Status == "" {
		input.Status = Models.ReceivablePending
	}
	if input.ID == 0 {
		input.ClinicID = getClinicID(c)
		if err := Models.DB.Create(&input).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else {
		if err := Models.DB.Save(&input).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Receivable Saved Successfully"})
}

func SavePayable(c *gin.Context) {
	var input Models.Payable
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Description == "" || input.DueDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Description and due date are required"})
		return
	}
	if input.Status == "" {
		input.Status = Models.ReceivablePending
	}
	if input.ID == 0 {
		input.ClinicID = getClinicID(c)
		if err := Models.DB.Create(&input).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else {
		if err := Models.DB.Save(&input).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Payable Saved Successfully"})
}

func MarkReceivablePaid(c *gin.Context) {
	var input struct {
		ID          uint   `json:"ID"`
		ReceiveDate string `json:"data_recebimento"`
		PaymentForm string `json:"forma_recebimento"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.ReceiveDate == "" {
		input.ReceiveDate = time.Now().Format("2006-01-02")
	}
	updates := map[string]interface{}{
		"status":       Models.ReceivablePaid,
		"receive_date": input.ReceiveDate,
	}
	if input.PaymentForm != "" {
		updates["payment_form"] = input.PaymentForm
	}
	if err := Models.DB.Model(&Models.Receivable{}).Where("id = ?", input.ID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Receivable Marked As Paid"})
}

func MarkPayablePaid(c *gin.Context) {
	var input struct {
		ID          uint   `json:"ID"`
		PayDate     string `json:"data_pagamento"`
		PaymentForm string `json:"forma_pagamento"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.PayDate == "" {
		input.PayDate = time.Now().Format("2006-01-02")
	}
	updates := map[string]interface{}{
		"status":   Models.ReceivablePaid,
		"pay_date": input.PayDate,
	}
	if input.PaymentForm != "" {
		updates["payment_form"] = input.PaymentForm
	}
	if err := Models.DB.Model(&Models.Payable{}).Where("id = ?", input.ID).Updates(updates).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Payable Marked As Paid"})
}

func DeleteReceivable(c *gin.Context) {
	var input struct {
		ID uint `json:"ID"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Delete(&Models.Receivable{}, "id = ?", input.ID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Receivable Deleted Successfully"})
}

func DeletePayable(c *gin.Context) {
	var input struct {
		ID uint `json:"ID"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Delete(&Models.Payable{}, "id = ?", input.ID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Payable Deleted Successfully"})
}

// FetchLedgerStats totals both ledger sides the way the finance screen does:
// received, pending, overdue and the resulting balance.
func FetchLedgerStats(c *gin.Context) {
	db := getScopedDB(c)

	var receivables []Models.Receivable
	if err := db.Model(&Models.Receivable{}).Find(&receivables).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var payables []Models.Payable
	if err := getScopedDB(c).Model(&Models.Payable{}).Find(&payables).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	today := time.Now().Format("2006-01-02")

	var stats struct {
		TotalReceived       float64 `json:"total_receber"`
		TotalReceivePending float64 `json:"total_receber_pendente"`
		TotalReceiveOverdue float64 `json:"total_receber_atrasado"`
		TotalPaid           float64 `json:"total_pagar"`
		TotalPayablePending float64 `json:"total_pagar_pendente"`
		TotalPayableOverdue float64 `json:"total_pagar_atrasado"`
		Balance             float64 `json:"saldo"`
	}

	for _, entry := range receivables {
		switch entry.Status {
		case Models.ReceivablePaid:
			stats.TotalReceived += entry.Value
		case Models.ReceivablePending:
			stats.TotalReceivePending += entry.Value
		}
		if Models.IsOverdue(entry.Status, entry.DueDate, today) {
			stats.TotalReceiveOverdue += entry.Value
		}
	}
	for _, entry := range payables {
		switch entry.Status {
		case Models.ReceivablePaid:
			stats.TotalPaid += entry.Value
		case Models.ReceivablePending:
			stats.TotalPayablePending += entry.Value
		}
		if Models.IsOverdue(entry.Status, entry.DueDate, today) {
			stats.TotalPayableOverdue += entry.Value
		}
	}
	stats.Balance = stats.TotalReceived - stats.TotalPaid

	c.JSON(http.StatusOK, stats)
}

func FetchFinancialCategories(c *gin.Context) {
	db := getScopedDB(c)
	var categories []Models.FinancialCategory
	if err := db.Model(&Models.FinancialCategory{}).Order("name").Find(&categories).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func SaveFinancialCategory(c *gin.Context) {
	var input Models.FinancialCategory
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.ID == 0 {
		input.ClinicID = getClinicID(c)
		if err := Models.DB.Create(&input).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else {
		if err := Models.DB.Save(&input).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category Saved Successfully"})
}

func DeleteFinancialCategory(c *gin.Context) {
	var input struct {
		ID uint `json:"ID"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Delete(&Models.FinancialCategory{}, "id = ?", input.ID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category Deleted Successfully"})
}
