package Controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/wagnermocelin/DentalApp/Models"
	"github.com/wagnermocelin/DentalApp/SSE"

	"github.com/gin-gonic/gin"
)

func FetchBudgets(c *gin.Context) {
	db := getScopedDB(c)
	var budgets []Models.Budget
	if err := db.Model(&Models.Budget{}).Preload("Items").Order("created_at desc").Find(&budgets).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for index := range budgets {
		var patient Models.Patient
		if err := Models.DB.Select("name").First(&patient, budgets[index].PatientID).Error; err == nil {
			budgets[index].PatientName = patient.Name
		}
	}
	c.JSON(http.StatusOK, budgets)
}

type BudgetItemInput struct {
	Procedure string  `json:"procedimento"`
	Tooth     string  `json:"dente"`
	Quantity  int     `json:"quantidade"`
	UnitPrice float64 `json:"valor_unitario"`
	Notes     string  `json:"observacoes"`
}

// SaveBudget creates a budget or edits an existing one. Totals are always
// recomputed from the submitted items; on edit the item set is replaced
// wholesale (delete then reinsert, not diffed) and the patient cannot change.
func SaveBudget(c *gin.Context) {
	var input struct {
		ID         uint              `json:"id"`
		PatientID  uint              `json:"paciente_id"`
		BudgetDate string            `json:"data_orcamento"`
		Validity   string            `json:"validade"`
		Discount   float64           `json:"desconto"`
		Notes      string            `json:"observacoes"`
		Items      []BudgetItemInput `json:"itens"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Println(err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(input.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Adicione pelo menos um procedimento ao orçamento"})
		return
	}

	items := make([]Models.BudgetItem, 0, len(input.Items))
	for _, item := range input.Items {
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		items = append(items, Models.BudgetItem{
			Procedure: item.Procedure,
			Tooth:     item.Tooth,
			Quantity:  quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: Models.ItemLineTotal(quantity, item.UnitPrice),
			Notes:     item.Notes,
		})
	}

	subtotal, final := Models.ComputeBudgetTotals(items, input.Discount)

	var budgetID uint

	if input.ID != 0 {
		var budget Models.Budget
		if err := Models.DB.First(&budget, input.ID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Budget not found"})
			return
		}
		if input.PatientID != 0 && input.PatientID != budget.PatientID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The patient of an existing budget cannot be changed"})
			return
		}

		budget.BudgetDate = input.BudgetDate
		budget.Validity = input.Validity
		budget.Discount = input.Discount
		budget.TotalValue = subtotal
		budget.FinalValue = final
		budget.Notes = input.Notes

		if err := Models.DB.Save(&budget).Error; err != nil {
			log.Println(err.Error())
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		budgetID = budget.ID

		if err := Models.DB.Delete(&Models.BudgetItem{}, "budget_id = ?", budgetID).Error; err != nil {
			log.Println(err.Error())
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else {
		budget := Models.Budget{
			PatientID:  input.PatientID,
			BudgetDate: input.BudgetDate,
			Validity:   input.Validity,
			Discount:   input.Discount,
			TotalValue: subtotal,
			FinalValue: final,
			Notes:      input.Notes,
			Status:     Models.BudgetPending,
			ClinicID:   getClinicID(c),
		}
		if err := Models.DB.Create(&budget).Error; err != nil {
			log.Println(err.Error())
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		budgetID = budget.ID
	}

	for index := range items {
		items[index].BudgetID = budgetID
	}
	if err := Models.DB.Create(&items).Error; err != nil {
		log.Println(err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Budget Saved Successfully", "id": budgetID})
}

func DeleteBudget(c *gin.Context) {
	var input struct {
		ID uint `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Delete(&Models.BudgetItem{}, "budget_id = ?", input.ID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Delete(&Models.Budget{}, "id = ?", input.ID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Budget Deleted Successfully"})
}

// ApproveBudget converts an approved budget into a treatment with pending
// procedures. The writes run in sequence with no enclosing transaction; a
// failure partway leaves the earlier writes in place and surfaces the raw
// error, matching how the console behaves.
func ApproveBudget(c *gin.Context) {
	var input struct {
		ID uint `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Println(err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var budget Models.Budget
	if err := Models.DB.Preload("Items").First(&budget, input.ID).Error; err != nil {
		log.Println(err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Budget not found"})
		return
	}

	if err := Models.DB.Model(&Models.Budget{}).Where("id = ?", budget.ID).Update("status", Models.BudgetApproved).Error; err != nil {
		log.Println(err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	treatment := Models.Treatment{
		BudgetID:     budget.ID,
		PatientID:    budget.PatientID,
		StartDate:    time.Now().Format("2006-01-02"),
		TotalValue:   budget.FinalValue,
		PaidValue:    0,
		PendingValue: budget.FinalValue,
		Status:       Models.TreatmentActive,
		Notes:        fmt.Sprintf("Tratamento iniciado a partir do orçamento #%d", budget.ID),
		ClinicID:     budget.ClinicID,
	}
	if err := Models.DB.Create(&treatment).Error; err != nil {
		log.Println(err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create treatment"})
		return
	}

	// The discount is spread proportionally over the line items so the
	// procedure values sum to the treatment total.
	factor := 1.0
	if budget.TotalValue > 0 {
		factor = budget.FinalValue / budget.TotalValue
	}

	procedures := make([]Models.TreatmentProcedure, 0, len(budget.Items))
	for _, item := range budget.Items {
		procedures = append(procedures, Models.TreatmentProcedure{
			TreatmentID: treatment.ID,
			Procedure:   item.Procedure,
			Tooth:       item.Tooth,
			Value:       item.LineTotal * factor,
			Status:      Models.ProcedurePending,
			Priority:    "normal",
		})
	}
	if err := Models.DB.Create(&procedures).Error; err != nil {
		log.Println(err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create treatment procedures"})
		return
	}

	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Budget Approved Successfully", "treatment_id": treatment.ID})
}

// RejectBudget is a pure status flip, no side effects.
func RejectBudget(c *gin.Context) {
	var input struct {
		ID uint `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Models.DB.Model(&Models.Budget{}).Where("id = ?", input.ID).Update("status", Models.BudgetRejected).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{"message": "Budget Rejected Successfully"})
}
