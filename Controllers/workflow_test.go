package Controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wagnermocelin/DentalApp/Models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	Models.Migrate(db)
	Models.DB = db
}

func postJSON(t *testing.T, handler gin.HandlerFunc, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return recorder
}

func seedPatient(t *testing.T) Models.Patient {
	t.Helper()
	patient := Models.Patient{Name: "Maria Souza", Phone: "11999990000"}
	require.NoError(t, Models.DB.Create(&patient).Error)
	return patient
}

func seedBudget(t *testing.T, patientID uint) Models.Budget {
	t.Helper()
	recorder := postJSON(t, SaveBudget, gin.H{
		"paciente_id":    patientID,
		"data_orcamento": "2024-01-05",
		"desconto":       20,
		"itens": []gin.H{
			{"procedimento": "Restauração", "dente": "26", "quantidade": 1, "valor_unitario": 100},
			{"procedimento": "Limpeza", "quantidade": 2, "valor_unitario": 50},
		},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var budget Models.Budget
	require.NoError(t, Models.DB.Preload("Items").Order("id desc").First(&budget).Error)
	return budget
}

func approveBudget(t *testing.T, budgetID uint) Models.Treatment {
	t.Helper()
	recorder := postJSON(t, ApproveBudget, gin.H{"id": budgetID})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var treatment Models.Treatment
	require.NoError(t, Models.DB.Where("budget_id = ?", budgetID).First(&treatment).Error)
	return treatment
}

func TestSaveBudgetComputesTotals(t *testing.T) {
	setupTestDB(t)
	patient := seedPatient(t)

	budget := seedBudget(t, patient.ID)

	assert.Equal(t, 200.0, budget.TotalValue)
	assert.Equal(t, 180.0, budget.FinalValue)
	assert.Equal(t, Models.BudgetPending, budget.Status)
	require.Len(t, budget.Items, 2)
	assert.Equal(t, 100.0, budget.Items[0].LineTotal)
	assert.Equal(t, 100.0, budget.Items[1].LineTotal)
}

func TestSaveBudgetRejectsEmptyItems(t *testing.T) {
	setupTestDB(t)
	patient := seedPatient(t)

	recorder := postJSON(t, SaveBudget, gin.H{
		"paciente_id": patient.ID,
		"itens":       []gin.H{},
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSaveBudgetEditReplacesItems(t *testing.T) {
	setupTestDB(t)
	patient := seedPatient(t)
	budget := seedBudget(t, patient.ID)

	recorder := postJSON(t, SaveBudget, gin.H{
		"id":          budget.ID,
		"paciente_id": patient.ID,
		"desconto":    0,
		"itens": []gin.H{
			{"procedimento": "Canal", "quantidade": 1, "valor_unitario": 450},
		},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var updated Models.Budget
	require.NoError(t, Models.DB.Preload("Items").First(&updated, budget.ID).Error)
	assert.Equal(t, 450.0, updated.TotalValue)
	assert.Equal(t, 450.0, updated.FinalValue)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "Canal", updated.Items[0].Procedure)
}

func TestSaveBudgetRejectsPatientChange(t *testing.T) {
	setupTestDB(t)
	patient := seedPatient(t)
	budget := seedBudget(t, patient.ID)

	other := Models.Patient{Name: "João Lima"}
	require.NoError(t, Models.DB.Create(&other).Error)

	recorder := postJSON(t, SaveBudget, gin.H{
		"id":          budget.ID,
		"paciente_id": other.ID,
		"itens": []gin.H{
			{"procedimento": "Canal", "quantidade": 1, "valor_unitario": 450},
		},
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestApproveBudgetCreatesTreatment(t *testing.T) {
	setupTestDB(t)
	patient := seedPatient(t)
	budget := seedBudget(t, patient.ID)

	treatment := approveBudget(t, budget.ID)

	assert.Equal(t, 180.0, treatment.TotalValue)
	assert.Equal(t, 0.0, treatment.PaidValue)
	assert.Equal(t, 180.0, treatment.PendingValue)
	assert.Equal(t, Models.TreatmentActive, treatment.Status)

	var approved Models.Budget
	require.NoError(t, Models.DB.First(&approved, budget.ID).Error)
	assert.Equal(t, Models.BudgetApproved, approved.Status)

	// The R$20 discount is spread over the items, so the procedure values
	// carry the discounted amounts and sum to the treatment total.
	var procedures []Models.TreatmentProcedure
	require.NoError(t, Models.DB.Where("treatment_id = ?", treatment.ID).Order("id").Find(&procedures).Error)
	require.Len(t, procedures, 2)
	for _, procedure := range procedures {
		assert.Equal(t, Models.ProcedurePending, procedure.Status)
		assert.Equal(t, "normal", procedure.Priority)
	}
	assert.InDelta(t, 90.0, procedures[0].Value, 1e-9)
	assert.InDelta(t, 90.0, procedures[1].Value, 1e-9)
	assert.InDelta(t, treatment.TotalValue, procedures[0].Value+procedures[1].Value, 1e-9)
}

func TestApproveBudgetDistributesDiscountProportionally(t *testing.T) {
	setupTestDB(t)
	patient := seedPatient(t)

	recorder := postJSON(t, SaveBudget, gin.H{
		"paciente_id":    patient.ID,
		"data_orcamento": "2024-01-05",
		"desconto":       40,
		"itens": []gin.H{
			{"procedimento": "Restauração", "quantidade": 1, "valor_unitario": 100},
			{"procedimento": "Implante", "quantidade": 1, "valor_unitario": 300},
		},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var budget Models.Budget
	require.NoError(t, Models.DB.Order("id desc").First(&budget).Error)
	treatment := approveBudget(t, budget.ID)
	assert.Equal(t, 360.0, treatment.TotalValue)

	var procedures []Models.TreatmentProcedure
	require.NoError(t, Models.DB.Where("treatment_id = ?", treatment.ID).Order("id").Find(&procedures).Error)
	require.Len(t, procedures, 2)
	assert.InDelta(t, 90.0, procedures[0].Value, 1e-9)
	assert.InDelta(t, 270.0, procedures[1].Value, 1e-9)
	assert.InDelta(t, treatment.TotalValue, procedures[0].Value+procedures[1].Value, 1e-9)
}

func TestRejectBudgetIsPureFlip(t *testing.T) {
	setupTestDB(t)
	patient := seedPatient(t)
	budget := seedBudget(t, patient.ID)

	recorder := postJSON(t, RejectBudget, gin.H{"id": budget.ID})
	require.Equal(t, http.StatusOK, recorder.Code)

	var rejected Models.Budget
	require.NoError(t, Models.DB.First(&rejected, budget.ID).Error)
	assert.Equal(t, Models.BudgetRejected, rejected.Status)

	var treatments int64
	Models.DB.Model(&Models.Treatment{}).Count(&treatments)
	assert.Zero(t, treatments)
}

func TestRecordSessionUpfrontPaid(t *testing.T) {
	setupTestDB(t)
	patient := seedPatient(t)
	budget := seedBudget(t, patient.ID)
	treatment := approveBudget(t, budget.ID)

	var procedures []Models.TreatmentProcedure
	require.NoError(t, Models.DB.Where("treatment_id = ?", treatment.ID).Order("id").Find(&procedures).Error)
	require.Len(t, procedures, 2)

	recorder := postJSON(t, RecordSession, gin.H{
		"tratamento_id": treatment.ID,
		"data_sessao":   "2024-01-10",
		"numero_sessao": 1,
		"procedimentos": []gin.H{
			{"tratamento_procedimento_id": procedures[0].ID, "gerar_cobranca": true, "status_procedimento": "realizado"},
			{"tratamento_procedimento_id": procedures[1].ID, "gerar_cobranca": true, "status_procedimento": "realizado"},
		},
		"pagamento": gin.H{
			"tipo_parcelamento": "avista",
			"forma_pagamento":   "pix",
		},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var receivables []Models.Receivable
	require.NoError(t, Models.DB.Find(&receivables).Error)
	require.Len(t, receivables, 1)
	assert.Equal(t, 180.0, receivables[0].Value)
	assert.Equal(t, Models.ReceivablePaid, receivables[0].Status)
	assert.Equal(t, "2024-01-10", receivables[0].ReceiveDate)

	// The discounted session total settles in full: paid equals the
	// treatment total, nothing stays pending.
	var updated Models.Treatment
	require.NoError(t, Models.DB.First(&updated, treatment.ID).Error)
	assert.Equal(t, 180.0, updated.PaidValue)
	assert.Equal(t, 0.0, updated.PendingValue)
	assert.Equal(t, updated.TotalValue, updated.PaidValue+updated.PendingValue)

	var done int64
	Models.DB.Model(&Models.TreatmentProcedure{}).
		Where("treatment_id = ? AND status = ?", treatment.ID, Models.ProcedureDone).
		Count(&done)
	assert.Equal(t, int64(2), done)

	// Both session procedures link to the single created receivable.
	var sessionProcs []Models.SessionProcedure
	require.NoError(t, Models.DB.Find(&sessionProcs).Error)
	require.Len(t, sessionProcs, 2)
	for _, proc := range sessionProcs {
		require.NotNil(t, proc.ReceivableID)
		assert.Equal(t, receivables[0].ID, *proc.ReceivableID)
	}

	var records int64
	Models.DB.Model(&Models.ClinicalRecord{}).Where("patient_id = ?", patient.ID).Count(&records)
	assert.Equal(t, int64(2), records)
}

func TestRecordSessionInHouseInstallments(t *testing.T) {
	setupTestDB(t)
	patient := seedPatient(t)
	budget := seedBudget(t, patient.ID)
	treatment := approveBudget(t, budget.ID)

	var procedures []Models.TreatmentProcedure
	require.NoError(t, Models.DB.Where("treatment_id = ?", treatment.ID).Order("id").Find(&procedures).Error)

	recorder := postJSON(t, RecordSession, gin.H{
		"tratamento_id": treatment.ID,
		"data_sessao":   "2024-01-05",
		"numero_sessao": 1,
		"procedimentos": []gin.H{
			{"tratamento_procedimento_id": procedures[0].ID, "gerar_cobranca": true, "status_procedimento": "realizado"},
			{"tratamento_procedimento_id": procedures[1].ID, "gerar_cobranca": true, "status_procedimento": "realizado"},
		},
		"pagamento": gin.H{
			"tipo_parcelamento":     "carteira",
			"forma_pagamento":       "pix",
			"numero_parcelas":       3,
			"data_primeira_parcela": "2024-01-10",
		},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var receivables []Models.Receivable
	require.NoError(t, Models.DB.Order("due_date").Find(&receivables).Error)
	require.Len(t, receivables, 3)

	dueDates := []string{"2024-01-10", "2024-02-10", "2024-03-10"}
	for i, receivable := range receivables {
		assert.Equal(t, 60.0, receivable.Value)
		assert.Equal(t, dueDates[i], receivable.DueDate)
		assert.Equal(t, Models.ReceivablePending, receivable.Status)
	}

	// In-house installments settle nothing upfront.
	var updated Models.Treatment
	require.NoError(t, Models.DB.First(&updated, treatment.ID).Error)
	assert.Equal(t, 0.0, updated.PaidValue)
	assert.Equal(t, 180.0, updated.PendingValue)
}

func TestRecordSessionPartialOutcomeKeepsProcedureOpen(t *testing.T) {
	setupTestDB(t)
	patient := seedPatient(t)
	budget := seedBudget(t, patient.ID)
	treatment := approveBudget(t, budget.ID)

	var procedures []Models.TreatmentProcedure
	require.NoError(t, Models.DB.Where("treatment_id = ?", treatment.ID).Order("id").Find(&procedures).Error)

	recorder := postJSON(t, RecordSession, gin.H{
		"tratamento_id": treatment.ID,
		"data_sessao":   "2024-01-10",
		"numero_sessao": 1,
		"procedimentos": []gin.H{
			{"tratamento_procedimento_id": procedures[0].ID, "gerar_cobranca": false, "status_procedimento": "parcial"},
		},
		"pagamento": gin.H{
			"tipo_parcelamento": "avista",
			"forma_pagamento":   "pix",
		},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	// No charge was generated, so no ledger entry exists.
	var receivables int64
	Models.DB.Model(&Models.Receivable{}).Count(&receivables)
	assert.Zero(t, receivables)

	var open Models.TreatmentProcedure
	require.NoError(t, Models.DB.First(&open, procedures[0].ID).Error)
	assert.Equal(t, Models.ProcedurePending, open.Status)
}

func TestRecordSessionMarksLinkedAppointment(t *testing.T) {
	setupTestDB(t)
	patient := seedPatient(t)
	budget := seedBudget(t, patient.ID)
	treatment := approveBudget(t, budget.ID)

	appointment := Models.Appointment{
		PatientID:   patient.ID,
		PatientName: patient.Name,
		Date:        "2024-01-10",
		Status:      Models.AppointmentConfirmed,
	}
	require.NoError(t, Models.DB.Create(&appointment).Error)

	var procedures []Models.TreatmentProcedure
	require.NoError(t, Models.DB.Where("treatment_id = ?", treatment.ID).Order("id").Find(&procedures).Error)

	recorder := postJSON(t, RecordSession, gin.H{
		"tratamento_id":  treatment.ID,
		"agendamento_id": appointment.ID,
		"data_sessao":    "2024-01-10",
		"numero_sessao":  1,
		"procedimentos": []gin.H{
			{"tratamento_procedimento_id": procedures[0].ID, "gerar_cobranca": true, "status_procedimento": "realizado"},
		},
		"pagamento": gin.H{
			"tipo_parcelamento": "avista",
			"forma_pagamento":   "dinheiro",
		},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var updated Models.Appointment
	require.NoError(t, Models.DB.First(&updated, appointment.ID).Error)
	assert.Equal(t, Models.AppointmentDone, updated.Status)
}
