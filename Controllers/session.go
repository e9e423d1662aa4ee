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

// FetchSessionPrerequisites loads everything the session form needs: the
// treatment's open procedures, the patient's upcoming appointments and the
// next sequential session number.
func FetchSessionPrerequisites(c *gin.Context) {
	var input struct {
		TreatmentID uint `json:"tratamento_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var treatment Models.Treatment
	if err := Models.DB.First(&treatment, input.TreatmentID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Treatment not found"})
		return
	}

	var procedures []Models.TreatmentProcedure
	if err := Models.DB.Model(&Models.TreatmentProcedure{}).
		Where("treatment_id = ? AND status IN ?", treatment.ID, []string{Models.ProcedurePending, Models.ProcedureActive}).
		Order("priority desc").
		Find(&procedures).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	today := time.Now().Format("2006-01-02")
	var appointments []Models.Appointment
	if err := Models.DB.Model(&Models.Appointment{}).
		Where("patient_id = ? AND date >= ?", treatment.PatientID, today).
		Order("date").
		Find(&appointments).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var lastNumber int
	Models.DB.Model(&Models.Session{}).
		Where("treatment_id = ?", treatment.ID).
		Select("COALESCE(MAX(number), 0)").
		Scan(&lastNumber)

	c.JSON(http.StatusOK, gin.H{
		"procedimentos":  procedures,
		"agendamentos":   appointments,
		"proxima_sessao": lastNumber + 1,
	})
}

type SelectedProcedure struct {
	TreatmentProcedureID uint   `json:"tratamento_procedimento_id"`
	GenerateCharge       bool   `json:"gerar_cobranca"`
	Outcome              string `json:"status_procedimento"` // realizado | parcial
	Notes                string `json:"observacoes_sessao"`
}

// RecordSession persists one clinical visit. The sequence below mirrors the
// console exactly: each step is an independent write, later steps depend on
// ids created earlier, and nothing rolls back. A failure after the session
// insert leaves a partially applied session behind; the raw error is
// surfaced so the operator can repair the data.
func RecordSession(c *gin.Context) {
	var input struct {
		TreatmentID   uint                `json:"tratamento_id"`
		AppointmentID *uint               `json:"agendamento_id"`
		SessionDate   string              `json:"data_sessao"`
		StartTime     string              `json:"hora_inicio"`
		EndTime       string              `json:"hora_fim"`
		Number        int                 `json:"numero_sessao"`
		Status        string              `json:"status"`
		Notes         string              `json:"observacoes"`
		Procedures    []SelectedProcedure `json:"procedimentos"`
		Payment       Models.PaymentPlan  `json:"pagamento"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Println(err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(input.Procedures) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Selecione pelo menos um procedimento realizado nesta sessão"})
		return
	}

	var treatment Models.Treatment
	if err := Models.DB.First(&treatment, input.TreatmentID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Treatment not found"})
		return
	}

	// Resolve the selected procedures against their treatment rows.
	selected := make([]Models.SessionProcedure, 0, len(input.Procedures))
	realizadoIDs := []uint{}
	for _, proc := range input.Procedures {
		var source Models.TreatmentProcedure
		if err := Models.DB.First(&source, proc.TreatmentProcedureID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Treatment procedure not found"})
			return
		}
		outcome := proc.Outcome
		if outcome == "" {
			outcome = Models.OutcomeFull
		}
		selected = append(selected, Models.SessionProcedure{
			TreatmentProcedureID: source.ID,
			Procedure:            source.Procedure,
			Tooth:                source.Tooth,
			Value:                source.Value,
			Outcome:              outcome,
			GenerateCharge:       proc.GenerateCharge,
			Notes:                proc.Notes,
		})
		if outcome == Models.OutcomeFull {
			realizadoIDs = append(realizadoIDs, source.ID)
		}
	}

	// 1. Insert the session row and capture its id.
	session := Models.Session{
		TreatmentID:   treatment.ID,
		AppointmentID: input.AppointmentID,
		SessionDate:   input.SessionDate,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		Number:        input.Number,
		Status:        input.Status,
		Notes:         input.Notes,
	}
	if session.Status == "" {
		session.Status = "realizada"
	}
	if err := Models.DB.Create(&session).Error; err != nil {
		log.Println(err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. Total chargeable amount over the charge-generating procedures.
	chargeProcs := make([]Models.SessionProcedure, 0, len(selected))
	for _, proc := range selected {
		if proc.GenerateCharge {
			chargeProcs = append(chargeProcs, proc)
		}
	}
	total := Models.ChargeableTotal(chargeProcs)

	// 3. Ledger entries per the chosen payment plan.
	receivables := Models.BuildReceivables(session, treatment.PatientID, treatment.ClinicID, chargeProcs, input.Payment)
	if len(receivables) > 0 {
		if err := Models.DB.Create(&receivables).Error; err != nil {
			log.Println(err.Error())
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	// 4. Session-procedure rows. The charge link points at the first created
	// receivable only, even when the plan produced several.
	for index := range selected {
		selected[index].SessionID = session.ID
		if selected[index].GenerateCharge && len(receivables) > 0 {
			selected[index].ReceivableID = &receivables[0].ID
		}
	}
	if err := Models.DB.Create(&selected).Error; err != nil {
		log.Println(err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 5. Fully-done procedures become concluido.
	for _, id := range realizadoIDs {
		if err := Models.DB.Model(&Models.TreatmentProcedure{}).Where("id = ?", id).Update("status", Models.ProcedureDone).Error; err != nil {
			log.Println(err.Error())
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	// 6. Recompute treatment balances from the amount settled this session.
	settled := input.Payment.SettledUpfront(total)
	newPaid := treatment.PaidValue + settled
	newPending := treatment.TotalValue - newPaid
	if err := Models.DB.Model(&Models.Treatment{}).Where("id = ?", treatment.ID).Updates(map[string]interface{}{
		"paid_value":    newPaid,
		"pending_value": newPending,
	}).Error; err != nil {
		log.Println(err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 7. A linked appointment is marked concluido.
	if input.AppointmentID != nil && *input.AppointmentID != 0 {
		if err := Models.DB.Model(&Models.Appointment{}).Where("id = ?", *input.AppointmentID).Update("status", Models.AppointmentDone).Error; err != nil {
			log.Println(err.Error())
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	// 8. Best effort: clinical-record entries per procedure. Failures are
	// logged and never block or roll back the session.
	for _, proc := range selected {
		summary := fmt.Sprintf("Sessão #%d", session.Number)
		if proc.Notes != "" {
			summary += " - " + proc.Notes
		}
		if input.Notes != "" {
			summary += "\nObservações da sessão: " + input.Notes
		}
		outcome := "Concluído"
		if proc.Outcome != Models.OutcomeFull {
			outcome = "Parcial"
		}
		record := Models.ClinicalRecord{
			PatientID: treatment.PatientID,
			Date:      input.SessionDate,
			Procedure: proc.Procedure,
			Tooth:     proc.Tooth,
			Summary:   summary,
			Notes:     fmt.Sprintf("Status: %s | Valor: R$ %.2f", outcome, proc.Value),
			ClinicID:  treatment.ClinicID,
		}
		if err := Models.DB.Create(&record).Error; err != nil {
			log.Printf("Failed to create clinical record for session %d: %v", session.ID, err)
		}
	}

	SSE.Broadcaster.Broadcast("refresh")
	c.JSON(http.StatusOK, gin.H{
		"message":        "Session Recorded Successfully",
		"session_id":     session.ID,
		"contas_criadas": len(receivables),
		"valor_sessao":   total,
		"valor_quitado":  settled,
		"valor_pago":     newPaid,
		"valor_pendente": newPending,
	})

}

func FetchSessionsByTreatment(c *gin.Context) {
	var input struct {
		TreatmentID uint `json:"tratamento_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var sessions []Models.Session
	if err := Models.DB.Model(&Models.Session{}).Where("treatment_id = ?", input.TreatmentID).Order("number desc").Find(&sessions).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessions)
}
