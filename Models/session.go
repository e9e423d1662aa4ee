package Models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Payment structuring modes, chosen once per session.
const (
	PlanUpfront    = "avista"
	PlanCreditCard = "cartao_credito"
	PlanInHouse    = "carteira"
)

const (
	OutcomeFull    = "realizado"
	OutcomePartial = "parcial"
)

type Session struct {
	gorm.Model
	TreatmentID   uint   `json:"tratamento_id"`
	AppointmentID *uint  `json:"agendamento_id" gorm:"default:null"`
	SessionDate   string `json:"data_sessao"`
	StartTime     string `json:"hora_inicio"`
	EndTime       string `json:"hora_fim"`
	Number        int    `json:"numero_sessao"`
	Status        string `json:"status"`
	Notes         string `json:"observacoes"`
}

type SessionProcedure struct {
	gorm.Model
	SessionID            uint    `json:"sessao_id"`
	TreatmentProcedureID uint    `json:"tratamento_procedimento_id"`
	Procedure            string  `json:"procedimento"`
	Tooth                string  `json:"dente"`
	Value                float64 `json:"valor"`
	Outcome              string  `json:"status"`
	GenerateCharge       bool    `json:"gerar_cobranca"`
	ReceivableID         *uint   `json:"conta_receber_id" gorm:"default:null"`
	Notes                string  `json:"observacoes"`
}

// PaymentPlan applies to the sum of all charge-generating procedures of one
// session, not per procedure.
type PaymentPlan struct {
	Type             string `json:"tipo_parcelamento"`
	PaymentForm      string `json:"forma_pagamento"`
	Installments     int    `json:"numero_parcelas"`
	FirstInstallment string `json:"data_primeira_parcela"`
}

// Payment forms that settle a receivable the moment it is created.
var settledForms = map[string]bool{
	"dinheiro":      true,
	"pix":           true,
	"cartao_debito": true,
}

// PaidOnReceipt reports whether the chosen payment form settles immediately.
func (p PaymentPlan) PaidOnReceipt() bool {
	return settledForms[p.PaymentForm]
}

// SettledUpfront returns the amount considered settled at session time: the
// full total for a paid upfront session or any credit-card split (the card
// acquirer pays the clinic in full), zero otherwise. Carteira installments
// and unpaid upfront sessions stay pending until each receivable is settled.
func (p PaymentPlan) SettledUpfront(total float64) float64 {
	if p.Type == PlanCreditCard {
		return total
	}
	if p.Type == PlanUpfront && p.PaidOnReceipt() {
		return total
	}
	return 0
}

// ChargeableTotal sums the value of the procedures that generate a charge.
func ChargeableTotal(procs []SessionProcedure) float64 {
	var total float64
	for _, proc := range procs {
		if proc.GenerateCharge {
			total += proc.Value
		}
	}
	return total
}

// AddMonths shifts an ISO date by the given number of months, with the same
// end-of-month normalization the console relied on.
func AddMonths(date string, months int) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.AddDate(0, months, 0).Format("2006-01-02")
}

// BuildReceivables expands one session's payment plan into ledger entries.
//
// avista: one entry for the full total, settled same day for cash-like forms.
// cartao_credito: one entry for the full total, always settled; the acquirer
// assumes the receivable risk.
// carteira: n entries of total/n due monthly from the first installment date,
// all pending. The division remainder is not redistributed, so the installment
// sum can drift from the total by a fractional amount.
func BuildReceivables(session Session, patientID uint, clinicID uint, chargeProcs []SessionProcedure, plan PaymentPlan) []Receivable {
	if len(chargeProcs) == 0 {
		return nil
	}
	total := ChargeableTotal(chargeProcs)

	var names []string
	for _, proc := range chargeProcs {
		names = append(names, proc.Procedure)
	}

	switch plan.Type {
	case PlanUpfront, PlanCreditCard:
		status := ReceivablePending
		receiveDate := ""
		if plan.Type == PlanCreditCard || plan.PaidOnReceipt() {
			status = ReceivablePaid
			receiveDate = session.SessionDate
		}
		notes := fmt.Sprintf("Pagamento à vista - Sessão de tratamento #%d", session.ID)
		if plan.Type == PlanCreditCard {
			notes = fmt.Sprintf("Parcelado em %dx no cartão de crédito", plan.Installments)
		}
		return []Receivable{{
			PatientID:   patientID,
			Description: fmt.Sprintf("Sessão #%d - %s", session.Number, strings.Join(names, ", ")),
			Value:       total,
			DueDate:     session.SessionDate,
			ReceiveDate: receiveDate,
			PaymentForm: plan.PaymentForm,
			Status:      status,
			Category:    "Tratamento",
			Notes:       notes,
			ClinicID:    clinicID,
		}}
	case PlanInHouse:
		installments := plan.Installments
		if installments < 1 {
			installments = 1
		}
		value := total / float64(installments)
		entries := make([]Receivable, 0, installments)
		for i := 0; i < installments; i++ {
			entries = append(entries, Receivable{
				PatientID:   patientID,
				Description: fmt.Sprintf("Parcela %d/%d - Sessão #%d", i+1, installments, session.Number),
				Value:       value,
				DueDate:     AddMonths(plan.FirstInstallment, i),
				PaymentForm: plan.PaymentForm,
				Status:      ReceivablePending,
				Category:    "Tratamento",
				Notes:       fmt.Sprintf("Parcelamento em carteira - Sessão de tratamento #%d", session.ID),
				ClinicID:    clinicID,
			})
		}
		return entries
	}
	return nil
}
