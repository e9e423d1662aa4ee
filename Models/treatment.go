package Models

import "gorm.io/gorm"

const (
	TreatmentActive    = "em_andamento"
	TreatmentDone      = "concluido"
	TreatmentPaused    = "pausado"
	TreatmentCancelled = "cancelado"
)

const (
	ProcedurePending   = "pendente"
	ProcedureActive    = "em_andamento"
	ProcedureDone      = "concluido"
	ProcedureCancelled = "cancelado"
)

type Treatment struct {
	gorm.Model
	BudgetID     uint                 `json:"orcamento_id"`
	PatientID    uint                 `json:"paciente_id"`
	PatientName  string               `json:"paciente_nome" gorm:"-"`
	StartDate    string               `json:"data_inicio"`
	EndDate      string               `json:"data_termino"`
	TotalValue   float64              `json:"valor_total"`
	PaidValue    float64              `json:"valor_pago"`
	PendingValue float64              `json:"valor_pendente"`
	Status       string               `json:"status"`
	Notes        string               `json:"observacoes"`
	Procedures   []TreatmentProcedure `json:"procedimentos" gorm:"foreignKey:TreatmentID"`
	ClinicID     uint                 `json:"clinic_id"`
}

type TreatmentProcedure struct {
	gorm.Model
	TreatmentID uint    `json:"tratamento_id"`
	Procedure   string  `json:"procedimento"`
	Tooth       string  `json:"dente"`
	Value       float64 `json:"valor"`
	Status      string  `json:"status"`
	Priority    string  `json:"prioridade"`
}
