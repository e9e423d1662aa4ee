package Models

import "gorm.io/gorm"

const (
	ReceivablePending   = "pendente"
	ReceivablePaid      = "pago"
	ReceivableCancelled = "cancelado"
	// Never stored on receivables; derived at read time. Payables may carry
	// it stored as well (the cron job writes it).
	StatusOverdue = "atrasado"
)

type Receivable struct {
	gorm.Model
	PatientID   uint    `json:"paciente_id"`
	PatientName string  `json:"paciente_nome" gorm:"-"`
	Description string  `json:"descricao"`
	Value       float64 `json:"valor"`
	DueDate     string  `json:"data_vencimento"`
	ReceiveDate string  `json:"data_recebimento"`
	PaymentForm string  `json:"forma_recebimento"`
	Status      string  `json:"status"`
	Category    string  `json:"categoria"`
	Notes       string  `json:"observacoes"`
	ClinicID    uint    `json:"clinic_id"`
}

type Payable struct {
	gorm.Model
	Supplier    string  `json:"fornecedor"`
	Description string  `json:"descricao"`
	Value       float64 `json:"valor"`
	DueDate     string  `json:"data_vencimento"`
	PayDate     string  `json:"data_pagamento"`
	PaymentForm string  `json:"forma_pagamento"`
	Status      string  `json:"status"`
	Category    string  `json:"categoria"`
	Notes       string  `json:"observacoes"`
	ClinicID    uint    `json:"clinic_id"`
}

type FinancialCategory struct {
	gorm.Model
	Name     string `json:"nome"`
	Type     string `json:"tipo"` // receita | despesa
	ClinicID uint   `json:"clinic_id"`
}

// LedgerDisplayStatus derives the status shown for a ledger entry. Paid and
// cancelled pass through. A stored "atrasado" (possible on payables only)
// counts as overdue, and a pending entry past its due date renders overdue
// too, so stored and derived overdue filter the same way. Dates are ISO
// strings, compared lexically.
func LedgerDisplayStatus(status, dueDate, today string) string {
	switch status {
	case ReceivablePaid, ReceivableCancelled:
		return status
	case StatusOverdue:
		return StatusOverdue
	}
	if dueDate != "" && dueDate < today {
		return StatusOverdue
	}
	return ReceivablePending
}

// IsOverdue reports whether an entry filters as overdue.
func IsOverdue(status, dueDate, today string) bool {
	return LedgerDisplayStatus(status, dueDate, today) == StatusOverdue
}
