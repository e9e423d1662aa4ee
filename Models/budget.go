package Models

import "gorm.io/gorm"

const (
	BudgetPending  = "pendente"
	BudgetApproved = "aprovado"
	BudgetRejected = "rejeitado"
)

type Budget struct {
	gorm.Model
	PatientID   uint         `json:"paciente_id"`
	PatientName string       `json:"paciente_nome" gorm:"-"`
	BudgetDate  string       `json:"data_orcamento"`
	Validity    string       `json:"validade"`
	Items       []BudgetItem `json:"itens" gorm:"foreignKey:BudgetID"`
	Discount    float64      `json:"desconto"`
	TotalValue  float64      `json:"valor_total"`
	FinalValue  float64      `json:"valor_final"`
	Notes       string       `json:"observacoes"`
	Status      string       `json:"status"`
	ClinicID    uint         `json:"clinic_id"`
}

type BudgetItem struct {
	gorm.Model
	BudgetID  uint    `json:"orcamento_id"`
	Procedure string  `json:"procedimento"`
	Tooth     string  `json:"dente"`
	Quantity  int     `json:"quantidade"`
	UnitPrice float64 `json:"valor_unitario"`
	LineTotal float64 `json:"valor_total"`
	Notes     string  `json:"observacoes"`
}

// ItemLineTotal is recomputed whenever quantity or unit price changes.
func ItemLineTotal(quantity int, unitPrice float64) float64 {
	return float64(quantity) * unitPrice
}

// ComputeBudgetTotals returns the subtotal over the current line items and
// the final value after the discount.
func ComputeBudgetTotals(items []BudgetItem, discount float64) (subtotal float64, final float64) {
	for _, item := range items {
		subtotal += item.LineTotal
	}
	return subtotal, subtotal - discount
}
