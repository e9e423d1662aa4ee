package Models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chargeProcs() []SessionProcedure {
	return []SessionProcedure{
		{Procedure: "Restauração", Value: 100, GenerateCharge: true},
		{Procedure: "Limpeza", Value: 80, GenerateCharge: true},
	}
}

func TestChargeableTotal(t *testing.T) {
	procs := []SessionProcedure{
		{Value: 100, GenerateCharge: true},
		{Value: 80, GenerateCharge: false},
		{Value: 50, GenerateCharge: true},
	}
	assert.Equal(t, 150.0, ChargeableTotal(procs))
}

func TestAddMonths(t *testing.T) {
	assert.Equal(t, "2024-02-10", AddMonths("2024-01-10", 1))
	assert.Equal(t, "2024-03-10", AddMonths("2024-01-10", 2))
	assert.Equal(t, "2025-01-10", AddMonths("2024-01-10", 12))
	// time.AddDate normalizes overflowing days instead of clamping.
	assert.Equal(t, "2024-03-02", AddMonths("2024-01-31", 1))
	// Unparseable input passes through untouched.
	assert.Equal(t, "not-a-date", AddMonths("not-a-date", 1))
}

func TestPaidOnReceipt(t *testing.T) {
	assert.True(t, PaymentPlan{PaymentForm: "dinheiro"}.PaidOnReceipt())
	assert.True(t, PaymentPlan{PaymentForm: "pix"}.PaidOnReceipt())
	assert.True(t, PaymentPlan{PaymentForm: "cartao_debito"}.PaidOnReceipt())
	assert.False(t, PaymentPlan{PaymentForm: "boleto"}.PaidOnReceipt())
	assert.False(t, PaymentPlan{PaymentForm: ""}.PaidOnReceipt())
}

func TestSettledUpfront(t *testing.T) {
	assert.Equal(t, 180.0, PaymentPlan{Type: PlanUpfront, PaymentForm: "pix"}.SettledUpfront(180))
	assert.Equal(t, 0.0, PaymentPlan{Type: PlanUpfront, PaymentForm: "boleto"}.SettledUpfront(180))
	// Credit card settles in full no matter the form or installment count.
	assert.Equal(t, 180.0, PaymentPlan{Type: PlanCreditCard, Installments: 10}.SettledUpfront(180))
	// Carteira installments stay pending even for cash-like forms.
	assert.Equal(t, 0.0, PaymentPlan{Type: PlanInHouse, PaymentForm: "pix", Installments: 3}.SettledUpfront(180))
}

func TestBuildReceivables_UpfrontPaid(t *testing.T) {
	session := Session{Number: 1, SessionDate: "2024-01-10"}
	session.ID = 7
	plan := PaymentPlan{Type: PlanUpfront, PaymentForm: "pix"}

	entries := BuildReceivables(session, 3, 1, chargeProcs(), plan)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, 180.0, entry.Value)
	assert.Equal(t, ReceivablePaid, entry.Status)
	assert.Equal(t, "2024-01-10", entry.DueDate)
	assert.Equal(t, "2024-01-10", entry.ReceiveDate)
	assert.Equal(t, "pix", entry.PaymentForm)
	assert.Equal(t, uint(3), entry.PatientID)
	assert.Contains(t, entry.Description, "Sessão #1")
	assert.Contains(t, entry.Description, "Restauração")
}

func TestBuildReceivables_UpfrontUnpaidForm(t *testing.T) {
	session := Session{Number: 2, SessionDate: "2024-01-10"}
	plan := PaymentPlan{Type: PlanUpfront, PaymentForm: "boleto"}

	entries := BuildReceivables(session, 3, 1, chargeProcs(), plan)
	require.Len(t, entries, 1)
	assert.Equal(t, ReceivablePending, entries[0].Status)
	assert.Empty(t, entries[0].ReceiveDate)
}

func TestBuildReceivables_CreditCardAlwaysPaid(t *testing.T) {
	session := Session{Number: 1, SessionDate: "2024-01-10"}
	plan := PaymentPlan{Type: PlanCreditCard, PaymentForm: "cartao_credito", Installments: 10}

	entries := BuildReceivables(session, 3, 1, chargeProcs(), plan)
	require.Len(t, entries, 1)
	assert.Equal(t, 180.0, entries[0].Value)
	assert.Equal(t, ReceivablePaid, entries[0].Status)
	assert.Equal(t, "2024-01-10", entries[0].ReceiveDate)
	assert.Contains(t, entries[0].Notes, "10x")
}

func TestBuildReceivables_InHouseInstallments(t *testing.T) {
	session := Session{Number: 1, SessionDate: "2024-01-05"}
	plan := PaymentPlan{Type: PlanInHouse, PaymentForm: "dinheiro", Installments: 3, FirstInstallment: "2024-01-10"}

	entries := BuildReceivables(session, 3, 1, chargeProcs(), plan)
	require.Len(t, entries, 3)

	dueDates := []string{"2024-01-10", "2024-02-10", "2024-03-10"}
	for i, entry := range entries {
		assert.Equal(t, 60.0, entry.Value)
		assert.Equal(t, dueDates[i], entry.DueDate)
		assert.Equal(t, ReceivablePending, entry.Status)
		assert.Empty(t, entry.ReceiveDate)
	}
	assert.Equal(t, "Parcela 1/3 - Sessão #1", entries[0].Description)
	assert.Equal(t, "Parcela 3/3 - Sessão #1", entries[2].Description)
}

func TestBuildReceivables_InHouseRoundingGap(t *testing.T) {
	session := Session{Number: 1, SessionDate: "2024-01-05"}
	procs := []SessionProcedure{{Procedure: "Canal", Value: 100, GenerateCharge: true}}
	plan := PaymentPlan{Type: PlanInHouse, PaymentForm: "pix", Installments: 3, FirstInstallment: "2024-01-10"}

	entries := BuildReceivables(session, 3, 1, procs, plan)
	require.Len(t, entries, 3)

	// Every installment carries total/n; the remainder is not redistributed,
	// so the sum only matches the total up to float precision.
	var sum float64
	for _, entry := range entries {
		assert.InDelta(t, 100.0/3.0, entry.Value, 1e-9)
		sum += entry.Value
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestBuildReceivables_NoCharges(t *testing.T) {
	session := Session{Number: 1, SessionDate: "2024-01-10"}
	plan := PaymentPlan{Type: PlanUpfront, PaymentForm: "pix"}

	assert.Nil(t, BuildReceivables(session, 3, 1, nil, plan))
}
