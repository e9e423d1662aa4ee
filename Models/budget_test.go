package Models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemLineTotal(t *testing.T) {
	assert.Equal(t, 100.0, ItemLineTotal(1, 100))
	assert.Equal(t, 100.0, ItemLineTotal(2, 50))
	assert.Equal(t, 0.0, ItemLineTotal(0, 80))
}

func TestComputeBudgetTotals(t *testing.T) {
	items := []BudgetItem{
		{Procedure: "Restauração", Quantity: 1, UnitPrice: 100, LineTotal: 100},
		{Procedure: "Limpeza", Quantity: 2, UnitPrice: 50, LineTotal: 100},
	}

	subtotal, final := ComputeBudgetTotals(items, 20)
	assert.Equal(t, 200.0, subtotal)
	assert.Equal(t, 180.0, final)
}

func TestComputeBudgetTotals_NoDiscount(t *testing.T) {
	items := []BudgetItem{
		{Procedure: "Canal", Quantity: 1, UnitPrice: 450, LineTotal: 450},
	}

	subtotal, final := ComputeBudgetTotals(items, 0)
	assert.Equal(t, 450.0, subtotal)
	assert.Equal(t, 450.0, final)
}

func TestComputeBudgetTotals_Empty(t *testing.T) {
	subtotal, final := ComputeBudgetTotals(nil, 10)
	assert.Equal(t, 0.0, subtotal)
	assert.Equal(t, -10.0, final)
}
