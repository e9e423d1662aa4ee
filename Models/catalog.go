package Models

import "gorm.io/gorm"

// StandardProcedure is the price catalog consulted when a budget line item is
// selected; its suggested value seeds the item's unit price.
type StandardProcedure struct {
	gorm.Model
	Name           string  `json:"nome"`
	SuggestedValue float64 `json:"valor_sugerido"`
	Active         bool    `json:"ativo"`
	ClinicID       uint    `json:"clinic_id"`
}
