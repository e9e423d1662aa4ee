package Models

import (
	"gorm.io/gorm"
)

type Patient struct {
	gorm.Model
	Name       string        `json:"nome"`
	CPF        string        `json:"cpf"`
	BirthDate  string        `json:"data_nascimento"`
	Phone      string        `json:"telefone"`
	Email      string        `json:"email"`
	Address    string        `json:"endereco"`
	City       string        `json:"cidade"`
	State      string        `json:"estado"`
	ZipCode    string        `json:"cep"`
	ClinicID   uint          `json:"clinic_id"`
	History    []Appointment `json:"history" gorm:"foreignKey:PatientID"`
	Budgets    []Budget      `json:"orcamentos" gorm:"foreignKey:PatientID"`
	Treatments []Treatment   `json:"tratamentos" gorm:"foreignKey:PatientID"`
}
