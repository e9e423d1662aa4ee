package Models

import "gorm.io/gorm"

type Clinic struct {
	gorm.Model
	Name         string `json:"nome_clinica" gorm:"unique"`
	CNPJ         string `json:"cnpj"`
	Address      string `json:"endereco"`
	City         string `json:"cidade"`
	State        string `json:"estado"`
	ZipCode      string `json:"cep"`
	Phone        string `json:"telefone"`
	Email        string `json:"email"`
	OpeningHours string `json:"horario_funcionamento"`
}

// ClinicSetting holds per-clinic boolean preferences such as the
// notification toggles of the settings screen.
type ClinicSetting struct {
	gorm.Model
	ClinicID uint   `json:"clinic_id"`
	Key      string `json:"key"`
	Value    bool   `json:"value"`
}
