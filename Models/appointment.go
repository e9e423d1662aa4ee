package Models

import "gorm.io/gorm"

const (
	AppointmentPending   = "pendente"
	AppointmentConfirmed = "confirmado"
	AppointmentDone      = "concluido"
	AppointmentCancelled = "cancelado"
)

type Appointment struct {
	gorm.Model
	PatientID   uint   `json:"paciente_id"`
	PatientName string `json:"paciente_nome"`
	Date        string `json:"data"`
	StartTime   string `json:"hora_inicio"`
	EndTime     string `json:"hora_fim"`
	Procedure   string `json:"procedimento"`
	Notes       string `json:"observacoes"`
	Status      string `json:"status"`
	ClinicID    uint   `json:"clinic_id"`
}
