package Models

import (
	"time"

	"gorm.io/gorm"
)

type ClinicalRecord struct {
	gorm.Model
	PatientID uint   `json:"paciente_id"`
	Date      string `json:"data"`
	Procedure string `json:"procedimento"`
	Tooth     string `json:"dente"`
	Summary   string `json:"descricao"`
	Notes     string `json:"observacoes"`
	ClinicID  uint   `json:"clinic_id"`
}

type Prescription struct {
	gorm.Model
	PatientID   uint   `json:"paciente_id"`
	IssueDate   string `json:"data_emissao"`
	Medications string `json:"medicamentos"`
	Notes       string `json:"observacoes"`
	ClinicID    uint   `json:"clinic_id"`
}

type LeaveCertificate struct {
	gorm.Model
	PatientID uint   `json:"paciente_id"`
	IssueDate string `json:"data_emissao"`
	StartDate string `json:"data_inicio"`
	EndDate   string `json:"data_fim"`
	Days      int    `json:"dias"`
	CID       string `json:"cid"`
	Reason    string `json:"motivo"`
	Notes     string `json:"observacoes"`
	ClinicID  uint   `json:"clinic_id"`
}

// CertificateDays counts the leave span, inclusive of both endpoints.
func CertificateDays(startDate, endDate string) int {
	t1, err1 := time.Parse("2006-01-02", startDate)
	t2, err2 := time.Parse("2006-01-02", endDate)
	if err1 != nil || err2 != nil {
		return 0
	}
	days := int(t2.Sub(t1).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}
