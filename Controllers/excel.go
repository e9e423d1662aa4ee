package Controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/wagnermocelin/DentalApp/Models"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
)

func ExportReceivablesTable(c *gin.Context) {
	var input struct {
		DateFrom string `json:"date_from"`
		DateTo   string `json:"date_to"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var receivables []Models.Receivable
	query := getScopedDB(c)
	if input.DateFrom != "" && input.DateTo != "" {
		query = query.Where("due_date BETWEEN ? AND ?", input.DateFrom, input.DateTo)
	}
	if err := query.Order("due_date").Find(&receivables).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patientNames := map[uint]string{}
	for index := range receivables {
		if receivables[index].PatientID != 0 {
			if _, ok := patientNames[receivables[index].PatientID]; !ok {
				var patient Models.Patient
				Models.DB.Model(&Models.Patient{}).Where("id = ?", receivables[index].PatientID).First(&patient)
				patientNames[receivables[index].PatientID] = patient.Name
			}
		}
	}

	today := time.Now().Format("2006-01-02")

	headers := map[string]string{
		"A1": "Vencimento",
		"B1": "Descrição",
		"C1": "Paciente",
		"D1": "Valor",
		"E1": "Forma de Pagamento",
		"F1": "Status",
		"G1": "Recebido em",
	}
	file := excelize.NewFile()
	sheet := "Contas a Receber"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i := 0; i < len(receivables); i++ {
		appendRowReceivable(sheet, file, i, receivables, patientNames, today)
	}
	filename := "./ContasReceber.xlsx"
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
	}
	c.File(filename)
}

func appendRowReceivable(sheet string, file *excelize.File, index int, rows []Models.Receivable, patientNames map[uint]string, today string) (fileWriter *excelize.File) {
	rowCount := index + 2
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), rows[index].DueDate)
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), rows[index].Description)
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), patientNames[rows[index].PatientID])
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), rows[index].Value)
	file.SetCellValue(sheet, fmt.Sprintf("E%v", rowCount), rows[index].PaymentForm)
	file.SetCellValue(sheet, fmt.Sprintf("F%v", rowCount), Models.LedgerDisplayStatus(rows[index].Status, rows[index].DueDate, today))
	file.SetCellValue(sheet, fmt.Sprintf("G%v", rowCount), rows[index].ReceiveDate)
	return file
}

func ExportPayablesTable(c *gin.Context) {
	var input struct {
		DateFrom string `json:"date_from"`
		DateTo   string `json:"date_to"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var payables []Models.Payable
	query := getScopedDB(c)
	if input.DateFrom != "" && input.DateTo != "" {
		query = query.Where("due_date BETWEEN ? AND ?", input.DateFrom, input.DateTo)
	}
	if err := query.Order("due_date").Find(&payables).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	today := time.Now().Format("2006-01-02")

	headers := map[string]string{
		"A1": "Vencimento",
		"B1": "Descrição",
		"C1": "Categoria",
		"D1": "Valor",
		"E1": "Status",
		"F1": "Pago em",
	}
	file := excelize.NewFile()
	sheet := "Contas a Pagar"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i := 0; i < len(payables); i++ {
		appendRowPayable(sheet, file, i, payables, today)
	}
	filename := "./ContasPagar.xlsx"
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
	}
	c.File(filename)
}

func appendRowPayable(sheet string, file *excelize.File, index int, rows []Models.Payable, today string) (fileWriter *excelize.File) {
	rowCount := index + 2
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), rows[index].DueDate)
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), rows[index].Description)
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), rows[index].Category)
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), rows[index].Value)
	file.SetCellValue(sheet, fmt.Sprintf("E%v", rowCount), Models.LedgerDisplayStatus(rows[index].Status, rows[index].DueDate, today))
	file.SetCellValue(sheet, fmt.Sprintf("F%v", rowCount), rows[index].PayDate)
	return file
}
