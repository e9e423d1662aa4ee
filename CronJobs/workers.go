package CronJobs

import (
	"fmt"
	"log"
	"time"

	"github.com/wagnermocelin/DentalApp/Models"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"
)

// OverdueMarker stamps pending payables past their due date with the stored
// "atrasado" status. Receivables are never stamped; their overdue state is
// derived on the read path only.
type OverdueMarker struct {
	DB *gorm.DB
}

func NewOverdueMarker(db *gorm.DB) *OverdueMarker {
	return &OverdueMarker{
		DB: db,
	}
}

// StartOverdueCron starts the job that sweeps payables once a day.
func (om *OverdueMarker) StartOverdueCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(1).Day().At("00:10").Do(func() {
		log.Println("Running overdue payables check...")
		if err := om.MarkOverduePayables(); err != nil {
			log.Printf("Error marking overdue payables: %v", err)
		}
	})

	scheduler.StartAsync()
	log.Println("Overdue payables cron job started")

	return scheduler
}

func (om *OverdueMarker) MarkOverduePayables() error {
	today := time.Now().Format("2006-01-02")

	result := om.DB.Model(&Models.Payable{}).
		Where("status = ? AND due_date < ?", Models.ReceivablePending, today).
		Update("status", Models.StatusOverdue)

	if result.Error != nil {
		return fmt.Errorf("failed to mark overdue payables: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		log.Printf("Marked %d payables as overdue", result.RowsAffected)
	}

	return nil
}
