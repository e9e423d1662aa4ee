package Models

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ClinicExists(id uint) (bool, error) {
	var count int64
	err := DB.Model(&Clinic{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func ConnectDataBase() {

	err := godotenv.Load(".env")

	if err != nil {
		log.Fatalf("Error loading .env file")
	}

	DbHost := os.Getenv("DB_HOST")
	DbUser := os.Getenv("DB_USER")
	DbPassword := os.Getenv("DB_PASSWORD")
	DbName := os.Getenv("DB_NAME")
	DbPort := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable", DbHost, DbUser, DbPassword, DbName, DbPort)
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		fmt.Println("Cannot connect to database ")
		log.Fatal("connection error:", err)
	} else {
		fmt.Println("We are connected to the database ")
	}

	Migrate(DB)
}

// Migrate runs AutoMigrate in dependency order so foreign keys resolve.
func Migrate(db *gorm.DB) {
	// First migrate models with no dependencies
	db.AutoMigrate(&Clinic{})
	db.AutoMigrate(&StandardProcedure{})
	db.AutoMigrate(&FinancialCategory{})
	db.AutoMigrate(&ClinicSetting{})

	// Then migrate models that depend on the above
	db.AutoMigrate(&User{})
	db.AutoMigrate(&Patient{})

	// Then migrate models that depend on the previous ones
	db.AutoMigrate(&Appointment{})
	db.AutoMigrate(&Budget{})
	db.AutoMigrate(&BudgetItem{})
	db.AutoMigrate(&Treatment{})
	db.AutoMigrate(&TreatmentProcedure{})

	// Finally migrate models that depend on multiple other models
	db.AutoMigrate(&Session{})
	db.AutoMigrate(&SessionProcedure{})
	db.AutoMigrate(&Receivable{})
	db.AutoMigrate(&Payable{})
	db.AutoMigrate(&ClinicalRecord{})
	db.AutoMigrate(&Prescription{})
	db.AutoMigrate(&LeaveCertificate{})
}
