package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/depastori/clinica-psi/internal/config"
	"github.com/depastori/clinica-psi/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Practitioner{},
		&models.Patient{},
		&models.Appointment{},
		&models.PaymentSettings{},
		&models.PaymentMethod{},
		&models.Charge{},
		&models.Receipt{},
		&models.Package{},
		&models.LedgerSequence{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// moeda vazia em cadastros antigos vira BRL
	db.Exec(`
        UPDATE patients
        SET currency = 'BRL'
        WHERE currency IS NULL OR currency = ''
    `)

	return db
}
