package postgres

import (
	"log"

	"github.com/sambashop/escrow-service/internal/config"
	"github.com/sambashop/escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.EscrowConfig) *gorm.DB {
	dsn := cfg.EscrowDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.TransactionModel{},
		&models.DisputeModel{},
		&models.TimelineEntryModel{},
		&models.PaymentEventModel{},
	)

	return db
}
