package database

import (
	"fmt"
	"os"
	"strconv"

	"backoffice/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	sslmode := os.Getenv("DB_SSLMODE")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, pass, name, port, sslmode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	DB = db
	log.Info().Msg("Connected to database")

	autoMigrateEnv := os.Getenv("DB_AUTO_MIGRATE")
	autoMigrate, err := strconv.ParseBool(autoMigrateEnv)
	if err != nil {
		log.Warn().Str("value", autoMigrateEnv).Msg("Invalid value for DB_AUTO_MIGRATE")
	}

	if autoMigrate {
		log.Info().Msg("Starting auto-migration")

		if err := DB.AutoMigrate(
			&models.TransactionRecord{},
			&models.ApprovalSchedule{},
			&models.ApprovalAudit{},
		); err != nil {
			log.Fatal().Err(err).Msg("Failed to auto-migrate database")
		}

		log.Info().Msg("Auto migration completed")
	}
}
