package tasks

import (
	"errors"

	"backoffice/config"
	"backoffice/database"
	"backoffice/models"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedSchedules inserts the configured threshold defaults for target
// types the database does not know yet. Existing rows are left alone
// so runtime edits survive restarts.
func SeedSchedules(defaults []config.ScheduleDefault) {
	for _, def := range defaults {
		if def.TargetType == "" {
			continue
		}

		var existing models.ApprovalSchedule
		err := database.DB.Where("target_type = ?", def.TargetType).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Str("target_type", def.TargetType).Msg("Failed to check schedule")
			continue
		}

		row := models.ApprovalSchedule{
			TargetType:          def.TargetType,
			AutoApprovedAmount:  decimal.NewFromFloat(def.AutoApprovedAmount),
			MaxWithdrawalAmount: decimal.NewFromFloat(def.MaxWithdrawalAmount),
		}
		if err := database.DB.Create(&row).Error; err != nil {
			log.Error().Err(err).Str("target_type", def.TargetType).Msg("Failed to seed schedule")
			continue
		}
		log.Info().Str("target_type", def.TargetType).Msg("Seeded approval schedule")
	}
}
