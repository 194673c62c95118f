package schedule

import (
	"errors"

	"backoffice/database"
	"backoffice/helpers"
	"backoffice/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListSchedules returns every configured threshold row.
func ListSchedules(c *fiber.Ctx) error {
	var schedules []models.ApprovalSchedule
	if err := database.DB.Order("target_type").Find(&schedules).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_SCHEDULES")
	}
	return helpers.JSONSuccess(c, "Schedules fetched", schedules)
}

type UpsertRequest struct {
	TargetType          string          `json:"target_type"`
	AutoApprovedAmount  decimal.Decimal `json:"auto_approved_amount"`
	MaxWithdrawalAmount decimal.Decimal `json:"max_withdrawal_amount"`
}

// UpsertSchedule creates or updates the thresholds for one target
// type. Target types without a row keep the implicit zero threshold.
func UpsertSchedule(c *fiber.Ctx) error {
	var req UpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.TargetType == "" {
		return helpers.JSONError(c, "TARGET_TYPE_REQUIRED")
	}
	if req.AutoApprovedAmount.IsNegative() || req.MaxWithdrawalAmount.IsNegative() {
		return helpers.JSONError(c, "AMOUNTS_MUST_NOT_BE_NEGATIVE")
	}

	var existing models.ApprovalSchedule
	err := database.DB.Where("target_type = ?", req.TargetType).First(&existing).Error
	switch {
	case err == nil:
		existing.AutoApprovedAmount = req.AutoApprovedAmount
		existing.MaxWithdrawalAmount = req.MaxWithdrawalAmount
		if err := database.DB.Save(&existing).Error; err != nil {
			return helpers.JSONError(c, "FAILED_TO_UPDATE_SCHEDULE")
		}
		return helpers.JSONSuccess(c, "Schedule updated", existing)

	case errors.Is(err, gorm.ErrRecordNotFound):
		created := models.ApprovalSchedule{
			TargetType:          req.TargetType,
			AutoApprovedAmount:  req.AutoApprovedAmount,
			MaxWithdrawalAmount: req.MaxWithdrawalAmount,
		}
		if err := database.DB.Create(&created).Error; err != nil {
			return helpers.JSONError(c, "FAILED_TO_CREATE_SCHEDULE")
		}
		return helpers.JSONSuccess(c, "Schedule created", created)

	default:
		return helpers.JSONError(c, "FAILED_TO_LOAD_SCHEDULE")
	}
}
