package record

import (
	"time"

	"backoffice/database"
	"backoffice/helpers"
	"backoffice/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IngestRequest struct {
	RecordID string `json:"record_id"`

	UserID string `json:"user_id"`
	Mobile string `json:"mobile"`
	Name   string `json:"name"`

	Kind       string `json:"kind"`
	TargetType string `json:"target_type"`

	Amount           decimal.Decimal `json:"amount"`
	DepositAmount    decimal.Decimal `json:"deposit_amount"`
	WithdrawAmount   decimal.Decimal `json:"withdraw_amount"`
	ValidBetAmount   decimal.Decimal `json:"valid_bet_amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`

	SubmitTime string `json:"submit_time"` // RFC3339, defaults to now
	Remark     string `json:"remark"`
}

var validKinds = map[string]bool{
	models.KindCommission: true,
	models.KindRebate:     true,
	models.KindCashback:   true,
	models.KindDeposit:    true,
	models.KindWithdraw:   true,
}

// IngestRecord accepts a new pending record from the upstream data
// provider. Ingestion never approves anything: every record enters
// PENDING regardless of the schedule thresholds.
func IngestRecord(c *fiber.Ctx) error {
	var req IngestRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.UserID == "" || req.TargetType == "" {
		return helpers.JSONError(c, "USER_ID_AND_TARGET_TYPE_REQUIRED")
	}
	if !validKinds[req.Kind] {
		return helpers.JSONError(c, "INVALID_KIND")
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return helpers.JSONError(c, "AMOUNT_MUST_BE_POSITIVE")
	}

	submitTime := time.Now()
	if req.SubmitTime != "" {
		parsed, err := time.Parse(time.RFC3339, req.SubmitTime)
		if err != nil {
			return helpers.JSONError(c, "INVALID_SUBMIT_TIME")
		}
		submitTime = parsed
	}

	recordID := req.RecordID
	if recordID == "" {
		recordID = uuid.New().String()
	}

	var existing models.TransactionRecord
	if err := database.DB.Where("record_id = ?", recordID).First(&existing).Error; err == nil {
		return helpers.JSONError(c, "DUPLICATE_RECORD_ID")
	}

	rec := models.TransactionRecord{
		RecordID:         recordID,
		UserID:           req.UserID,
		Mobile:           req.Mobile,
		Name:             req.Name,
		Kind:             req.Kind,
		TargetType:       req.TargetType,
		Amount:           req.Amount,
		DepositAmount:    req.DepositAmount,
		WithdrawAmount:   req.WithdrawAmount,
		ValidBetAmount:   req.ValidBetAmount,
		CommissionAmount: req.CommissionAmount,
		Status:           models.StatusPending,
		SubmitTime:       submitTime,
		Remark:           req.Remark,
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_RECORD")
	}

	return helpers.JSONSuccess(c, "Record ingested", fiber.Map{
		"record_id": rec.RecordID,
		"status":    rec.Status,
	})
}
