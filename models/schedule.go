package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ApprovalSchedule holds the per-target-type thresholds the review
// queue is filtered against. A pending record at or below
// AutoApprovedAmount never shows up for manual review.
type ApprovalSchedule struct {
	gorm.Model

	TargetType          string          `gorm:"size:64;uniqueIndex" json:"target_type"`
	AutoApprovedAmount  decimal.Decimal `gorm:"type:numeric(20,2);default:0" json:"auto_approved_amount"`
	MaxWithdrawalAmount decimal.Decimal `gorm:"type:numeric(20,2);default:0" json:"max_withdrawal_amount"`
}
