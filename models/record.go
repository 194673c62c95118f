package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Record statuses. A record only ever moves forward through the
// transition graph in workflow/transition.go.
const (
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusApproved   = "APPROVED"
	StatusCompleted  = "COMPLETED"
	StatusRejected   = "REJECTED"
)

const (
	KindCommission = "COMMISSION"
	KindRebate     = "REBATE"
	KindCashback   = "CASHBACK"
	KindDeposit    = "DEPOSIT"
	KindWithdraw   = "WITHDRAW"
)

type TransactionRecord struct {
	gorm.Model

	RecordID string `gorm:"size:64;uniqueIndex" json:"record_id"`

	UserID string `gorm:"size:32;index" json:"user_id"`
	Mobile string `gorm:"size:20" json:"mobile"`
	Name   string `gorm:"size:64" json:"name"`

	Kind       string `gorm:"size:16;index" json:"kind"`
	TargetType string `gorm:"size:64;index" json:"target_type"`

	Amount           decimal.Decimal `gorm:"type:numeric(20,2);default:0" json:"amount"`
	DepositAmount    decimal.Decimal `gorm:"type:numeric(20,2);default:0" json:"deposit_amount"`
	WithdrawAmount   decimal.Decimal `gorm:"type:numeric(20,2);default:0" json:"withdraw_amount"`
	ValidBetAmount   decimal.Decimal `gorm:"type:numeric(20,2);default:0" json:"valid_bet_amount"`
	CommissionAmount decimal.Decimal `gorm:"type:numeric(20,2);default:0" json:"commission_amount"`

	Status     string    `gorm:"size:16;index" json:"status"`
	SubmitTime time.Time `gorm:"index" json:"submit_time"`

	ProcessTime  *time.Time `json:"process_time,omitempty"`
	CompleteTime *time.Time `json:"complete_time,omitempty"`
	RejectTime   *time.Time `json:"reject_time,omitempty"`

	// Handler is the staff actor who last transitioned the record,
	// nil while PENDING. Set together with the completion timestamp.
	Handler *string `gorm:"size:32;index" json:"handler,omitempty"`
	Remark  string  `gorm:"size:255" json:"remark"`

	// BatchID groups records transitioned by one bulk approval event.
	BatchID *string `gorm:"size:36;index" json:"batch_id,omitempty"`
}

// EffectiveTime is the timestamp records sort by in list views:
// the completion stamp when the record has left the queue, the
// submission stamp otherwise.
func (r *TransactionRecord) EffectiveTime() time.Time {
	if r.CompleteTime != nil {
		return *r.CompleteTime
	}
	if r.RejectTime != nil {
		return *r.RejectTime
	}
	return r.SubmitTime
}
