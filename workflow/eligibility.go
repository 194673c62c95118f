package workflow

import (
	"backoffice/models"

	"github.com/shopspring/decimal"
)

// ScheduleEntry carries the thresholds configured for one target type.
type ScheduleEntry struct {
	AutoApprovedAmount  decimal.Decimal
	MaxWithdrawalAmount decimal.Decimal
}

// Schedule maps a target type to its thresholds.
type Schedule map[string]ScheduleEntry

// ThresholdFor returns the auto-approved amount for a target type.
// A target type without a schedule entry gets a zero threshold, so
// every pending record of that type lands in the manual review queue.
func (s Schedule) ThresholdFor(targetType string) decimal.Decimal {
	if entry, ok := s[targetType]; ok {
		return entry.AutoApprovedAmount
	}
	return decimal.Zero
}

// ManualReviewRequired reports whether a record belongs in the manual
// review queue: it must still be PENDING and its amount must strictly
// exceed the threshold. A record exactly at the threshold is left to
// auto-approval.
func ManualReviewRequired(rec models.TransactionRecord, s Schedule) bool {
	if rec.Status != models.StatusPending {
		return false
	}
	return rec.Amount.GreaterThan(s.ThresholdFor(rec.TargetType))
}

// FilterManualReview projects records down to the manual review queue.
func FilterManualReview(records []models.TransactionRecord, s Schedule) []models.TransactionRecord {
	out := make([]models.TransactionRecord, 0, len(records))
	for _, rec := range records {
		if ManualReviewRequired(rec, s) {
			out = append(out, rec)
		}
	}
	return out
}
