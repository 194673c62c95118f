package workflow

import (
	"testing"
	"time"

	"backoffice/models"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return parsed
}

func tsPtr(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed := ts(t, value)
	return &parsed
}

func rec(id, userID, targetType, amount, status string, submit time.Time) models.TransactionRecord {
	return models.TransactionRecord{
		RecordID:   id,
		UserID:     userID,
		Name:       userID,
		Kind:       models.KindCommission,
		TargetType: targetType,
		Amount:     d(amount),
		Status:     status,
		SubmitTime: submit,
	}
}
