package services

import (
	"time"

	"backoffice/database"
	"backoffice/models"
	"backoffice/workflow"
)

const autoApproveActor = "system"

// AutoApproveBelowThreshold is the explicit auto-approval hook: it
// moves every PENDING record at or below its schedule threshold to
// APPROVED as one batch under the system actor. The review queue
// itself never mutates records; this runs only when the scheduler job
// is enabled.
func AutoApproveBelowThreshold() (int64, error) {
	schedule, err := LoadSchedule()
	if err != nil {
		return 0, err
	}

	var pending []models.TransactionRecord
	if err := database.DB.Where("status = ?", models.StatusPending).Find(&pending).Error; err != nil {
		return 0, err
	}

	var ids []string
	remarks := make(map[string]string)
	for _, rec := range pending {
		if workflow.ManualReviewRequired(rec, schedule) {
			continue
		}
		ids = append(ids, rec.RecordID)
		remarks[rec.RecordID] = "Auto-approved below threshold"
	}
	if len(ids) == 0 {
		return 0, nil
	}

	m := workflow.SubmitAll(pending, ids, autoApproveActor, remarks, workflow.ModeGenerate, time.Now())
	return ApplyMutation(m)
}
