package approval

import (
	"time"

	"backoffice/helpers"
	"backoffice/models"
	"backoffice/services"
	"backoffice/workflow"

	"github.com/gofiber/fiber/v2"
)

type SubmitRequest struct {
	// RecordIDs carries the row's original ids: one entry for a plain
	// row, every member for a combined row.
	RecordIDs []string `json:"record_ids"`
	Remark    string   `json:"remark"`
	Mode      string   `json:"mode"` // release (default) or generate
}

// SubmitRecords approves one row. A combined row is all-or-nothing: if
// any member has already left its actionable status, nothing moves.
func SubmitRecords(c *fiber.Ctx) error {
	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if len(req.RecordIDs) == 0 {
		return helpers.JSONError(c, "RECORD_IDS_REQUIRED")
	}

	adminID, ok := c.Locals("admin_id").(string)
	if !ok {
		return helpers.JSONError(c, "INVALID_ADMIN_SESSION")
	}

	mode := workflow.ModeRelease
	if req.Mode == string(workflow.ModeGenerate) {
		mode = workflow.ModeGenerate
	}

	row, errMsg := loadActionableRow(req.RecordIDs, targetStatus(mode))
	if errMsg != "" {
		return helpers.JSONError(c, errMsg)
	}

	m := workflow.Submit(row, adminID, req.Remark, mode, time.Now())
	applied, err := services.ApplyMutation(m)
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_APPLY_TRANSITION")
	}

	return helpers.JSONSuccess(c, "Records submitted", fiber.Map{
		"batch_id": m.BatchID,
		"status":   m.ToStatus,
		"applied":  applied,
		"skipped":  m.Skipped,
	})
}

func targetStatus(mode workflow.Mode) string {
	if mode == workflow.ModeGenerate {
		return models.StatusApproved
	}
	return models.StatusCompleted
}

// loadActionableRow rebuilds the acted-on row from its original ids
// and verifies every member can make the move, so a combined row never
// applies partially.
func loadActionableRow(recordIDs []string, to string) (workflow.Combined, string) {
	records, err := services.GetRecords(recordIDs)
	if err != nil {
		return workflow.Combined{}, "RECORD_NOT_FOUND"
	}

	for _, rec := range records {
		if !workflow.CanTransition(rec.Status, to) {
			return workflow.Combined{}, "RECORD_NOT_ACTIONABLE"
		}
	}

	return workflow.Combined{
		TransactionRecord: records[0],
		CombinedCount:     len(records),
		OriginalIDs:       recordIDs,
	}, ""
}
