package approval

import (
	"time"

	"backoffice/helpers"
	"backoffice/models"
	"backoffice/services"
	"backoffice/workflow"

	"github.com/gofiber/fiber/v2"
)

type CancelRequest struct {
	RecordIDs []string `json:"record_ids"`
	Remark    string   `json:"remark"`
}

// CancelRecords rejects one row, fanning out over a combined row's
// members. An empty remark falls back to the default cancel remark.
func CancelRecords(c *fiber.Ctx) error {
	var req CancelRequest
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

	row, errMsg := loadActionableRow(req.RecordIDs, models.StatusRejected)
	if errMsg != "" {
		return helpers.JSONError(c, errMsg)
	}

	m := workflow.Cancel(row, adminID, req.Remark, time.Now())
	applied, err := services.ApplyMutation(m)
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_APPLY_TRANSITION")
	}

	return helpers.JSONSuccess(c, "Records cancelled", fiber.Map{
		"batch_id": m.BatchID,
		"status":   m.ToStatus,
		"applied":  applied,
		"skipped":  m.Skipped,
	})
}
