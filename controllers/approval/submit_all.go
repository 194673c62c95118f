package approval

import (
	"time"

	"backoffice/helpers"
	"backoffice/services"
	"backoffice/workflow"

	"github.com/gofiber/fiber/v2"
)

type SubmitAllRequest struct {
	RecordIDs []string          `json:"record_ids"`
	Remarks   map[string]string `json:"remarks"`
	Mode      string            `json:"mode"`
}

// SubmitAllRecords applies submit to every selected PENDING record as
// one approval event: one actor, one timestamp, one batch id. Ids that
// are unknown or no longer pending are reported as skipped. The
// response echoes an emptied selection so the client clears its
// checkboxes and remark inputs.
func SubmitAllRecords(c *fiber.Ctx) error {
	var req SubmitAllRequest
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

	records, err := services.FindRecords(req.RecordIDs)
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_RECORDS")
	}

	m := workflow.SubmitAll(records, req.RecordIDs, adminID, req.Remarks, mode, time.Now())
	applied, err := services.ApplyMutation(m)
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_APPLY_TRANSITION")
	}

	return helpers.JSONSuccess(c, "Batch submitted", fiber.Map{
		"batch_id":  m.BatchID,
		"status":    m.ToStatus,
		"applied":   applied,
		"skipped":   m.Skipped,
		"selection": []string{},
		"remarks":   map[string]string{},
	})
}
