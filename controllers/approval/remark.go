package approval

import (
	"errors"

	"backoffice/helpers"
	"backoffice/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RemarkRequest struct {
	RecordID string `json:"record_id"`
	Remark   string `json:"remark"`
}

// UpdateRemark edits a record's annotation. This works on any status,
// including completed and rejected records, and is not a transition.
func UpdateRemark(c *fiber.Ctx) error {
	var req RemarkRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.RecordID == "" {
		return helpers.JSONError(c, "RECORD_ID_REQUIRED")
	}

	if err := services.UpdateRemark(req.RecordID, req.Remark); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONError(c, "RECORD_NOT_FOUND")
		}
		return helpers.JSONError(c, "FAILED_TO_UPDATE_REMARK")
	}

	return helpers.JSONSuccess(c, "Remark updated", fiber.Map{
		"record_id": req.RecordID,
		"remark":    req.Remark,
	})
}
