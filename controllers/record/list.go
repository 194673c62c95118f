package record

import (
	"backoffice/helpers"
	"backoffice/services"
	"backoffice/workflow"

	"github.com/gofiber/fiber/v2"
)

// ListRecords is the raw record listing for the deposits/withdrawals
// pages: same projection as the approval view, without combining.
func ListRecords(c *fiber.Ctx) error {
	criteria := workflow.Criteria{
		Status:     c.Query("status"),
		User:       c.Query("user"),
		Handler:    c.Query("handler"),
		TargetType: c.Query("target_type"),
		Kind:       c.Query("kind"),
	}

	var err error
	if criteria.DateFrom, err = helpers.ParseDate(c.Query("date_from")); err != nil {
		return helpers.JSONError(c, "INVALID_DATE_FORMAT")
	}
	if criteria.DateTo, err = helpers.ParseDate(c.Query("date_to")); err != nil {
		return helpers.JSONError(c, "INVALID_DATE_FORMAT")
	}

	records, err := services.ListRecords(criteria)
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_RECORDS")
	}

	res := workflow.Apply(records, criteria)
	return helpers.JSONSuccess(c, "Records fetched", fiber.Map{
		"records":       res.Records,
		"status_counts": res.StatusCounts,
		"total_amount":  res.TotalAmount,
	})
}
