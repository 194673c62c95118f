package approval

import (
	"backoffice/helpers"
	"backoffice/services"
	"backoffice/workflow"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// ListRecords serves the approval pages: filter criteria in, the
// sorted view with tab counts and a running total out. With
// combine=true and both date bounds set, same-user same-target rows
// merge into combined rows; review=true narrows to the manual review
// queue.
func ListRecords(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return helpers.JSONError(c, "INVALID_FILTER_CRITERIA")
	}

	records, err := services.ListRecords(criteria)
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_RECORDS")
	}

	res := workflow.Apply(records, criteria)

	if c.QueryBool("review") {
		schedule, err := services.LoadSchedule()
		if err != nil {
			return helpers.JSONError(c, "FAILED_TO_LOAD_SCHEDULE")
		}
		res.Records = workflow.FilterManualReview(res.Records, schedule)
	}

	payload := fiber.Map{
		"status_counts": res.StatusCounts,
		"total_amount":  res.TotalAmount,
	}
	if c.QueryBool("combine") {
		payload["records"] = workflow.CombineByPeriod(res.Records, criteria.DateFrom, criteria.DateTo)
	} else {
		payload["records"] = res.Records
	}

	return helpers.JSONSuccess(c, "Records fetched", payload)
}

// Summary serves the dashboard badge counts.
func Summary(c *fiber.Ctx) error {
	counts, err := services.StatusSummary(c.Context())
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_SUMMARY")
	}
	return helpers.JSONSuccess(c, "Summary fetched", fiber.Map{
		"status_counts": counts,
	})
}

func parseCriteria(c *fiber.Ctx) (workflow.Criteria, error) {
	criteria := workflow.Criteria{
		Status:     c.Query("status"),
		User:       c.Query("user"),
		Handler:    c.Query("handler"),
		TargetType: c.Query("target_type"),
		Kind:       c.Query("kind"),
	}

	var err error
	if criteria.DateFrom, err = helpers.ParseDate(c.Query("date_from")); err != nil {
		return criteria, err
	}
	if criteria.DateTo, err = helpers.ParseDate(c.Query("date_to")); err != nil {
		return criteria, err
	}

	if raw := c.Query("amount_min"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return criteria, err
		}
		criteria.AmountMin = &v
	}
	if raw := c.Query("amount_max"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return criteria, err
		}
		criteria.AmountMax = &v
	}
	return criteria, nil
}
