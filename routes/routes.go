package routes

import (
	"backoffice/controllers/approval"
	"backoffice/controllers/record"
	"backoffice/controllers/schedule"
	"backoffice/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	// upstream data provider
	provider := app.Group("/provider", middlewares.ProviderAuth())
	provider.Post("/records", record.IngestRecord)

	// staff back office
	admin := app.Group("/admin", middlewares.AdminAuth())

	admin.Get("/records", record.ListRecords)

	admin.Get("/approvals", approval.ListRecords)
	admin.Get("/approvals/summary", approval.Summary)
	admin.Post("/approvals/submit", approval.SubmitRecords)
	admin.Post("/approvals/cancel", approval.CancelRecords)
	admin.Post("/approvals/submit-all", approval.SubmitAllRecords)
	admin.Patch("/approvals/remark", approval.UpdateRemark)

	admin.Get("/schedules", schedule.ListSchedules)
	admin.Post("/schedules", schedule.UpsertSchedule)
}
