package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rohitpatil04/turf_booking/handlers"
	"github.com/rohitpatil04/turf_booking/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api")

	analytics := api.Group("/admin/analytics", middleware.Protected(), middleware.AdminRequired())
	analytics.Get("/slot-utilization", handlers.GetSlotUtilization)
	analytics.Get("/peak-hours", handlers.GetPeakHours)
	analytics.Get("/revenue", handlers.GetRevenue)
}
