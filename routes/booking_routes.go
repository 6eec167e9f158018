package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rohitpatil04/turf_booking/handlers"
	"github.com/rohitpatil04/turf_booking/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api")

	bookings := api.Group("/bookings", middleware.Protected())
	bookings.Get("/user/:userId", handlers.GetUserBookings)
}
