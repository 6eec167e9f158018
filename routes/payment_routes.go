package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rohitpatil04/turf_booking/handlers"
)

func PaymentRoutes(app *fiber.App) {
	api := app.Group("/api")

	payments := api.Group("/payments")
	payments.Post("/create-order", handlers.CreateOrder)
	payments.Post("/verify", handlers.VerifyPayment)
}
