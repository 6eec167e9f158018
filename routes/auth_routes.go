package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rohitpatil04/turf_booking/handlers"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.RegisterUser)
	auth.Post("/login", handlers.LoginUser)
	auth.Post("/forgot-password", handlers.ForgotPassword)
	auth.Post("/reset-password/:token", handlers.ResetPassword)
}
