package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rohitpatil04/turf_booking/handlers"
	"github.com/rohitpatil04/turf_booking/middleware"
)

func SlotRoutes(app *fiber.App) {
	api := app.Group("/api")

	slots := api.Group("/slots")
	slots.Get("/today", handlers.GetTodaySlots)

	// Maintenance endpoints; registered before /:id so the literal paths win.
	slots.Get("/all", middleware.Protected(), middleware.AdminRequired(), handlers.GetAllSlots)
	slots.Post("/reset-and-recreate", middleware.Protected(), middleware.AdminRequired(), handlers.ResetAndRecreateSlots)
	slots.Delete("/delete-all", middleware.Protected(), middleware.AdminRequired(), handlers.DeleteAllSlots)

	slots.Get("/:id", handlers.GetSlotByID)
}
