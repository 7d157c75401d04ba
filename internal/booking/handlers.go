package booking

import (
	"github.com/maheshh3003/SAFE/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var input CreateInput
		if err := c.BodyParser(&input); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}

		booking, err := svc.Create(c.Context(), input)
		if err != nil {
			return fiber.NewError(apperr.Status(err), apperr.Message(err))
		}
		return c.JSON(fiber.Map{"booking": booking, "message": "Booking created successfully"})
	})

	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		bookings, err := svc.ListForUser(c.Context(), c.Query("user_id"))
		if err != nil {
			return fiber.NewError(apperr.Status(err), apperr.Message(err))
		}
		return c.JSON(fiber.Map{"bookings": bookings})
	})

	r.Get("/session-types", func(c *fiber.Ctx) error {
		types, err := svc.SessionTypes(c.Context())
		if err != nil {
			return fiber.NewError(apperr.Status(err), apperr.Message(err))
		}
		return c.JSON(fiber.Map{"sessionTypes": types})
	})
}
