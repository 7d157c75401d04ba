package wellness

import (
	"github.com/maheshh3003/SAFE/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/checkins", authMiddleware, func(c *fiber.Ctx) error {
		var input Checkin
		if err := c.BodyParser(&input); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		checkin, err := svc.RecordCheckin(c.Context(), input)
		if err != nil {
			return fiber.NewError(apperr.Status(err), apperr.Message(err))
		}
		return c.Status(fiber.StatusCreated).JSON(checkin)
	})

	r.Get("/summary", authMiddleware, func(c *fiber.Ctx) error {
		summary, err := svc.Summary(c.Context(), c.Query("userId"))
		if err != nil {
			return fiber.NewError(apperr.Status(err), apperr.Message(err))
		}
		return c.JSON(summary)
	})
}
