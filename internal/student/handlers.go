package student

import (
	"github.com/maheshh3003/SAFE/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		students, err := svc.List(c.Context(), ListFilter{
			UniversityID: c.Query("universityId"),
			Search:       c.Query("search"),
			RiskLevel:    c.Query("riskLevel"),
		})
		if err != nil {
			return fiber.NewError(apperr.Status(err), apperr.Message(err))
		}
		return c.JSON(fiber.Map{"students": students})
	})

	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var input CreateInput
		if err := c.BodyParser(&input); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		st, err := svc.Create(c.Context(), input)
		if err != nil {
			return fiber.NewError(apperr.Status(err), apperr.Message(err))
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"student": st})
	})
}
