package university

import (
	"github.com/maheshh3003/SAFE/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", func(c *fiber.Ctx) error {
		universities, err := svc.List(c.Context(), c.Query("domain"), c.Query("adminId"))
		if err != nil {
			return fiber.NewError(apperr.Status(err), apperr.Message(err))
		}
		return c.JSON(fiber.Map{"universities": universities})
	})

	r.Post("/", func(c *fiber.Ctx) error {
		var input CreateInput
		if err := c.BodyParser(&input); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		u, err := svc.Create(c.Context(), input)
		if err != nil {
			return fiber.NewError(apperr.Status(err), apperr.Message(err))
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"university": u})
	})

	r.Put("/:id", authMiddleware, func(c *fiber.Ctx) error {
		var patch UpdateInput
		if err := c.BodyParser(&patch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		u, err := svc.Update(c.Context(), c.Params("id"), patch)
		if err != nil {
			return fiber.NewError(apperr.Status(err), apperr.Message(err))
		}
		return c.JSON(fiber.Map{"university": u})
	})

	r.Get("/dashboard", authMiddleware, func(c *fiber.Ctx) error {
		dashboard, err := svc.Dashboard(c.Context(), c.Query("universityId"))
		if err != nil {
			return fiber.NewError(apperr.Status(err), apperr.Message(err))
		}
		return c.JSON(dashboard)
	})
}
