package therapist

import (
	"github.com/maheshh3003/SAFE/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", func(c *fiber.Ctx) error {
		therapists, err := svc.List(c.Context())
		if err != nil {
			return fiber.NewError(apperr.Status(err), apperr.Message(err))
		}
		return c.JSON(fiber.Map{"therapists": therapists})
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		t, err := svc.Get(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(apperr.Status(err), apperr.Message(err))
		}
		return c.JSON(t)
	})

	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var input Therapist
		if err := c.BodyParser(&input); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		t, err := svc.Create(c.Context(), input)
		if err != nil {
			return fiber.NewError(apperr.Status(err), apperr.Message(err))
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	})

	r.Put("/:id", authMiddleware, func(c *fiber.Ctx) error {
		var patch Therapist
		if err := c.BodyParser(&patch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		t, err := svc.Update(c.Context(), c.Params("id"), patch)
		if err != nil {
			return fiber.NewError(apperr.Status(err), apperr.Message(err))
		}
		return c.JSON(t)
	})
}
