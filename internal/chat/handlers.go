package chat

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/", func(c *fiber.Ctx) error {
		var req Request
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		if req.Message == "" {
			return fiber.NewError(fiber.StatusBadRequest, "message is required")
		}
		return c.JSON(Response{Response: svc.Reply(c.Context(), req.Message, req.ConversationHistory)})
	})
}
