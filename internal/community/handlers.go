package community

import (
	"encoding/json"

	"github.com/maheshh3003/SAFE/internal/apperr"
	"github.com/maheshh3003/SAFE/internal/auth"
	"github.com/maheshh3003/SAFE/internal/stream"

	"github.com/gofiber/fiber/v2"
)

// FeedTopic is the stream hub topic post events are broadcast on.
const FeedTopic = "community"

func RegisterRoutes(r fiber.Router, store *Store, hub *stream.Hub, identityMiddleware fiber.Handler) {
	r.Get("/posts", func(c *fiber.Ctx) error {
		posts, stats := store.List()
		return c.JSON(fiber.Map{"posts": posts, "stats": stats})
	})

	r.Post("/posts", identityMiddleware, func(c *fiber.Ctx) error {
		var input CreateInput
		if err := c.BodyParser(&input); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}

		post, stats, err := store.Create(input, auth.IdentityFromCtx(c))
		if err != nil {
			return fiber.NewError(apperr.Status(err), apperr.Message(err))
		}

		publishEvent(hub, "post_created", post)
		return c.JSON(fiber.Map{"message": "Post created successfully", "post": post, "stats": stats})
	})

	r.Patch("/posts", func(c *fiber.Ctx) error {
		id := c.Query("id")
		action := c.Query("action")
		if id == "" || action == "" {
			return fiber.NewError(fiber.StatusBadRequest, "post id and action required")
		}

		post, stats, err := store.React(id, action)
		if err != nil {
			return fiber.NewError(apperr.Status(err), apperr.Message(err))
		}

		publishEvent(hub, "post_updated", post)
		return c.JSON(fiber.Map{"message": "Post updated successfully", "post": post, "stats": stats})
	})

	r.Delete("/posts", identityMiddleware, func(c *fiber.Ctx) error {
		id := c.Query("id")
		if id == "" {
			return fiber.NewError(fiber.StatusBadRequest, "post id required")
		}

		post, stats, err := store.Delete(id, auth.IdentityFromCtx(c))
		if err != nil {
			return fiber.NewError(apperr.Status(err), apperr.Message(err))
		}

		publishEvent(hub, "post_deleted", post)
		return c.JSON(fiber.Map{"message": "Post deleted successfully", "deletedPost": post, "stats": stats})
	})
}

func publishEvent(hub *stream.Hub, kind string, post Post) {
	if hub == nil {
		return
	}
	payload, err := json.Marshal(fiber.Map{"type": kind, "post": post})
	if err != nil {
		return
	}
	hub.Broadcast(FeedTopic, payload)
}
