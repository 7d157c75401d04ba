package resource

import (
	"context"
	"time"

	"github.com/maheshh3003/SAFE/internal/apperr"
	"github.com/maheshh3003/SAFE/internal/db"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Resource struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Kind        string    `json:"kind"`
	Description string    `json:"description,omitempty"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) Create(ctx context.Context, input Resource) (Resource, error) {
	if input.Title == "" || input.URL == "" {
		return Resource{}, apperr.Validation("title and url are required")
	}
	if input.Kind == "" {
		input.Kind = "article"
	}
	input.ID = uuid.NewString()

	row := s.db.QueryRow(ctx, `
		INSERT INTO resources (id, title, url, kind, description, created_by)
		VALUES ($1,$2,$3,$4,NULLIF($5,''),NULLIF($6,''))
		RETURNING created_at
	`, input.ID, input.Title, input.URL, input.Kind, input.Description, input.CreatedBy)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return Resource{}, apperr.Persistence("failed to save resource", err)
	}
	return input, nil
}

func (s *Service) List(ctx context.Context, kind string) ([]Resource, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, title, url, kind, COALESCE(description,''), COALESCE(created_by,''), created_at
		FROM resources
		WHERE ($1 = '' OR kind = $1)
		ORDER BY created_at DESC
	`, kind)
	if err != nil {
		return nil, apperr.Persistence("failed to fetch resources", err)
	}
	defer rows.Close()

	var resources []Resource
	for rows.Next() {
		var res Resource
		if err := rows.Scan(&res.ID, &res.Title, &res.URL, &res.Kind, &res.Description, &res.CreatedBy, &res.CreatedAt); err != nil {
			return nil, apperr.Persistence("failed to scan resource", err)
		}
		resources = append(resources, res)
	}
	return resources, nil
}

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", func(c *fiber.Ctx) error {
		resources, err := svc.List(c.Context(), c.Query("kind"))
		if err != nil {
			return fiber.NewError(apperr.Status(err), apperr.Message(err))
		}
		return c.JSON(fiber.Map{"resources": resources})
	})

	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var input Resource
		if err := c.BodyParser(&input); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		res, err := svc.Create(c.Context(), input)
		if err != nil {
			return fiber.NewError(apperr.Status(err), apperr.Message(err))
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	})
}
