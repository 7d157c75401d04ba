package server

import (
	"github.com/maheshh3003/SAFE/internal/auth"
	"github.com/maheshh3003/SAFE/internal/booking"
	"github.com/maheshh3003/SAFE/internal/chat"
	"github.com/maheshh3003/SAFE/internal/community"
	"github.com/maheshh3003/SAFE/internal/config"
	"github.com/maheshh3003/SAFE/internal/resource"
	"github.com/maheshh3003/SAFE/internal/stream"
	"github.com/maheshh3003/SAFE/internal/student"
	"github.com/maheshh3003/SAFE/internal/therapist"
	"github.com/maheshh3003/SAFE/internal/university"
	"github.com/maheshh3003/SAFE/internal/wellness"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App    *fiber.App
	Cfg    config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Stream *stream.Hub
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:    app,
		Cfg:    cfg,
		DB:     db,
		Redis:  redisClient,
		Stream: stream.NewHub(redisClient),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)
	optionalJWT := auth.OptionalJWT(s.Cfg.JWTSecret)

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, s.DB))
	community.RegisterRoutes(s.App.Group("/community"), community.NewStore(community.SeedPosts()), s.Stream, optionalJWT)
	booking.RegisterRoutes(s.App.Group("/bookings"), booking.NewService(s.DB), jwtMiddleware)
	therapist.RegisterRoutes(s.App.Group("/therapists"), therapist.NewService(s.DB), jwtMiddleware)
	university.RegisterRoutes(s.App.Group("/universities"), university.NewService(s.DB), jwtMiddleware)
	student.RegisterRoutes(s.App.Group("/students"), student.NewService(s.DB), jwtMiddleware)
	wellness.RegisterRoutes(s.App.Group("/wellness"), wellness.NewService(s.DB, s.Stream), jwtMiddleware)
	chat.RegisterRoutes(s.App.Group("/chat"), chat.NewService(s.Cfg.GeminiAPIKey, s.Cfg.GeminiAPIURL))
	resource.RegisterRoutes(s.App.Group("/resources"), resource.NewService(s.DB), jwtMiddleware)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}
