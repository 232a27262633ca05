package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"branding-agent/internal/application/services"
	"branding-agent/internal/config"
	"branding-agent/internal/delivery/handler"
	"branding-agent/internal/infrastructure"
	"branding-agent/internal/infrastructure/db/postgres"
	"branding-agent/internal/infrastructure/email"
	"branding-agent/internal/infrastructure/genai"
)

func main() {
	cfg := config.Load()

	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)
	draftRepo := postgres.NewDraftRepository(db)

	jwtService := infrastructure.NewJWTService(cfg.JWTSecret)
	redisService := infrastructure.NewRedisService()
	mailSender := email.NewSender()

	var generator genai.TextGenerator
	if cfg.OpenAIAPIKey != "" {
		generator, err = genai.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
		if err != nil {
			log.Fatalf("failed to configure text generator: %v", err)
		}
	}

	userService := services.NewUserService(userRepo, jwtService, redisService, mailSender)
	contentService := services.NewContentService(userRepo, generator)
	postService := services.NewPostService(userRepo, postRepo, draftRepo)

	generateLimit := infrastructure.NewRateLimiter(cfg.GeneratePerMinute, cfg.GenerateBurst)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	h := handler.NewHandler(userService, contentService, postService, jwtService, generateLimit)
	h.RegisterRoutes(e)

	log.Printf("server listening on :%s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
