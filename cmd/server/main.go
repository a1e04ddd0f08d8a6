package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/trainee-auth/internal/config"
	"github.com/iliyamo/trainee-auth/internal/database"
	"github.com/iliyamo/trainee-auth/internal/handler"
	"github.com/iliyamo/trainee-auth/internal/queue"
	"github.com/iliyamo/trainee-auth/internal/repository"
	"github.com/iliyamo/trainee-auth/internal/router"
	"github.com/iliyamo/trainee-auth/internal/service"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	trainees := repository.NewTraineeRepo(db)
	svc := service.NewTraineeService(trainees, cfg.JWTSecret, cfg.AccessTTLDays, cfg.BcryptCost)
	auth := handler.NewAuthHandler(svc)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting disabled")
	}

	// Background consumer appends registration events to logs/registration.log.
	go func() {
		if err := queue.StartRegistrationConsumer(); err != nil {
			log.Printf("registration consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, auth, cfg.JWTSecret, trainees, config.LoadRateLimitConfig(), rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
