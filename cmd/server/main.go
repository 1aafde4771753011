package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"user_backend/internal/app/router"
	"user_backend/internal/feature/account/adapters"
	accounthandler "user_backend/internal/feature/account/transport/handler"
	accountusecase "user_backend/internal/feature/account/usecase"
	infradb "user_backend/internal/platform/db"
	"user_backend/internal/platform/events"
	platformhttp "user_backend/internal/platform/http"
	jwtmw "user_backend/internal/platform/jwt"
	infraredis "user_backend/internal/platform/redis"
	"user_backend/internal/platform/session"
	"user_backend/internal/platform/smarty"
)

// defaultTokenLifetime is the access-token and session lifetime when
// TOKEN_LIFETIME is not set.
const defaultTokenLifetime = 24 * time.Hour

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	tokenLifetime := defaultTokenLifetime
	if v := os.Getenv("TOKEN_LIFETIME"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("invalid TOKEN_LIFETIME %q: %v", v, err)
		}
		tokenLifetime = d
	}

	// Configuration problems are fatal at startup, not at request time.
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	smartyCfg := smarty.LoadConfig()
	if err := smartyCfg.Validate(); err != nil {
		log.Fatal(err)
	}
	eventsCfg := events.LoadConfig()

	// db
	db := infradb.OpenDB()

	// Redis backs both sessions and the event topic, so it is required.
	rdb, err := infraredis.NewRedisClient()
	if err != nil {
		log.Fatal("Redis unavailable: ", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Println("[ERROR] Failed to close Redis client:", err)
		}
	}()

	// Repositories and platform clients
	userRepo := adapters.NewUserMySQL(db)
	sessionRepo := session.NewSessionRedis(rdb, "session")
	validator := smarty.NewClient(
		smartyCfg,
		platformhttp.NewHTTPClient(smartyCfg.Timeout),
		smarty.NewRateLimiter(60, time.Minute),
	)
	publisher := events.NewRedisPublisher(rdb, eventsCfg.Topic)
	tokens := jwtmw.NewGenerator(jwtSecret, tokenLifetime)

	// Usecases
	registrationUC := accountusecase.NewRegistrationUsecase(userRepo, validator, publisher, eventsCfg.PublishTimeout)
	authUC := accountusecase.NewAuthUsecase(userRepo, sessionRepo, tokens, tokenLifetime)

	// Handler and routes
	accountH := accounthandler.NewAccountHandler(registrationUC, authUC)
	r := router.NewRouter(accountH, jwtmw.AuthRequired(jwtSecret, sessionRepo))

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
