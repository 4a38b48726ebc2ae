package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rajat290/fitpro-connect/auth"
	"github.com/rajat290/fitpro-connect/config"
	"github.com/rajat290/fitpro-connect/db"
	"github.com/rajat290/fitpro-connect/db/mongo"
	"github.com/rajat290/fitpro-connect/db/postgres"
	"github.com/rajat290/fitpro-connect/handlers"
	"github.com/rajat290/fitpro-connect/repository"
	"github.com/rajat290/fitpro-connect/routes"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	var userRepo repository.UserRepository

	switch cfg.DBType {
	case "postgres":
		// Run migrations (Postgres only)
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		userRepo = repository.NewPostgresUserRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		userRepo = repository.NewMongoUserRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}

	// Signing key and hash cost are loaded once and shared read-only
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	authService, err := auth.NewService(userRepo, issuer, hasher)
	if err != nil {
		panic(err)
	}

	// Handlers
	authHandler := &handlers.AuthHandler{Service: authService}
	userHandler := &handlers.UserHandler{Repo: userRepo}
	cardHandler := &handlers.CardHandler{Repo: userRepo}

	// Setup routes under the global prefix
	routes.SetupRoutes(cfg.APIPrefix, issuer, authHandler, userHandler, cardHandler)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
