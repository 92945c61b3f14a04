package main

import (
	"errors"
	"log"

	"github.com/moodbite/backend/config"
	"github.com/moodbite/backend/internal/database"
	"github.com/moodbite/backend/internal/service"
)

type seedUser struct {
	Name     string
	Email    string
	Password string
}

var seedUsers = []seedUser{
	{Name: "Demo User", Email: "demo@moodbite.dev", Password: "demo-password"},
	{Name: "QA User", Email: "qa@moodbite.dev", Password: "qa-password"},
}

// Seeds demo accounts for local development. Existing accounts are skipped.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	auth := service.NewAuthService(db, cfg.JWTSecret)

	for _, u := range seedUsers {
		_, created, err := auth.Register(u.Name, u.Email, u.Password)
		if errors.Is(err, service.ErrUserExists) {
			log.Printf("Skipping %s: already exists", u.Email)
			continue
		}
		if err != nil {
			log.Fatalf("Failed to seed %s: %v", u.Email, err)
		}
		log.Printf("Seeded %s (%s)", created.Email, created.ID)
	}
}
