// Command seed provisions the initial admin account and the country and
// category master data. Safe to run repeatedly: existing rows are left
// untouched.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/pimcentral/pim-api/internal/core/domain"
	"github.com/pimcentral/pim-api/internal/core/service"
	"github.com/pimcentral/pim-api/internal/infrastructure/config"
	mongodb "github.com/pimcentral/pim-api/internal/infrastructure/db/mongo"
	"github.com/pimcentral/pim-api/pkg/logger"
)

var countries = []domain.Country{
	{Code: "GT", Name: "Guatemala"},
	{Code: "SV", Name: "El Salvador"},
	{Code: "HN", Name: "Honduras"},
}

var categories = []domain.Category{
	{Name: "Industrial", Description: "Industrial supplies"},
	{Name: "Hogar", Description: "Home goods"},
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	adminUsername := envOr("ADMIN_USERNAME", "admin")
	adminEmail := envOr("ADMIN_EMAIL", "admin@example.com")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		log.Fatal().Msg("ADMIN_PASSWORD must be set")
	}

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Admin account ---
	accountRepo := mongodb.NewAccountRepository(db)
	authService := service.NewAuthService(
		accountRepo,
		service.NewBcryptHasher(),
		service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL()),
	)

	account, err := authService.Register(ctx, adminUsername, adminPassword, adminEmail, domain.RoleAdmin)
	switch {
	case errors.Is(err, domain.ErrAccountExists):
		log.Info().Str("username", adminUsername).Msg("admin account already exists")
	case err != nil:
		log.Fatal().Err(err).Msg("admin account creation failed")
	default:
		log.Info().Str("username", account.Username).Str("id", account.ID).Msg("admin account created")
	}

	// --- Country master data ---
	countryRepo := mongodb.NewCountryRepository(db)
	for _, country := range countries {
		if _, err := countryRepo.FindByCode(ctx, country.Code); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrCountryNotFound) {
			log.Fatal().Err(err).Str("code", country.Code).Msg("country lookup failed")
		}
		if _, err := countryRepo.Create(ctx, &country); err != nil {
			log.Fatal().Err(err).Str("code", country.Code).Msg("country creation failed")
		}
		log.Info().Str("code", country.Code).Msg("country seeded")
	}

	// --- Categories ---
	categoryRepo := mongodb.NewCategoryRepository(db)
	for _, category := range categories {
		if _, err := categoryRepo.FindByName(ctx, category.Name); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrCategoryNotFound) {
			log.Fatal().Err(err).Str("name", category.Name).Msg("category lookup failed")
		}
		created, err := categoryRepo.Create(ctx, &category)
		if err != nil {
			log.Fatal().Err(err).Str("name", category.Name).Msg("category creation failed")
		}
		log.Info().Str("name", created.Name).Str("id", created.ID).Msg("category seeded")
	}

	log.Info().Msg("seeding complete")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
