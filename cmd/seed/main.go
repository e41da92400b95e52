package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"server/internal/adapter/repo"
	"server/internal/domain"
	"server/internal/infra"
)

// Seeds the default categories into PostgreSQL. Idempotent: existing
// category names are left untouched.
func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("seed: db connection failed")
	}
	defer pool.Close()

	categories := repo.NewCategoryRepository(infra.NewSQLRunner(pool, logger))

	defaults := []domain.Category{
		{Name: "Academic Support", Description: "Help fellow students with textbooks, supplies, and educational needs", Color: "#3B82F6", Icon: "🎓"},
		{Name: "Emergency Aid", Description: "Support students facing unexpected financial difficulties", Color: "#EF4444", Icon: "🆘"},
		{Name: "Campus Improvement", Description: "Projects to enhance campus facilities and student life", Color: "#10B981", Icon: "🏫"},
		{Name: "Community Service", Description: "Give back to the local community and those in need", Color: "#F59E0B", Icon: "🤝"},
		{Name: "Research & Innovation", Description: "Fund student research projects and innovative ideas", Color: "#8B5CF6", Icon: "🔬"},
		{Name: "Sports & Recreation", Description: "Support athletic teams and recreational activities", Color: "#06B6D4", Icon: "⚽"},
	}

	for _, c := range defaults {
		c.ID = uuid.NewString()
		if err := categories.Create(ctx, &c); err != nil {
			logger.Fatal().Err(err).Str("category", c.Name).Msg("seed: insert category failed")
		}
		logger.Info().Str("category", c.Name).Msg("seed: category ensured")
	}

	logger.Info().Msg("seed: done")
}
