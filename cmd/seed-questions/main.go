package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/stemsi/trivia-api/internal/config"
	"github.com/stemsi/trivia-api/internal/database"
	"github.com/stemsi/trivia-api/internal/logger"
	"github.com/stemsi/trivia-api/internal/repository"
)

func main() {
	force := flag.Bool("force", false, "Insert sample questions even if the table is not empty")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	fmt.Println("=== Seeding categories ===")
	for _, c := range repository.DefaultCategories {
		_, err := pool.Exec(ctx,
			`INSERT INTO categories (id, type) VALUES ($1, $2)
			 ON CONFLICT (id) DO UPDATE SET type = EXCLUDED.type`, c.ID, c.Type)
		if err != nil {
			log.Fatal().Err(err).Int("category", c.ID).Msg("Failed to seed category")
		}
	}
	if _, err := pool.Exec(ctx,
		`SELECT setval(pg_get_serial_sequence('categories', 'id'), (SELECT MAX(id) FROM categories))`); err != nil {
		log.Fatal().Err(err).Msg("Failed to reset category sequence")
	}

	questionRepo := repository.NewQuestionRepository(pool)
	existing, err := questionRepo.Count(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to count questions")
	}
	if existing > 0 && !*force {
		fmt.Printf("Questions table already holds %d rows, skipping (use -force to add anyway)\n", existing)
		return
	}

	fmt.Println("=== Seeding questions ===")
	successCount := 0
	for _, q := range repository.SampleQuestions {
		q := q
		if err := questionRepo.Create(ctx, &q); err != nil {
			fmt.Printf("Error creating question %q: %v\n", q.Question, err)
			continue
		}
		successCount++
	}

	fmt.Printf("\nSeed completed! Added %d/%d questions.\n", successCount, len(repository.SampleQuestions))
}
