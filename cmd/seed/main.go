// Command seed loads ingredients and tags from JSON files into the catalog.
// Rows that already exist are skipped, so it is safe to run repeatedly.
package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/joho/godotenv"

	"foodgram/internal/app"
	"foodgram/internal/config"
	"foodgram/internal/database"
	"foodgram/internal/domain/catalog"
	"foodgram/internal/logging"
)

func main() {
	ingredients := flag.String("ingredients", "data/ingredients.json", "JSON array of {name, measurement_unit}")
	tags := flag.String("tags", "", "JSON array of {name, slug}; skipped when empty")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("load config")
	}
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: "console"})

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		logging.Fatal().Err(err).Msg("connect database")
	}
	if err := app.Migrate(db); err != nil {
		logging.Fatal().Err(err).Msg("migrate")
	}

	svc := catalog.NewService(catalog.NewRepository(db))
	ctx := context.Background()

	if *ingredients != "" {
		n, err := importFile(*ingredients, func(r io.Reader) (int64, error) {
			return svc.ImportIngredients(ctx, r)
		})
		if err != nil {
			logging.Fatal().Err(err).Str("file", *ingredients).Msg("import ingredients")
		}
		logging.Info().Int64("added", n).Msg("ingredients imported")
	}

	if *tags != "" {
		n, err := importFile(*tags, func(r io.Reader) (int64, error) {
			return svc.ImportTags(ctx, r)
		})
		if err != nil {
			logging.Fatal().Err(err).Str("file", *tags).Msg("import tags")
		}
		logging.Info().Int64("added", n).Msg("tags imported")
	}
}

func importFile(path string, load func(io.Reader) (int64, error)) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return load(f)
}
