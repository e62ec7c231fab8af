package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"foodgram/internal/config"
	"foodgram/internal/database"
	"foodgram/internal/modules/ingredients"
	"foodgram/internal/repository"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatal("usage: importcsv <ingredients.csv>")
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	service := ingredients.NewService(repository.NewIngredientRepository(db))

	count, err := service.ImportCSV(context.Background(), f)
	if err != nil {
		log.Fatal("import failed: ", err)
	}

	log.Printf("imported %d ingredients", count)
}
