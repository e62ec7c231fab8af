package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"foodgram/internal/config"
	"foodgram/internal/database"
	"foodgram/internal/domain"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM shopping_carts")
	db.Exec("DELETE FROM favorite_recipes")
	db.Exec("DELETE FROM recipe_tags")
	db.Exec("DELETE FROM recipe_ingredients")
	db.Exec("DELETE FROM recipes")
	db.Exec("DELETE FROM subscriptions")
	db.Exec("DELETE FROM tags")
	db.Exec("DELETE FROM ingredients")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@foodgram.local",
		Username:     "admin",
		FirstName:    "Site",
		LastName:     "Admin",
		PasswordHash: string(adminHash),
		IsAdmin:      true,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@foodgram.local / admin123")

	authors := []domain.User{}
	names := [][2]string{{"Anna", "Baker"}, {"Boris", "Cook"}, {"Clara", "Miller"}}
	for i, n := range names {
		hash, _ := bcrypt.GenerateFromPassword([]byte("author123"), bcrypt.DefaultCost)
		author := domain.User{
			Email:        fmt.Sprintf("author%d@foodgram.local", i+1),
			Username:     fmt.Sprintf("author%d", i+1),
			FirstName:    n[0],
			LastName:     n[1],
			PasswordHash: string(hash),
		}
		db.Create(&author)
		authors = append(authors, author)
	}

	// ================== TAGS ==================
	log.Println("Creating tags...")
	tagDefs := []domain.Tag{
		{Name: "Breakfast", Color: "#E26C2D", Slug: "breakfast"},
		{Name: "Lunch", Color: "#49B64E", Slug: "lunch"},
		{Name: "Dinner", Color: "#8775D2", Slug: "dinner"},
	}
	tags := []domain.Tag{}
	for _, t := range tagDefs {
		db.Create(&t)
		tags = append(tags, t)
	}

	// ================== INGREDIENTS ==================
	log.Println("Creating ingredients...")
	ingredientDefs := []domain.Ingredient{
		{Name: "flour", MeasurementUnit: "g"},
		{Name: "sugar", MeasurementUnit: "g"},
		{Name: "milk", MeasurementUnit: "ml"},
		{Name: "egg", MeasurementUnit: "pc"},
		{Name: "butter", MeasurementUnit: "g"},
		{Name: "salt", MeasurementUnit: "g"},
	}
	ingredients := []domain.Ingredient{}
	for _, ing := range ingredientDefs {
		db.Create(&ing)
		ingredients = append(ingredients, ing)
	}

	// ================== RECIPES ==================
	log.Println("Creating recipes...")
	for i, author := range authors {
		for j := 0; j < 2; j++ {
			recipe := domain.Recipe{
				AuthorID:    author.ID,
				Name:        fmt.Sprintf("Recipe %d by %s", j+1, author.Username),
				Text:        "Mix everything and cook until done.",
				Image:       "recipes/placeholder.png",
				CookingTime: 10 + 5*j,
			}
			db.Create(&recipe)

			db.Create(&domain.RecipeIngredient{
				RecipeID:     recipe.ID,
				IngredientID: ingredients[(i+j)%len(ingredients)].ID,
				Amount:       100 + 50*j,
			})
			db.Create(&domain.RecipeIngredient{
				RecipeID:     recipe.ID,
				IngredientID: ingredients[(i+j+1)%len(ingredients)].ID,
				Amount:       2,
			})
			db.Create(&domain.RecipeTag{
				RecipeID: recipe.ID,
				TagID:    tags[(i+j)%len(tags)].ID,
			})
		}
	}

	// ================== SUBSCRIPTIONS ==================
	log.Println("Creating subscriptions...")
	db.Create(&domain.Subscription{SubscriberID: authors[0].ID, AuthorID: authors[1].ID})
	db.Create(&domain.Subscription{SubscriberID: authors[1].ID, AuthorID: authors[2].ID})

	log.Println("Seed complete.")
}
