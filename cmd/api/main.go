package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"foodgram/internal/config"
	"foodgram/internal/database"
	"foodgram/internal/middleware"
	"foodgram/internal/modules/auth"
	"foodgram/internal/modules/ingredients"
	"foodgram/internal/modules/recipes"
	"foodgram/internal/modules/tags"
	"foodgram/internal/modules/users"
	jwtsvc "foodgram/internal/pkg/jwt"
	"foodgram/internal/pkg/validator"
	"foodgram/internal/repository"
)

func main() {
	_ = godotenv.Load()
	validator.RegisterBindings()

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

	userRepo := repository.NewUserRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	tagRepo := repository.NewTagRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	listRepo := repository.NewUserRecipeListRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	usersService := users.NewService(userRepo, subscriptionRepo, recipeRepo)
	usersHandler := users.NewHandler(usersService, cfg.PageSize)

	ingredientService := ingredients.NewService(ingredientRepo)
	ingredientHandler := ingredients.NewHandler(ingredientService)

	tagService := tags.NewService(tagRepo)
	tagHandler := tags.NewHandler(tagService)

	recipeService := recipes.NewService(
		recipeRepo,
		ingredientRepo,
		tagRepo,
		listRepo,
		subscriptionRepo,
		recipes.Bounds{
			AmountMin:      cfg.AmountMin,
			AmountMax:      cfg.AmountMax,
			CookingTimeMin: cfg.CookingTimeMin,
			CookingTimeMax: cfg.CookingTimeMax,
		},
		cfg.MediaDir,
	)
	recipeHandler := recipes.NewHandler(recipeService, cfg.PageSize, cfg.ShoppingCartFilename)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.Static("/media", cfg.MediaDir)

	api := r.Group("/api")
	{
		// public, with token decoded when present so per-user flags resolve
		public := api.Group("/")
		public.Use(middleware.AuthOptional(j))
		{
			authHandler.RegisterPublicRoutes(public)
			usersHandler.RegisterPublicRoutes(public)
			ingredientHandler.RegisterPublicRoutes(public)
			tagHandler.RegisterPublicRoutes(public)
			recipeHandler.RegisterPublicRoutes(public)
		}

		protected := api.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			usersHandler.RegisterProtectedRoutes(protected)
			recipeHandler.RegisterProtectedRoutes(protected)
		}

		admin := api.Group("/")
		admin.Use(middleware.Auth(j), middleware.AdminOnly())
		{
			ingredientHandler.RegisterAdminRoutes(admin)
			tagHandler.RegisterAdminRoutes(admin)
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
