package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"foodgram/internal/config"
	"foodgram/internal/database"
	"foodgram/internal/domain"
	"foodgram/internal/middleware"
	"foodgram/internal/modules/auth"
	"foodgram/internal/modules/cart"
	"foodgram/internal/modules/favorite"
	"foodgram/internal/modules/ingredient"
	"foodgram/internal/modules/recipe"
	"foodgram/internal/modules/subscription"
	"foodgram/internal/modules/tag"
	"foodgram/internal/modules/user"
	jwtsvc "foodgram/internal/pkg/jwt"
	"foodgram/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Tag{},
		&domain.Ingredient{},
		&domain.Recipe{},
		&domain.RecipeIngredient{},
		&domain.Favorite{},
		&domain.ShoppingCart{},
		&domain.Follow{},
	); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	tagRepo := repository.NewTagRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	cartRepo := repository.NewCartRepository(db)
	followRepo := repository.NewFollowRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	userHandler := user.NewHandler(userRepo, followRepo, authService)
	tagHandler := tag.NewHandler(tagRepo)
	ingredientHandler := ingredient.NewHandler(ingredientRepo)

	recipeService := recipe.NewService(
		recipeRepo,
		tagRepo,
		ingredientRepo,
		favoriteRepo,
		cartRepo,
		followRepo,
		cfg.MediaDir,
		cfg.PageSize,
	)
	recipeHandler := recipe.NewHandler(recipeService)

	favoriteHandler := favorite.NewHandler(favoriteRepo, recipeRepo)

	cartService := cart.NewService(cartRepo)
	cartHandler := cart.NewHandler(cartService, cartRepo, recipeRepo)

	subscriptionService := subscription.NewService(followRepo, userRepo, recipeRepo)
	subscriptionHandler := subscription.NewHandler(subscriptionService)

	r := gin.Default()
	r.Static("/media", cfg.MediaDir)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		tagHandler.RegisterRoutes(v1)
		ingredientHandler.RegisterRoutes(v1)

		// anonymous-friendly: viewer-поля считаются, если токен есть
		open := v1.Group("/")
		open.Use(middleware.OptionalAuth(j))
		{
			userHandler.RegisterRoutes(open)
			recipeHandler.RegisterRoutes(open)
		}

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			userHandler.RegisterProtectedRoutes(protected)
			recipeHandler.RegisterProtectedRoutes(protected)
			favoriteHandler.RegisterRoutes(protected)
			cartHandler.RegisterRoutes(protected)
			subscriptionHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal(err)
	}
}
