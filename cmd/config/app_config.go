package config

import (
	"MealGo-Backend/internal/api/handlers"
	"MealGo-Backend/internal/api/routes"
	"MealGo-Backend/internal/middleware"
	"MealGo-Backend/internal/utils"
	"MealGo-Backend/internal/utils/mailing"
	"MealGo-Backend/internal/utils/storage"
	"MealGo-Backend/pkg/expense"
	"MealGo-Backend/pkg/ingredient"
	"MealGo-Backend/pkg/jwt"
	"MealGo-Backend/pkg/mealplan"
	"MealGo-Backend/pkg/midtrans"
	"MealGo-Backend/pkg/recipe"
	"MealGo-Backend/pkg/store"
	"MealGo-Backend/pkg/subscription"
	"MealGo-Backend/pkg/tip"
	"MealGo-Backend/pkg/user"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: !utils.IsProduction(),
	})
	middlewares := middleware.NewMiddleware(utils.GetConfig("CORS_ALLOW_ORIGINS"))
	validator := utils.Validate

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("open access log: %w", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetConfig("DB_TIMEZONE"),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/webhook/midtrans"
		},
	}))

	// utils
	s3, err := storage.NewAwsS3()
	if err != nil {
		return nil, err
	}
	mailer := mailing.NewMailer()
	facade := store.New(db)

	// Repository
	userRepository := user.NewUserRepository(facade)
	recipeRepository := recipe.NewRecipeRepository(facade)
	ingredientRepository := ingredient.NewIngredientRepository(facade)
	mealPlanRepository := mealplan.NewMealPlanRepository(facade)
	subscriptionRepository := subscription.NewSubscriptionRepository(facade)
	tipRepository := tip.NewTipRepository(facade)
	expenseRepository := expense.NewExpenseRepository(facade)

	// Service
	location, err := time.LoadLocation(utils.GetConfig("DB_TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("load DB_TIMEZONE: %w", err)
	}
	jwtService, err := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	if err != nil {
		return nil, err
	}
	midtransService, err := midtrans.NewMidtransService(
		utils.GetConfig("SERVER_KEY"),
		utils.GetConfig("IS_PROD") == "true",
	)
	if err != nil {
		return nil, err
	}
	userService := user.NewUserService(userRepository, jwtService, mailer)
	recipeService := recipe.NewRecipeService(recipeRepository, s3)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	mealPlanService := mealplan.NewMealPlanService(mealPlanRepository)
	subscriptionService := subscription.NewSubscriptionService(subscriptionRepository, midtransService, mailer)
	tipService := tip.NewTipService(tipRepository)
	expenseService := expense.NewExpenseService(expenseRepository, location)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService, validator)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, validator)
	tipHandler := handlers.NewTipHandler(tipService, validator)
	expenseHandler := handlers.NewExpenseHandler(expenseService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		RecipeHandler:       recipeHandler,
		IngredientHandler:   ingredientHandler,
		MealPlanHandler:     mealPlanHandler,
		SubscriptionHandler: subscriptionHandler,
		TipHandler:          tipHandler,
		ExpenseHandler:      expenseHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
