package routes

import (
	"MealGo-Backend/internal/api/handlers"
	"MealGo-Backend/internal/middleware"
	"MealGo-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	RecipeHandler       handlers.RecipeHandler
	IngredientHandler   handlers.IngredientHandler
	MealPlanHandler     handlers.MealPlanHandler
	SubscriptionHandler handlers.SubscriptionHandler
	TipHandler          handlers.TipHandler
	ExpenseHandler      handlers.ExpenseHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.MetricsMiddleware())
	c.GuestRoute()
	c.Auth()
	c.Recipes()
	c.Ingredients()
	c.MealPlans()
	c.Users()
	c.Subscriptions()
	c.Tips()
	c.Expenses()
}

func (c *Config) auth() fiber.Handler {
	return c.Middleware.AuthMiddleware(c.JWTService)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	c.App.Post("/webhook/midtrans", c.SubscriptionHandler.MidtransWebhookHandler)
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Post("/logout", c.auth(), c.UserHandler.Logout)
		auth.Get("/me", c.auth(), c.UserHandler.Me)
		auth.Patch("/me", c.auth(), c.UserHandler.UpdateMe)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.auth())
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Post("", c.RecipeHandler.CreateRecipe)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Patch("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	recipes.Post("/:id/favorite", c.RecipeHandler.ToggleFavorite)
	recipes.Post("/:id/rating", c.RecipeHandler.RateRecipe)
	recipes.Post("/:id/image", c.RecipeHandler.UploadRecipeImage)
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients", c.auth())
	ingredients.Get("", c.IngredientHandler.GetIngredients)
	ingredients.Post("", c.IngredientHandler.AddIngredient)
	ingredients.Patch("/:id", c.IngredientHandler.UpdateIngredient)
	ingredients.Delete("/:id", c.IngredientHandler.DeleteIngredient)
	ingredients.Get("/:id/usage", c.IngredientHandler.GetIngredientUsage)
}

func (c *Config) MealPlans() {
	plans := c.App.Group("/api/v1/meal-plans", c.auth())
	plans.Get("", c.MealPlanHandler.GetMealPlans)
	plans.Post("", c.MealPlanHandler.CreateMealPlan)
	plans.Get("/:id", c.MealPlanHandler.GetMealPlanDetail)
	plans.Patch("/:id", c.MealPlanHandler.UpdateMealPlan)
	plans.Delete("/:id", c.MealPlanHandler.DeleteMealPlan)
	plans.Post("/:id/recipes", c.MealPlanHandler.AddRecipe)
	plans.Delete("/:id/recipes/:recipe_id/:meal_type", c.MealPlanHandler.RemoveRecipe)
}

// Users is the admin surface.
func (c *Config) Users() {
	users := c.App.Group("/api/v1/users", c.auth(), c.Middleware.AdminMiddleware())
	users.Get("", c.UserHandler.GetUsers)
	users.Post("", c.UserHandler.CreateUser)
	users.Get("/:id", c.UserHandler.GetUser)
	users.Patch("/:id", c.UserHandler.UpdateUser)
	users.Delete("/:id", c.UserHandler.DeleteUser)
	users.Post("/:id/subscription", c.SubscriptionHandler.AssignPlan)
	users.Delete("/:id/subscription", c.SubscriptionHandler.CloseUserPlan)
}

func (c *Config) Subscriptions() {
	subs := c.App.Group("/api/v1/subscriptions")
	subs.Get("", c.SubscriptionHandler.GetPlans)
	subs.Post("", c.auth(), c.Middleware.AdminMiddleware(), c.SubscriptionHandler.CreatePlan)
	subs.Get("/current", c.auth(), c.SubscriptionHandler.GetCurrentSubscription)
	subs.Post("/activate", c.auth(), c.SubscriptionHandler.ActivatePlan)
	subs.Post("/close", c.auth(), c.SubscriptionHandler.ClosePlan)
	subs.Post("/checkout", c.auth(), c.SubscriptionHandler.CreateTransaction)
}

func (c *Config) Tips() {
	tips := c.App.Group("/api/v1/tips")
	tips.Get("", c.TipHandler.GetTips)
	tips.Post("", c.auth(), c.Middleware.AdminMiddleware(), c.TipHandler.CreateTip)
	tips.Put("/:id", c.auth(), c.Middleware.AdminMiddleware(), c.TipHandler.UpdateTip)
	tips.Delete("/:id", c.auth(), c.Middleware.AdminMiddleware(), c.TipHandler.DeleteTip)
}

func (c *Config) Expenses() {
	expenses := c.App.Group("/api/v1/expenses", c.auth())
	expenses.Get("", c.ExpenseHandler.GetExpenses)
	expenses.Post("", c.ExpenseHandler.AddExpense)
	expenses.Get("/weekly", c.ExpenseHandler.GetWeeklySpend)
	expenses.Delete("/:id", c.ExpenseHandler.DeleteExpense)
}
