package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	auth := app.Group("/api/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	capture := app.Group("/api/log", handler.AuthRequired)
	capture.Post("/mood", handler.UpsertMood)
	capture.Post("/productivity", handler.UpsertProductivity)
	capture.Post("/food", handler.UpsertFood)
	capture.Post("/weather", handler.UpsertWeather)
	capture.Post("/symptom", handler.CreateSymptomReport)

	app.Put("/api/profile/work", handler.AuthRequired, handler.UpsertWorkProfile)

	engine := app.Group("/api/insights", handler.AuthRequired)
	engine.Get("/correlations/food-mood", handler.FoodMoodCorrelation)
	engine.Get("/correlations/food-productivity", handler.FoodProductivityCorrelation)
	engine.Get("/correlations/food-symptom", handler.FoodSymptomCorrelation)
	engine.Get("/correlations/weather-mood", handler.WeatherMoodCorrelation)
	engine.Get("/analysis/working-days", handler.WorkingDayAnalysis)
	engine.Get("/analysis/training-days", handler.TrainingDayAnalysis)
	engine.Get("/analysis/hydration", handler.HydrationAnalysis)
	engine.Get("/weekly", handler.WeeklyInsights)
}
