package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/alencengic/modest-insights/internal/insights"
)

// Insight endpoints return 200 with an explicit empty-state payload when the
// user simply has no relevant records; an empty journal is not a failure.

func (handler *Handler) FoodMoodCorrelation(c *fiber.Ctx) error {
	rows, err := handler.insightSvc.FoodMoodCorrelation(currentUser(c).ID)
	return handler.respondCorrelations(c, rows, err)
}

func (handler *Handler) FoodProductivityCorrelation(c *fiber.Ctx) error {
	rows, err := handler.insightSvc.FoodProductivityCorrelation(currentUser(c).ID)
	return handler.respondCorrelations(c, rows, err)
}

func (handler *Handler) FoodSymptomCorrelation(c *fiber.Ctx) error {
	metric, err := insights.ParseSymptomMetric(c.Query("type"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "unknown symptom type",
			"allowed": insights.SymptomMetrics(),
		})
	}

	rows, err := handler.insightSvc.FoodSymptomCorrelation(currentUser(c).ID, metric)
	return handler.respondCorrelations(c, rows, err)
}

func (handler *Handler) respondCorrelations(c *fiber.Ctx, rows []insights.FoodCorrelation, err error) error {
	if errors.Is(err, insights.ErrNoData) {
		return c.JSON(fiber.Map{"correlations": []insights.FoodCorrelation{}, "empty": true})
	}
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"correlations": rows, "empty": false})
}

func (handler *Handler) WeatherMoodCorrelation(c *fiber.Ctx) error {
	rows, err := handler.insightSvc.WeatherMoodCorrelation(currentUser(c).ID)
	if errors.Is(err, insights.ErrNoData) {
		return c.JSON(fiber.Map{"correlations": []insights.ConditionCorrelation{}, "empty": true})
	}
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"correlations": rows, "empty": false})
}

func (handler *Handler) WorkingDayAnalysis(c *fiber.Ctx) error {
	result, err := handler.insightSvc.WorkingDayAnalysis(currentUser(c).ID)
	return handler.respondComparison(c, result, err)
}

func (handler *Handler) TrainingDayAnalysis(c *fiber.Ctx) error {
	result, err := handler.insightSvc.TrainingDayAnalysis(currentUser(c).ID)
	return handler.respondComparison(c, result, err)
}

func (handler *Handler) respondComparison(c *fiber.Ctx, result insights.ComparativeResult, err error) error {
	if errors.Is(err, insights.ErrNoData) {
		return c.JSON(fiber.Map{"empty": true})
	}
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"analysis": result, "empty": false})
}

func (handler *Handler) HydrationAnalysis(c *fiber.Ctx) error {
	result, err := handler.insightSvc.HydrationAnalysis(currentUser(c).ID)
	if errors.Is(err, insights.ErrNoData) {
		return c.JSON(fiber.Map{"empty": true})
	}
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"analysis": result, "empty": false})
}

func (handler *Handler) WeeklyInsights(c *fiber.Ctx) error {
	userID := currentUser(c).ID

	rawWeekOf := c.Query("week_of")
	if rawWeekOf == "" {
		summary, err := handler.insightSvc.WeeklyInsights(userID, nil)
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(summary)
	}

	weekOf, ok := handler.parseDate(rawWeekOf)
	if !ok {
		return badRequest(c, "invalid week_of date")
	}
	summary, err := handler.insightSvc.WeeklyInsights(userID, &weekOf)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(summary)
}
