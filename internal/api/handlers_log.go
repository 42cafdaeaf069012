package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/alencengic/modest-insights/internal/models"
)

type moodRequest struct {
	Date string `json:"date"`
	Mood string `json:"mood"`
}

func (handler *Handler) UpsertMood(c *fiber.Ctx) error {
	request := moodRequest{}
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid body")
	}
	date, ok := handler.parseDate(request.Date)
	if !ok {
		return badRequest(c, "invalid date")
	}
	if request.Mood == "" {
		return badRequest(c, "mood is required")
	}

	entry := models.MoodEntry{UserID: currentUser(c).ID, Date: date, Mood: request.Mood}
	if err := handler.repositories.Moods.Upsert(&entry); err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"id": entry.ID})
}

type productivityRequest struct {
	Date     string `json:"date"`
	Rating   int    `json:"rating"`
	ScaleMax int    `json:"scale_max"`
}

func (handler *Handler) UpsertProductivity(c *fiber.Ctx) error {
	request := productivityRequest{}
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid body")
	}
	date, ok := handler.parseDate(request.Date)
	if !ok {
		return badRequest(c, "invalid date")
	}
	if request.ScaleMax == 0 {
		request.ScaleMax = models.DefaultProductivityScale
	}
	if request.Rating < 1 || request.Rating > request.ScaleMax {
		return badRequest(c, "rating outside scale")
	}

	entry := models.ProductivityEntry{
		UserID:   currentUser(c).ID,
		Date:     date,
		Rating:   request.Rating,
		ScaleMax: request.ScaleMax,
	}
	if err := handler.repositories.Productivity.Upsert(&entry); err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"id": entry.ID})
}

type foodRequest struct {
	Date         string `json:"date"`
	Breakfast    string `json:"breakfast"`
	Lunch        string `json:"lunch"`
	Dinner       string `json:"dinner"`
	Snacks       string `json:"snacks"`
	WaterGlasses int    `json:"water_glasses"`
}

func (handler *Handler) UpsertFood(c *fiber.Ctx) error {
	request := foodRequest{}
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid body")
	}
	date, ok := handler.parseDate(request.Date)
	if !ok {
		return badRequest(c, "invalid date")
	}
	if request.WaterGlasses < 0 {
		return badRequest(c, "water_glasses must be non-negative")
	}

	intake := models.FoodIntake{
		UserID:       currentUser(c).ID,
		Date:         date,
		Breakfast:    request.Breakfast,
		Lunch:        request.Lunch,
		Dinner:       request.Dinner,
		Snacks:       request.Snacks,
		WaterGlasses: request.WaterGlasses,
	}
	if err := handler.repositories.Food.Upsert(&intake); err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"id": intake.ID})
}

type weatherRequest struct {
	Date        string  `json:"date"`
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Humidity    float64 `json:"humidity"`
	Pressure    float64 `json:"pressure"`
}

func (handler *Handler) UpsertWeather(c *fiber.Ctx) error {
	request := weatherRequest{}
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid body")
	}
	date, ok := handler.parseDate(request.Date)
	if !ok {
		return badRequest(c, "invalid date")
	}

	entry := models.WeatherEntry{
		UserID:      currentUser(c).ID,
		Date:        date,
		Temperature: request.Temperature,
		Condition:   request.Condition,
		Humidity:    request.Humidity,
		Pressure:    request.Pressure,
	}
	if err := handler.repositories.Weather.Upsert(&entry); err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"id": entry.ID})
}

type symptomRequest struct {
	MealID           *uint  `json:"meal_id"`
	MealTypeTag      string `json:"meal_type_tag"`
	Bloating         string `json:"bloating"`
	Energy           int    `json:"energy"`
	StoolConsistency int    `json:"stool_consistency"`
	Diarrhea         bool   `json:"diarrhea"`
	Nausea           bool   `json:"nausea"`
	Pain             bool   `json:"pain"`
}

func (handler *Handler) CreateSymptomReport(c *fiber.Ctx) error {
	request := symptomRequest{}
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid body")
	}
	if request.Bloating == "" {
		request.Bloating = models.BloatingNone
	}
	if request.Energy < 1 || request.Energy > 5 {
		return badRequest(c, "energy must be 1-5")
	}
	if request.StoolConsistency < 1 || request.StoolConsistency > 7 {
		return badRequest(c, "stool_consistency must be 1-7")
	}

	report := models.SymptomReport{
		UserID:           currentUser(c).ID,
		CreatedAt:        time.Now().In(handler.location),
		MealID:           request.MealID,
		MealTypeTag:      request.MealTypeTag,
		Bloating:         request.Bloating,
		Energy:           request.Energy,
		StoolConsistency: request.StoolConsistency,
		Diarrhea:         request.Diarrhea,
		Nausea:           request.Nausea,
		Pain:             request.Pain,
	}
	if err := handler.repositories.Symptoms.Create(&report); err != nil {
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": report.ID})
}

type workProfileRequest struct {
	WorkingDays []string `json:"working_days"`
	SportDays   []string `json:"sport_days"`
}

func (handler *Handler) UpsertWorkProfile(c *fiber.Ctx) error {
	request := workProfileRequest{}
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid body")
	}
	for _, day := range append(append([]string{}, request.WorkingDays...), request.SportDays...) {
		if !models.IsValidWeekdayName(day) {
			return badRequest(c, "invalid weekday name: "+day)
		}
	}

	profile := models.WorkProfile{
		UserID:      currentUser(c).ID,
		WorkingDays: request.WorkingDays,
		SportDays:   request.SportDays,
	}
	if err := handler.repositories.WorkProfiles.Upsert(&profile); err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"id": profile.ID})
}
