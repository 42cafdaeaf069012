package api

import (
	"time"

	"github.com/alencengic/modest-insights/internal/db"
	"github.com/alencengic/modest-insights/internal/insights"
	"gorm.io/gorm"
)

type Handler struct {
	repositories *db.Repositories
	insightSvc   *insights.Service
	secretKey    []byte
	tokenTTL     time.Duration
	location     *time.Location
}

func NewHandler(database *gorm.DB, secretKey string, tokenTTL time.Duration, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	if tokenTTL <= 0 {
		tokenTTL = 72 * time.Hour
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		repositories: repositories,
		insightSvc: insights.NewService(
			repositories.Moods,
			repositories.Productivity,
			repositories.Food,
			repositories.Symptoms,
			repositories.Weather,
			repositories.WorkProfiles,
			location,
		),
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
		location:  location,
	}
}
