package db

import (
	"time"

	"github.com/alencengic/modest-insights/internal/models"
	"gorm.io/gorm"
)

type SymptomRepository struct {
	database *gorm.DB
}

func NewSymptomRepository(database *gorm.DB) *SymptomRepository {
	return &SymptomRepository{database: database}
}

// ListSymptomReports filters on created_at: symptom reports are per-meal
// events, several may share a date.
func (repo *SymptomRepository) ListSymptomReports(userID uint, from *time.Time, to *time.Time) ([]models.SymptomReport, error) {
	query := repo.database.Model(&models.SymptomReport{}).Where("user_id = ?", userID)
	query = applyDateRange(query, "created_at", from, to)

	reports := make([]models.SymptomReport, 0)
	if err := query.Order("created_at ASC, id ASC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (repo *SymptomRepository) Create(report *models.SymptomReport) error {
	return repo.database.Create(report).Error
}
