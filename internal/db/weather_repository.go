package db

import (
	"time"

	"github.com/alencengic/modest-insights/internal/models"
	"gorm.io/gorm"
)

type WeatherRepository struct {
	database *gorm.DB
}

func NewWeatherRepository(database *gorm.DB) *WeatherRepository {
	return &WeatherRepository{database: database}
}

func (repo *WeatherRepository) ListWeatherEntries(userID uint, from *time.Time, to *time.Time) ([]models.WeatherEntry, error) {
	query := repo.database.Model(&models.WeatherEntry{}).Where("user_id = ?", userID)
	query = applyDateRange(query, "date", from, to)

	entries := make([]models.WeatherEntry, 0)
	if err := query.Order("date ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *WeatherRepository) Upsert(entry *models.WeatherEntry) error {
	existing := models.WeatherEntry{}
	result := repo.database.
		Where("user_id = ? AND date = ?", entry.UserID, entry.Date).
		Limit(1).
		Find(&existing)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		existing.Temperature = entry.Temperature
		existing.Condition = entry.Condition
		existing.Humidity = entry.Humidity
		existing.Pressure = entry.Pressure
		if err := repo.database.Save(&existing).Error; err != nil {
			return err
		}
		*entry = existing
		return nil
	}
	return repo.database.Create(entry).Error
}
