package db

import (
	"time"

	"github.com/alencengic/modest-insights/internal/models"
	"gorm.io/gorm"
)

type ProductivityRepository struct {
	database *gorm.DB
}

func NewProductivityRepository(database *gorm.DB) *ProductivityRepository {
	return &ProductivityRepository{database: database}
}

func (repo *ProductivityRepository) ListProductivityEntries(userID uint, from *time.Time, to *time.Time) ([]models.ProductivityEntry, error) {
	query := repo.database.Model(&models.ProductivityEntry{}).Where("user_id = ?", userID)
	query = applyDateRange(query, "date", from, to)

	entries := make([]models.ProductivityEntry, 0)
	if err := query.Order("date ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *ProductivityRepository) Upsert(entry *models.ProductivityEntry) error {
	existing := models.ProductivityEntry{}
	result := repo.database.
		Where("user_id = ? AND date = ?", entry.UserID, entry.Date).
		Limit(1).
		Find(&existing)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		existing.Rating = entry.Rating
		existing.ScaleMax = entry.ScaleMax
		if err := repo.database.Save(&existing).Error; err != nil {
			return err
		}
		*entry = existing
		return nil
	}
	return repo.database.Create(entry).Error
}
