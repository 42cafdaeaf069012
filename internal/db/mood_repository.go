package db

import (
	"time"

	"github.com/alencengic/modest-insights/internal/models"
	"gorm.io/gorm"
)

type MoodRepository struct {
	database *gorm.DB
}

func NewMoodRepository(database *gorm.DB) *MoodRepository {
	return &MoodRepository{database: database}
}

func (repo *MoodRepository) ListMoodEntries(userID uint, from *time.Time, to *time.Time) ([]models.MoodEntry, error) {
	query := repo.database.Model(&models.MoodEntry{}).Where("user_id = ?", userID)
	query = applyDateRange(query, "date", from, to)

	entries := make([]models.MoodEntry, 0)
	if err := query.Order("date ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Upsert replaces the mood for an existing user+date, otherwise inserts.
// One rating per calendar date, never an append.
func (repo *MoodRepository) Upsert(entry *models.MoodEntry) error {
	existing := models.MoodEntry{}
	result := repo.database.
		Where("user_id = ? AND date = ?", entry.UserID, entry.Date).
		Limit(1).
		Find(&existing)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		existing.Mood = entry.Mood
		if err := repo.database.Save(&existing).Error; err != nil {
			return err
		}
		*entry = existing
		return nil
	}
	return repo.database.Create(entry).Error
}
