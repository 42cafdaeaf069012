package db

import (
	"github.com/alencengic/modest-insights/internal/models"
	"gorm.io/gorm"
)

type WorkProfileRepository struct {
	database *gorm.DB
}

func NewWorkProfileRepository(database *gorm.DB) *WorkProfileRepository {
	return &WorkProfileRepository{database: database}
}

func (repo *WorkProfileRepository) FindWorkProfile(userID uint) (models.WorkProfile, bool, error) {
	profile := models.WorkProfile{}
	result := repo.database.Where("user_id = ?", userID).Limit(1).Find(&profile)
	if result.Error != nil {
		return models.WorkProfile{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WorkProfile{}, false, nil
	}
	return profile, true, nil
}

func (repo *WorkProfileRepository) Upsert(profile *models.WorkProfile) error {
	existing := models.WorkProfile{}
	result := repo.database.Where("user_id = ?", profile.UserID).Limit(1).Find(&existing)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		existing.WorkingDays = profile.WorkingDays
		existing.SportDays = profile.SportDays
		if err := repo.database.Save(&existing).Error; err != nil {
			return err
		}
		*profile = existing
		return nil
	}
	return repo.database.Create(profile).Error
}
