package db

import (
	"time"

	"github.com/alencengic/modest-insights/internal/models"
	"gorm.io/gorm"
)

type FoodRepository struct {
	database *gorm.DB
}

func NewFoodRepository(database *gorm.DB) *FoodRepository {
	return &FoodRepository{database: database}
}

func (repo *FoodRepository) ListFoodIntakes(userID uint, from *time.Time, to *time.Time) ([]models.FoodIntake, error) {
	query := repo.database.Model(&models.FoodIntake{}).Where("user_id = ?", userID)
	query = applyDateRange(query, "date", from, to)

	intakes := make([]models.FoodIntake, 0)
	if err := query.Order("date ASC, id ASC").Find(&intakes).Error; err != nil {
		return nil, err
	}
	return intakes, nil
}

// Upsert overwrites all meal slots and the water value for an existing
// user+date row.
func (repo *FoodRepository) Upsert(intake *models.FoodIntake) error {
	existing := models.FoodIntake{}
	result := repo.database.
		Where("user_id = ? AND date = ?", intake.UserID, intake.Date).
		Limit(1).
		Find(&existing)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		existing.Breakfast = intake.Breakfast
		existing.Lunch = intake.Lunch
		existing.Dinner = intake.Dinner
		existing.Snacks = intake.Snacks
		existing.WaterGlasses = intake.WaterGlasses
		if err := repo.database.Save(&existing).Error; err != nil {
			return err
		}
		*intake = existing
		return nil
	}
	return repo.database.Create(intake).Error
}
