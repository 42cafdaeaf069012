package db

import (
	"time"

	"gorm.io/gorm"
)

type Repositories struct {
	Users        *UserRepository
	Moods        *MoodRepository
	Productivity *ProductivityRepository
	Food         *FoodRepository
	Symptoms     *SymptomRepository
	Weather      *WeatherRepository
	WorkProfiles *WorkProfileRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(database),
		Moods:        NewMoodRepository(database),
		Productivity: NewProductivityRepository(database),
		Food:         NewFoodRepository(database),
		Symptoms:     NewSymptomRepository(database),
		Weather:      NewWeatherRepository(database),
		WorkProfiles: NewWorkProfileRepository(database),
	}
}

// applyDateRange narrows a query to from <= date < to; nil bounds are open.
func applyDateRange(query *gorm.DB, column string, from *time.Time, to *time.Time) *gorm.DB {
	if from != nil {
		query = query.Where(column+" >= ?", *from)
	}
	if to != nil {
		query = query.Where(column+" < ?", *to)
	}
	return query
}
