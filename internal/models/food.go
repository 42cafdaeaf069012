package models

import "time"

// FoodIntake keeps the four meal slots as comma-separated free text, exactly
// as entered, plus the day's water intake in glasses. One row per user+date.
type FoodIntake struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;uniqueIndex:uidx_food_user_date"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:uidx_food_user_date"`
	Breakfast    string
	Lunch        string
	Dinner       string
	Snacks       string
	WaterGlasses int `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MealTexts returns the slot contents in a fixed order.
func (intake FoodIntake) MealTexts() []string {
	return []string{intake.Breakfast, intake.Lunch, intake.Dinner, intake.Snacks}
}
