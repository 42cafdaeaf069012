package models

import "time"

const (
	BloatingNone     = "none"
	BloatingMild     = "mild"
	BloatingModerate = "moderate"
	BloatingSevere   = "severe"
)

const (
	MealTagBreakfast = "breakfast"
	MealTagLunch     = "lunch"
	MealTagDinner    = "dinner"
	MealTagSnacks    = "snacks"
)

// SymptomReport is one post-meal reaction entry. Unlike the daily records
// there may be several per date, one per meal reacted to; the engine
// averages all reports sharing a created_at date.
type SymptomReport struct {
	ID               uint      `gorm:"primaryKey"`
	UserID           uint      `gorm:"not null;index"`
	CreatedAt        time.Time `gorm:"not null;index"`
	MealID           *uint
	MealTypeTag      string
	Bloating         string `gorm:"not null;default:none"`
	Energy           int    `gorm:"not null"`
	StoolConsistency int    `gorm:"not null"`
	Diarrhea         bool   `gorm:"not null;default:false"`
	Nausea           bool   `gorm:"not null;default:false"`
	Pain             bool   `gorm:"not null;default:false"`
}
