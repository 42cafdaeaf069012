package models

import "time"

const (
	MoodSad       = "Sad"
	MoodNeutral   = "Neutral"
	MoodHappy     = "Happy"
	MoodVeryHappy = "Very Happy"
	MoodEcstatic  = "Ecstatic"
)

// MoodEntry holds one mood rating per user and calendar date. Re-saving a
// date replaces the previous value (uidx_mood_user_date).
type MoodEntry struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_mood_user_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_mood_user_date"`
	Mood      string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
