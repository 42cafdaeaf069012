package models

import "time"

const DefaultProductivityScale = 5

// ProductivityEntry stores the raw rating together with the scale it was
// captured on. Call sites historically mixed 1-5 and 1-10 scales, so the
// scale travels with the record instead of being assumed.
type ProductivityEntry struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_productivity_user_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_productivity_user_date"`
	Rating    int       `gorm:"not null"`
	ScaleMax  int       `gorm:"not null;default:5"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
