package models

import "time"

// WeekdayNames matches time.Weekday.String() output and is the only spelling
// accepted in working/sport day sets.
var WeekdayNames = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// WorkProfile classifies any date as working/non-working and
// training/non-training for the comparative analyses.
type WorkProfile struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;uniqueIndex"`
	WorkingDays []string  `gorm:"serializer:json"`
	SportDays   []string  `gorm:"serializer:json"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (profile WorkProfile) IsWorkingDay(date time.Time) bool {
	return containsWeekday(profile.WorkingDays, date)
}

func (profile WorkProfile) IsSportDay(date time.Time) bool {
	return containsWeekday(profile.SportDays, date)
}

func containsWeekday(days []string, date time.Time) bool {
	name := date.Weekday().String()
	for _, day := range days {
		if day == name {
			return true
		}
	}
	return false
}

// IsValidWeekdayName reports whether name is one of the seven canonical
// weekday spellings.
func IsValidWeekdayName(name string) bool {
	for _, day := range WeekdayNames {
		if day == name {
			return true
		}
	}
	return false
}
