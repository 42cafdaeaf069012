package models

import "time"

type WeatherEntry struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;uniqueIndex:uidx_weather_user_date"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:uidx_weather_user_date"`
	Temperature float64
	Condition   string
	Humidity    float64
	Pressure    float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
