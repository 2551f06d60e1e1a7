package models

import "time"

type Player struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:50;not null"`
	DiscordID   string  `gorm:"size:25;uniqueIndex;not null"` // Discord snowflake of the owning user
	DiscordName string  `gorm:"size:50"`
	Team        string  `gorm:"size:50"`
	APIKey      *string `gorm:"size:50;uniqueIndex"` // assigned later by /generate_apikey
	CreatedAt   time.Time
}
