package models

import "time"

const (
	ModeCasual     = "Casual"
	ModeMogi       = "Mogi"
	ModeTournament = "Tournament"
	ModeWar        = "War"
)

type Race struct {
	ID        uint   `gorm:"primaryKey"`
	PlayerID  uint   `gorm:"not null;index"`
	Player    Player `gorm:"foreignKey:PlayerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	DiscordID string `gorm:"size:25;not null;index"` // denormalized from Player for the ownership check
	Track     string `gorm:"size:50;not null"`       // canonical abbreviation
	Mode      string `gorm:"size:50;not null"`
	Result    int    `gorm:"not null"` // placement, 1-12
	CreatedAt time.Time
}
