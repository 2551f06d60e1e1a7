package db

import (
	"fmt"
	"log"
	"time"

	"github.com/thomasgonda3/mk8dx-race-history-discord-bot/config"
	"github.com/thomasgonda3/mk8dx-race-history-discord-bot/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDatabase(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=5432 sslmode=disable TimeZone=UTC",
		cfg.DatabaseHost, cfg.DatabaseUser, cfg.DatabasePassword, cfg.ActiveDatabase())
	DB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(&models.Player{}, &models.Race{})
	if err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatalf("Failed to access underlying connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1000)
	sqlDB.SetMaxIdleConns(0)
	sqlDB.SetConnMaxIdleTime(30 * time.Second)

	return DB
}
