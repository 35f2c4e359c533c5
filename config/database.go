package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bahasa-indah-nusantara/models"
)

// InitDB opens the Postgres connection and migrates the schema.
func InitDB(cfg *Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.IzinKonten{},
		&models.SuspendUser{},
		&models.Tag{},
		&models.Kamus{},
		&models.Cerita{},
		&models.MaknaKata{},
		&models.Artikel{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	return db
}
