package repositories

import (
	"bahasa-indah-nusantara/models"

	"gorm.io/gorm"
)

type IzinRepository interface {
	GetByUserAndTipe(userID uint, tipe models.TipeKonten) (*models.IzinKonten, error)
	GetByUser(userID uint) ([]models.IzinKonten, error)
}

type izinRepository struct {
	db *gorm.DB
}

func NewIzinRepository(db *gorm.DB) IzinRepository {
	return &izinRepository{db: db}
}

func (r *izinRepository) GetByUserAndTipe(userID uint, tipe models.TipeKonten) (*models.IzinKonten, error) {
	var izin models.IzinKonten
	err := r.db.Where("user_id = ? AND tipe_konten = ?", userID, tipe).First(&izin).Error
	return &izin, err
}

func (r *izinRepository) GetByUser(userID uint) ([]models.IzinKonten, error) {
	var izin []models.IzinKonten
	err := r.db.Where("user_id = ?", userID).Find(&izin).Error
	return izin, err
}
