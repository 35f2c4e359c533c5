package repositories

import (
	"bahasa-indah-nusantara/models"

	"gorm.io/gorm"
)

// KamusRepository covers the dictionary-specific lookups the shared content
// repository cannot express.
type KamusRepository interface {
	CountByKata(kata, bahasaDaerah string) (int64, error)
}

type kamusRepository struct {
	db *gorm.DB
}

func NewKamusRepository(db *gorm.DB) KamusRepository {
	return &kamusRepository{db: db}
}

// CountByKata counts existing entries for a word within one regional
// language, used to reject duplicate dictionary submissions.
func (r *kamusRepository) CountByKata(kata, bahasaDaerah string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Kamus{}).
		Where("LOWER(kata) = LOWER(?) AND LOWER(bahasa_daerah) = LOWER(?)", kata, bahasaDaerah).
		Count(&count).Error
	return count, err
}
