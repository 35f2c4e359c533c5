package repositories

import (
	"time"

	"bahasa-indah-nusantara/models"

	"gorm.io/gorm"
)

type SuspendRepository interface {
	GetAktifByUser(userID uint) (*models.SuspendUser, error)
	ExpireDue(now time.Time) (int64, error)
}

type suspendRepository struct {
	db *gorm.DB
}

func NewSuspendRepository(db *gorm.DB) SuspendRepository {
	return &suspendRepository{db: db}
}

func (r *suspendRepository) GetAktifByUser(userID uint) (*models.SuspendUser, error) {
	var suspend models.SuspendUser
	err := r.db.Where("user_id = ? AND status = ?", userID, models.SuspendAktif).First(&suspend).Error
	return &suspend, err
}

// ExpireDue flips every aktif suspension whose release time has passed to
// kadaluarsa and returns how many rows changed. Safe to invoke repeatedly.
func (r *suspendRepository) ExpireDue(now time.Time) (int64, error) {
	result := r.db.Model(&models.SuspendUser{}).
		Where("status = ? AND lepas_suspend IS NOT NULL AND lepas_suspend <= ?", models.SuspendAktif, now).
		Update("status", models.SuspendKadaluarsa)
	return result.RowsAffected, result.Error
}
