package services

import (
	"errors"
	"time"

	"bahasa-indah-nusantara/models"
	"bahasa-indah-nusantara/repositories"

	"gorm.io/gorm"
)

type SuspendService interface {
	// CekAktif returns the active suspension for a user, or nil when none.
	CekAktif(userID uint) (*models.SuspendUser, error)
	// ExpireDue flips overdue aktif suspensions to kadaluarsa and reports the
	// number of rows changed. Invoked by the external scheduler.
	ExpireDue() (int64, error)
}

type suspendService struct {
	suspendRepo repositories.SuspendRepository
}

func NewSuspendService(suspendRepo repositories.SuspendRepository) SuspendService {
	return &suspendService{suspendRepo: suspendRepo}
}

func (s *suspendService) CekAktif(userID uint) (*models.SuspendUser, error) {
	suspend, err := s.suspendRepo.GetAktifByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return suspend, nil
}

func (s *suspendService) ExpireDue() (int64, error) {
	return s.suspendRepo.ExpireDue(time.Now())
}
