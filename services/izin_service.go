package services

import (
	"errors"
	"fmt"
	"time"

	"bahasa-indah-nusantara/models"
	"bahasa-indah-nusantara/repositories"

	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

// IzinService answers permission questions against the izin_konten table.
// Records are cached per (user, tipe) for the lifetime of a typical session,
// and every unknown or failing lookup is treated as no permission.
type IzinService interface {
	Boleh(userID uint, tipe models.TipeKonten, aksi models.AksiIzin) bool
	GetByUser(userID uint) ([]models.IzinKonten, error)
}

type izinService struct {
	izinRepo repositories.IzinRepository
	cache    *gocache.Cache
}

func NewIzinService(izinRepo repositories.IzinRepository) IzinService {
	return &izinService{
		izinRepo: izinRepo,
		cache:    gocache.New(15*time.Minute, 30*time.Minute),
	}
}

func (s *izinService) Boleh(userID uint, tipe models.TipeKonten, aksi models.AksiIzin) bool {
	if userID == 0 || !tipe.Valid() {
		return false
	}

	key := fmt.Sprintf("%d:%s", userID, tipe)
	if cached, ok := s.cache.Get(key); ok {
		izin := cached.(models.IzinKonten)
		return izin.Boleh(aksi)
	}

	izin, err := s.izinRepo.GetByUserAndTipe(userID, tipe)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Absent record berarti semua izin false
			s.cache.Set(key, models.IzinKonten{}, gocache.DefaultExpiration)
		}
		return false
	}

	s.cache.Set(key, *izin, gocache.DefaultExpiration)
	return izin.Boleh(aksi)
}

func (s *izinService) GetByUser(userID uint) ([]models.IzinKonten, error) {
	return s.izinRepo.GetByUser(userID)
}
