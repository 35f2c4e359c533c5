package services

import (
	"errors"

	"bahasa-indah-nusantara/models"
	"bahasa-indah-nusantara/repositories"

	"gorm.io/gorm"
)

// ErrUserTidakDitemukan maps to a 404 on the privileged lookup endpoints.
var ErrUserTidakDitemukan = errors.New("user tidak ditemukan")

// AdminService backs the privileged endpoints that require the service-role
// key. It never runs under an end-user session.
type AdminService interface {
	GetAllUsers() ([]models.User, error)
	GetEmailByUsername(username string) (string, error)
}

type adminService struct {
	userRepo repositories.UserRepository
}

func NewAdminService(userRepo repositories.UserRepository) AdminService {
	return &adminService{userRepo: userRepo}
}

func (s *adminService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

func (s *adminService) GetEmailByUsername(username string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserTidakDitemukan
		}
		return "", err
	}
	return user.Email, nil
}
