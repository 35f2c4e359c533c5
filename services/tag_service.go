package services

import (
	"errors"
	"strings"

	"bahasa-indah-nusantara/models"
	"bahasa-indah-nusantara/repositories"

	"gorm.io/gorm"
)

type TagService interface {
	CreateTag(name string) (*models.Tag, error)
	GetTags() ([]models.Tag, error)
	GetTag(id uint) (*models.Tag, error)
	ResolveNames(names []string) ([]models.Tag, error)
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) CreateTag(name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("nama tag tidak boleh kosong")
	}

	_, err := s.tagRepo.GetByName(name)
	if err == nil {
		return nil, errors.New("tag sudah ada")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag := &models.Tag{Name: name}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}

	return tag, nil
}

func (s *tagService) GetTags() ([]models.Tag, error) {
	return s.tagRepo.GetAll()
}

func (s *tagService) GetTag(id uint) (*models.Tag, error) {
	return s.tagRepo.GetByID(id)
}

// ResolveNames maps free-text tag names onto Tag rows, creating missing ones
// lazily. Names are deduplicated case-insensitively within one call.
func (s *tagService) ResolveNames(names []string) ([]models.Tag, error) {
	var tags []models.Tag
	seen := make(map[string]bool)

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true

		tag, err := s.tagRepo.GetByName(name)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			tag = &models.Tag{Name: name}
			if err := s.tagRepo.Create(tag); err != nil {
				return nil, err
			}
		}
		tags = append(tags, *tag)
	}

	return tags, nil
}
