package repositories

import (
	"fmt"

	"bahasa-indah-nusantara/models"

	"gorm.io/gorm"
)

// KontenRepository persists the four content tables through the shared
// models.Kontenable interface; GORM reflects over the concrete pointer, so a
// single implementation serves kamus, cerita, makna_kata and artikel alike.
type KontenRepository interface {
	Create(item models.Kontenable) error
	Save(item models.Kontenable) error
	Delete(item models.Kontenable) error
	GetByID(item models.Kontenable, id uint) error
	List(dest interface{}, model models.Kontenable, params models.KontenListParams, publicOnly bool) (int64, error)
	ReplaceTags(item models.Kontenable, tags []models.Tag) error
	UpdateStatus(item models.Kontenable, status models.StatusKonten) error
}

type kontenRepository struct {
	db *gorm.DB
}

func NewKontenRepository(db *gorm.DB) KontenRepository {
	return &kontenRepository{db: db}
}

// tagJoin maps a content type to its table and many2many join metadata.
func tagJoin(tipe models.TipeKonten) (table, joinTable, joinFK string) {
	switch tipe {
	case models.TipeKamus:
		return "kamus", "kamus_tags", "kamus_id"
	case models.TipeCerita:
		return "cerita", "cerita_tags", "cerita_id"
	case models.TipeMaknaKata:
		return "makna_kata", "makna_kata_tags", "makna_kata_id"
	case models.TipeArtikel:
		return "artikel", "artikel_tags", "artikel_id"
	}
	return "", "", ""
}

func (r *kontenRepository) Create(item models.Kontenable) error {
	return r.db.Create(item).Error
}

func (r *kontenRepository) Save(item models.Kontenable) error {
	return r.db.Save(item).Error
}

func (r *kontenRepository) Delete(item models.Kontenable) error {
	return r.db.Delete(item).Error
}

func (r *kontenRepository) GetByID(item models.Kontenable, id uint) error {
	return r.db.Preload("Tags").Preload("User").First(item, id).Error
}

func (r *kontenRepository) List(dest interface{}, model models.Kontenable, params models.KontenListParams, publicOnly bool) (int64, error) {
	table, joinTable, joinFK := tagJoin(model.Tipe())

	query := r.db.Model(model).Preload("Tags").Preload("User")

	if publicOnly {
		query = query.Where("status = ?", models.StatusTerbit)
	} else if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if params.UserID > 0 {
		query = query.Where("user_id = ?", params.UserID)
	}

	if params.TagID > 0 {
		query = query.Joins(fmt.Sprintf("JOIN %s ON %s.%s = %s.id", joinTable, joinTable, joinFK, table)).
			Where(joinTable+".tag_id = ?", params.TagID)
	}

	var total int64
	query.Count(&total)

	sortBy := params.SortBy
	switch sortBy {
	case "created_at", "updated_at":
	default:
		sortBy = "created_at"
	}
	sortOrder := params.SortOrder
	if sortOrder != "asc" {
		sortOrder = "desc"
	}
	query = query.Order(fmt.Sprintf("%s.%s %s", table, sortBy, sortOrder))

	offset := (params.Page - 1) * params.Limit
	err := query.Offset(offset).Limit(params.Limit).Find(dest).Error

	return total, err
}

// ReplaceTags swaps the item's tag associations wholesale.
func (r *kontenRepository) ReplaceTags(item models.Kontenable, tags []models.Tag) error {
	return r.db.Model(item).Association("Tags").Replace(&tags)
}

// UpdateStatus writes the status transition as a single column update, so a
// failed transition leaves the previous status observable.
func (r *kontenRepository) UpdateStatus(item models.Kontenable, status models.StatusKonten) error {
	if err := r.db.Model(item).Update("status", status).Error; err != nil {
		return err
	}
	item.Meta().Status = status
	return nil
}
