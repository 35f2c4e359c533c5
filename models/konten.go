package models

import (
	"time"

	"gorm.io/gorm"
)

// Konten is the shared metadata embedded by every content table. The owner is
// set at creation and never changes afterwards.
type Konten struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	User      *User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Status    StatusKonten   `json:"status" gorm:"type:varchar(20);default:'draft';index"`
	Thumbnail string         `json:"thumbnail"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// Meta lets shared services reach the embedded metadata of any content row.
func (k *Konten) Meta() *Konten { return k }

// Kontenable is implemented by pointers to the four content models, so one
// repository and one workflow service cover all of them.
type Kontenable interface {
	Meta() *Konten
	Tipe() TipeKonten
}
