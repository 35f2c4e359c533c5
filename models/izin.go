package models

import "time"

// IzinKonten holds the three contribution permissions for one user on one
// content type. A missing row means no permission at all.
type IzinKonten struct {
	ID           uint       `json:"id" gorm:"primarykey"`
	UserID       uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_izin_user_tipe"`
	TipeKonten   TipeKonten `json:"tipe_konten" gorm:"type:varchar(20);not null;uniqueIndex:idx_izin_user_tipe"`
	BolehBuat    bool       `json:"boleh_buat" gorm:"default:false"`
	BolehEdit    bool       `json:"boleh_edit" gorm:"default:false"`
	BolehSetujui bool       `json:"boleh_setujui" gorm:"default:false"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Boleh answers a single permission question, fail-closed on unknown actions.
func (i IzinKonten) Boleh(aksi AksiIzin) bool {
	switch aksi {
	case AksiBuat:
		return i.BolehBuat
	case AksiEdit:
		return i.BolehEdit
	case AksiSetujui:
		return i.BolehSetujui
	}
	return false
}
