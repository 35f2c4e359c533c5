package models

// Kamus is one dictionary entry of a regional language.
type Kamus struct {
	Konten
	Kata         string `json:"kata" gorm:"not null;index"`
	Arti         string `json:"arti" gorm:"type:text"`
	BahasaDaerah string `json:"bahasa_daerah"`
	Contoh       string `json:"contoh" gorm:"type:text"`
	Tags         []Tag  `json:"tags" gorm:"many2many:kamus_tags;"`
}

func (*Kamus) Tipe() TipeKonten { return TipeKamus }

func (Kamus) TableName() string { return "kamus" }
