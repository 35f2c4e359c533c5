package models

// Cerita is a folk story or narrative written in (or about) a regional
// language.
type Cerita struct {
	Konten
	Judul        string `json:"judul" gorm:"not null"`
	Isi          string `json:"isi" gorm:"type:text"`
	BahasaDaerah string `json:"bahasa_daerah"`
	Tags         []Tag  `json:"tags" gorm:"many2many:cerita_tags;"`
}

func (*Cerita) Tipe() TipeKonten { return TipeCerita }

func (Cerita) TableName() string { return "cerita" }
