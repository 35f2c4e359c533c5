package models

// MaknaKata is a word-meaning article: one word discussed in depth.
type MaknaKata struct {
	Konten
	Kata         string `json:"kata" gorm:"not null;index"`
	Makna        string `json:"makna" gorm:"type:text"`
	BahasaDaerah string `json:"bahasa_daerah"`
	Tags         []Tag  `json:"tags" gorm:"many2many:makna_kata_tags;"`
}

func (*MaknaKata) Tipe() TipeKonten { return TipeMaknaKata }

func (MaknaKata) TableName() string { return "makna_kata" }
