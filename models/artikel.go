package models

// Artikel is an editorial article. Isi holds the serialized rich-text
// document produced by the editor.
type Artikel struct {
	Konten
	Judul string `json:"judul" gorm:"not null"`
	Isi   string `json:"isi" gorm:"type:text"`
	Tags  []Tag  `json:"tags" gorm:"many2many:artikel_tags;"`
}

func (*Artikel) Tipe() TipeKonten { return TipeArtikel }

func (Artikel) TableName() string { return "artikel" }
