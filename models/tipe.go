package models

// TipeKonten identifies one of the four content tables.
type TipeKonten string

const (
	TipeKamus     TipeKonten = "kamus"
	TipeCerita    TipeKonten = "cerita"
	TipeMaknaKata TipeKonten = "makna_kata"
	TipeArtikel   TipeKonten = "artikel"
)

func (t TipeKonten) Valid() bool {
	switch t {
	case TipeKamus, TipeCerita, TipeMaknaKata, TipeArtikel:
		return true
	}
	return false
}

// AksiIzin is an action checked against the per-user permission record.
type AksiIzin string

const (
	AksiBuat    AksiIzin = "buat"
	AksiEdit    AksiIzin = "edit"
	AksiSetujui AksiIzin = "setujui"
)
