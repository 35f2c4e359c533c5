package models

// StatusKonten is the lifecycle status shared by every content type.
type StatusKonten string

const (
	StatusDraft    StatusKonten = "draft"
	StatusDireview StatusKonten = "direview"
	StatusTerbit   StatusKonten = "terbit"
	StatusDitolak  StatusKonten = "ditolak"
)

// StatusKadaluarsa is reserved for suspensions, never for content rows.
const StatusKadaluarsa = "kadaluarsa"

func (s StatusKonten) Valid() bool {
	switch s {
	case StatusDraft, StatusDireview, StatusTerbit, StatusDitolak:
		return true
	}
	return false
}

// BisaDiedit reports whether the owner may still change the payload.
func (s StatusKonten) BisaDiedit() bool {
	return s == StatusDraft
}

// BisaDisubmit reports whether the owner may submit the item for review.
func (s StatusKonten) BisaDisubmit() bool {
	return s == StatusDraft
}

// BisaDimoderasi reports whether a moderator may approve or reject.
func (s StatusKonten) BisaDimoderasi() bool {
	return s == StatusDireview
}

// BisaDiajukanUlang reports whether the owner may resubmit for review.
func (s StatusKonten) BisaDiajukanUlang() bool {
	return s == StatusTerbit || s == StatusDitolak
}

// BisaDihapus reports whether the owner may delete the item.
func (s StatusKonten) BisaDihapus() bool {
	return s == StatusDraft
}

// TujuanSubmit returns the status a submission lands in. Owners holding the
// approve permission publish directly, everyone else enters review.
func TujuanSubmit(bolehSetujui bool) StatusKonten {
	if bolehSetujui {
		return StatusTerbit
	}
	return StatusDireview
}
