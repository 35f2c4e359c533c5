package services

import "errors"

// User-facing workflow errors. Handlers pass the message through unchanged.
var (
	ErrTidakBerizin           = errors.New("tidak memiliki izin untuk aksi ini")
	ErrBukanPemilik           = errors.New("hanya pemilik yang dapat mengubah konten ini")
	ErrBukanModerator         = errors.New("hanya moderator atau admin yang dapat melakukan moderasi")
	ErrStatusTerkunci         = errors.New("konten hanya dapat diedit saat berstatus draft")
	ErrBelumBisaDisubmit      = errors.New("hanya konten draft yang dapat disubmit")
	ErrStatusBukanDireview    = errors.New("konten tidak sedang direview")
	ErrTidakBisaDiajukanUlang = errors.New("hanya konten terbit atau ditolak yang dapat diajukan ulang")
	ErrHanyaDraftDihapus      = errors.New("hanya konten draft yang dapat dihapus")
	ErrKataDuplikat           = errors.New("kata duplikat dalam pengajuan kamus")
)
