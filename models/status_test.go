package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	for _, status := range []StatusKonten{StatusDraft, StatusDireview, StatusTerbit, StatusDitolak} {
		assert.True(t, status.Valid(), string(status))
	}

	assert.False(t, StatusKonten("kadaluarsa").Valid(), "kadaluarsa hanya untuk suspensi")
	assert.False(t, StatusKonten("").Valid())
	assert.False(t, StatusKonten("published").Valid())
}

func TestTransisiPerStatus(t *testing.T) {
	cases := []struct {
		status      StatusKonten
		edit        bool
		submit      bool
		moderasi    bool
		ajukanUlang bool
		hapus       bool
	}{
		{StatusDraft, true, true, false, false, true},
		{StatusDireview, false, false, true, false, false},
		{StatusTerbit, false, false, false, true, false},
		{StatusDitolak, false, false, false, true, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.edit, tc.status.BisaDiedit(), "%s edit", tc.status)
		assert.Equal(t, tc.submit, tc.status.BisaDisubmit(), "%s submit", tc.status)
		assert.Equal(t, tc.moderasi, tc.status.BisaDimoderasi(), "%s moderasi", tc.status)
		assert.Equal(t, tc.ajukanUlang, tc.status.BisaDiajukanUlang(), "%s ajukan ulang", tc.status)
		assert.Equal(t, tc.hapus, tc.status.BisaDihapus(), "%s hapus", tc.status)
	}
}

func TestTujuanSubmit(t *testing.T) {
	assert.Equal(t, StatusTerbit, TujuanSubmit(true))
	assert.Equal(t, StatusDireview, TujuanSubmit(false))
}

func TestIzinBolehFailClosed(t *testing.T) {
	izin := IzinKonten{BolehBuat: true, BolehEdit: false, BolehSetujui: true}

	assert.True(t, izin.Boleh(AksiBuat))
	assert.False(t, izin.Boleh(AksiEdit))
	assert.True(t, izin.Boleh(AksiSetujui))
	assert.False(t, izin.Boleh(AksiIzin("hapus")), "aksi tak dikenal selalu false")

	kosong := IzinKonten{}
	for _, aksi := range []AksiIzin{AksiBuat, AksiEdit, AksiSetujui} {
		assert.False(t, kosong.Boleh(aksi))
	}
}

func TestBisaModerasi(t *testing.T) {
	assert.False(t, RoleUser.BisaModerasi())
	assert.True(t, RoleModerator.BisaModerasi())
	assert.True(t, RoleAdmin.BisaModerasi())
}
