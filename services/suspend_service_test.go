package services

import (
	"testing"

	"bahasa-indah-nusantara/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCekAktifTanpaSuspensi(t *testing.T) {
	svc := NewSuspendService(newFakeSuspendRepo())

	suspend, err := svc.CekAktif(7)

	require.NoError(t, err)
	assert.Nil(t, suspend)
}

func TestCekAktifDenganSuspensi(t *testing.T) {
	repo := newFakeSuspendRepo()
	repo.aktif[7] = models.SuspendUser{UserID: 7, Status: models.SuspendAktif, Alasan: "spam"}
	svc := NewSuspendService(repo)

	suspend, err := svc.CekAktif(7)

	require.NoError(t, err)
	require.NotNil(t, suspend)
	assert.Equal(t, "spam", suspend.Alasan)
}

func TestExpireDueTanpaYangJatuhTempo(t *testing.T) {
	repo := newFakeSuspendRepo()
	svc := NewSuspendService(repo)

	updated, err := svc.ExpireDue()

	require.NoError(t, err)
	assert.Zero(t, updated)
	assert.Equal(t, 1, repo.expireRan)
}

func TestExpireDueMelaporkanJumlah(t *testing.T) {
	repo := newFakeSuspendRepo()
	repo.dueCount = 3
	svc := NewSuspendService(repo)

	updated, err := svc.ExpireDue()

	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)
}
