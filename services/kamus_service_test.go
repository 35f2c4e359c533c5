package services

import (
	"context"
	"testing"

	"bahasa-indah-nusantara/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKamusFixture(izinRepo *fakeIzinRepo) (*fakeKamusRepo, *fakeKontenRepo, KamusService) {
	kamusRepo := newFakeKamusRepo()
	kontenRepo := newFakeKontenRepo()
	izin := NewIzinService(izinRepo)
	workflow := NewWorkflowService(kontenRepo, &fakeTagService{}, izin, &fakeMediaService{})
	return kamusRepo, kontenRepo, NewKamusService(kamusRepo, workflow, izin)
}

func batchTigaKata() models.KamusBatchRequest {
	return models.KamusBatchRequest{
		Entries: []models.KamusRequest{
			{Kata: "banyu", Arti: "air", BahasaDaerah: "Jawa"},
			{Kata: "geni", Arti: "api", BahasaDaerah: "Jawa"},
			{Kata: "angin", Arti: "angin", BahasaDaerah: "Jawa"},
		},
	}
}

func TestBuatBatchTanpaIzin(t *testing.T) {
	_, kontenRepo, kamus := newKamusFixture(newFakeIzinRepo())

	_, err := kamus.BuatBatch(context.Background(), models.Actor{UserID: 7, Role: models.RoleUser}, batchTigaKata())

	assert.ErrorIs(t, err, ErrTidakBerizin)
	assert.Empty(t, kontenRepo.saved)
}

func TestBuatBatchSemuaDraft(t *testing.T) {
	izinRepo := newFakeIzinRepo()
	izinRepo.set(7, models.TipeKamus, true, false, false)
	_, kontenRepo, kamus := newKamusFixture(izinRepo)

	created, err := kamus.BuatBatch(context.Background(), models.Actor{UserID: 7, Role: models.RoleUser}, batchTigaKata())

	require.NoError(t, err)
	require.Len(t, created, 3)
	assert.Len(t, kontenRepo.saved, 3)
	for _, item := range created {
		assert.Equal(t, models.StatusDraft, item.Status)
		assert.Equal(t, uint(7), item.UserID)
	}
}

func TestBuatBatchDenganSubmit(t *testing.T) {
	izinRepo := newFakeIzinRepo()
	izinRepo.set(7, models.TipeKamus, true, false, false)
	_, _, kamus := newKamusFixture(izinRepo)

	req := batchTigaKata()
	req.Submit = true
	created, err := kamus.BuatBatch(context.Background(), models.Actor{UserID: 7, Role: models.RoleUser}, req)

	require.NoError(t, err)
	require.Len(t, created, 3)
	for _, item := range created {
		assert.Equal(t, models.StatusDireview, item.Status)
	}
}

func TestBuatBatchDuplikatDalamBatch(t *testing.T) {
	izinRepo := newFakeIzinRepo()
	izinRepo.set(7, models.TipeKamus, true, false, false)
	_, kontenRepo, kamus := newKamusFixture(izinRepo)

	req := batchTigaKata()
	req.Entries[2].Kata = "Banyu" // case-insensitive terhadap entri pertama

	_, err := kamus.BuatBatch(context.Background(), models.Actor{UserID: 7, Role: models.RoleUser}, req)

	assert.ErrorIs(t, err, ErrKataDuplikat)
	assert.Empty(t, kontenRepo.saved, "tidak ada baris yang boleh tertulis")
}

func TestBuatBatchDuplikatDenganExisting(t *testing.T) {
	izinRepo := newFakeIzinRepo()
	izinRepo.set(7, models.TipeKamus, true, false, false)
	kamusRepo, kontenRepo, kamus := newKamusFixture(izinRepo)
	kamusRepo.existing["geni|Jawa"] = 1

	_, err := kamus.BuatBatch(context.Background(), models.Actor{UserID: 7, Role: models.RoleUser}, batchTigaKata())

	assert.ErrorIs(t, err, ErrKataDuplikat)
	assert.Empty(t, kontenRepo.saved)
}

func TestBuatBatchKataSamaBahasaBeda(t *testing.T) {
	izinRepo := newFakeIzinRepo()
	izinRepo.set(7, models.TipeKamus, true, false, false)
	_, _, kamus := newKamusFixture(izinRepo)

	req := models.KamusBatchRequest{
		Entries: []models.KamusRequest{
			{Kata: "banyu", Arti: "air", BahasaDaerah: "Jawa"},
			{Kata: "banyu", Arti: "air", BahasaDaerah: "Banjar"},
		},
	}

	created, err := kamus.BuatBatch(context.Background(), models.Actor{UserID: 7, Role: models.RoleUser}, req)

	require.NoError(t, err)
	assert.Len(t, created, 2)
}
