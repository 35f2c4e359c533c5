package services

import (
	"context"
	"fmt"
	"strings"

	"bahasa-indah-nusantara/models"
	"bahasa-indah-nusantara/repositories"
)

// KamusService layers dictionary-specific rules (batch creation, duplicate
// words) on top of the shared workflow.
type KamusService interface {
	// BuatBatch creates a batch of dictionary entries in one action. Duplicate
	// words, inside the batch or against existing rows, abort the whole batch
	// before anything is written. With submit, each created entry is submitted
	// immediately after its save.
	BuatBatch(ctx context.Context, actor models.Actor, req models.KamusBatchRequest) ([]models.Kamus, error)
}

type kamusService struct {
	kamusRepo repositories.KamusRepository
	workflow  WorkflowService
	izin      IzinService
}

func NewKamusService(kamusRepo repositories.KamusRepository, workflow WorkflowService, izin IzinService) KamusService {
	return &kamusService{
		kamusRepo: kamusRepo,
		workflow:  workflow,
		izin:      izin,
	}
}

func (s *kamusService) BuatBatch(ctx context.Context, actor models.Actor, req models.KamusBatchRequest) ([]models.Kamus, error) {
	if !s.izin.Boleh(actor.UserID, models.TipeKamus, models.AksiBuat) {
		return nil, ErrTidakBerizin
	}

	// Semua pemeriksaan duplikat berjalan sebelum baris pertama ditulis
	seen := make(map[string]bool)
	for _, entry := range req.Entries {
		key := strings.ToLower(entry.Kata) + "|" + strings.ToLower(entry.BahasaDaerah)
		if seen[key] {
			return nil, fmt.Errorf("%w: %q", ErrKataDuplikat, entry.Kata)
		}
		seen[key] = true

		count, err := s.kamusRepo.CountByKata(entry.Kata, entry.BahasaDaerah)
		if err != nil {
			return nil, fmt.Errorf("gagal memeriksa duplikat: %w", err)
		}
		if count > 0 {
			return nil, fmt.Errorf("%w: %q sudah terdaftar", ErrKataDuplikat, entry.Kata)
		}
	}

	created := make([]models.Kamus, 0, len(req.Entries))
	for _, entry := range req.Entries {
		item := &models.Kamus{
			Kata:         entry.Kata,
			Arti:         entry.Arti,
			BahasaDaerah: entry.BahasaDaerah,
			Contoh:       entry.Contoh,
		}

		if err := s.workflow.Simpan(ctx, actor, item, SimpanOptions{Tags: entry.Tags}); err != nil {
			return created, err
		}

		if req.Submit {
			if err := s.workflow.Submit(ctx, actor, item); err != nil {
				return created, err
			}
		}

		created = append(created, *item)
	}

	return created, nil
}
