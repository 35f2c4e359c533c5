package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"

	"bahasa-indah-nusantara/metrics"
	"bahasa-indah-nusantara/models"
	"bahasa-indah-nusantara/repositories"
)

// SimpanOptions carries the parts of a save that sit outside the payload
// struct itself.
type SimpanOptions struct {
	Tags      []string
	Thumbnail *multipart.FileHeader
}

// WorkflowService drives the shared submission lifecycle for all four content
// types: draft saves, submission, moderation and resubmission. Every
// transition is re-checked here against ownership, role and the permission
// table; nothing is trusted from the client.
type WorkflowService interface {
	// Simpan creates or updates a draft: shell row first (so media keys can be
	// namespaced by id), then media upload, tag reconciliation and the final
	// payload write.
	Simpan(ctx context.Context, actor models.Actor, item models.Kontenable, opts SimpanOptions) error
	// Submit moves a draft to direview, or straight to terbit when the owner
	// holds the approve permission.
	Submit(ctx context.Context, actor models.Actor, item models.Kontenable) error
	// AjukanUlang returns a terbit or ditolak item to direview. Never publishes
	// directly, whatever the owner's permissions.
	AjukanUlang(ctx context.Context, actor models.Actor, item models.Kontenable) error
	Terima(ctx context.Context, actor models.Actor, item models.Kontenable) error
	Tolak(ctx context.Context, actor models.Actor, item models.Kontenable) error
	Hapus(ctx context.Context, actor models.Actor, item models.Kontenable) error

	Ambil(item models.Kontenable, id uint) error
	Daftar(dest interface{}, model models.Kontenable, params models.KontenListParams, publicOnly bool) (int64, error)
}

type workflowService struct {
	kontenRepo repositories.KontenRepository
	tags       TagService
	izin       IzinService
	media      MediaService
}

func NewWorkflowService(kontenRepo repositories.KontenRepository, tags TagService, izin IzinService, media MediaService) WorkflowService {
	return &workflowService{
		kontenRepo: kontenRepo,
		tags:       tags,
		izin:       izin,
		media:      media,
	}
}

func (s *workflowService) Simpan(ctx context.Context, actor models.Actor, item models.Kontenable, opts SimpanOptions) error {
	meta := item.Meta()
	tipe := item.Tipe()

	if meta.ID == 0 {
		if !s.izin.Boleh(actor.UserID, tipe, models.AksiBuat) {
			return ErrTidakBerizin
		}
		meta.UserID = actor.UserID
		meta.Status = models.StatusDraft

		// Baris shell dulu supaya id tersedia untuk namespace media
		if err := s.kontenRepo.Create(item); err != nil {
			return fmt.Errorf("gagal membuat %s: %w", tipe, err)
		}
	} else {
		if meta.UserID != actor.UserID {
			return ErrBukanPemilik
		}
		if !meta.Status.BisaDiedit() {
			return ErrStatusTerkunci
		}
		if !s.izin.Boleh(actor.UserID, tipe, models.AksiEdit) {
			return ErrTidakBerizin
		}
	}

	var uploaded *MediaObject
	if opts.Thumbnail != nil {
		obj, err := s.media.Upload(ctx, tipe, meta.ID, opts.Thumbnail)
		if err != nil {
			return err
		}
		uploaded = obj
		meta.Thumbnail = obj.URL
	}

	tags, err := s.tags.ResolveNames(opts.Tags)
	if err != nil {
		s.cleanupMedia(ctx, uploaded)
		return err
	}

	if err := s.kontenRepo.ReplaceTags(item, tags); err != nil {
		s.cleanupMedia(ctx, uploaded)
		return fmt.Errorf("gagal menyimpan tag: %w", err)
	}

	if err := s.kontenRepo.Save(item); err != nil {
		s.cleanupMedia(ctx, uploaded)
		return fmt.Errorf("gagal menyimpan %s: %w", tipe, err)
	}

	return nil
}

func (s *workflowService) Submit(ctx context.Context, actor models.Actor, item models.Kontenable) error {
	meta := item.Meta()

	if meta.UserID != actor.UserID {
		return ErrBukanPemilik
	}
	if !meta.Status.BisaDisubmit() {
		return ErrBelumBisaDisubmit
	}

	target := models.TujuanSubmit(s.izin.Boleh(actor.UserID, item.Tipe(), models.AksiSetujui))
	return s.transisi(item, target)
}

func (s *workflowService) AjukanUlang(ctx context.Context, actor models.Actor, item models.Kontenable) error {
	meta := item.Meta()

	if meta.UserID != actor.UserID {
		return ErrBukanPemilik
	}
	if !meta.Status.BisaDiajukanUlang() {
		return ErrTidakBisaDiajukanUlang
	}

	return s.transisi(item, models.StatusDireview)
}

func (s *workflowService) Terima(ctx context.Context, actor models.Actor, item models.Kontenable) error {
	if !actor.Role.BisaModerasi() {
		return ErrBukanModerator
	}
	if !item.Meta().Status.BisaDimoderasi() {
		return ErrStatusBukanDireview
	}

	return s.transisi(item, models.StatusTerbit)
}

func (s *workflowService) Tolak(ctx context.Context, actor models.Actor, item models.Kontenable) error {
	if !actor.Role.BisaModerasi() {
		return ErrBukanModerator
	}
	if !item.Meta().Status.BisaDimoderasi() {
		return ErrStatusBukanDireview
	}

	return s.transisi(item, models.StatusDitolak)
}

func (s *workflowService) Hapus(ctx context.Context, actor models.Actor, item models.Kontenable) error {
	meta := item.Meta()

	if meta.UserID != actor.UserID {
		return ErrBukanPemilik
	}
	if !meta.Status.BisaDihapus() {
		return ErrHanyaDraftDihapus
	}

	return s.kontenRepo.Delete(item)
}

func (s *workflowService) Ambil(item models.Kontenable, id uint) error {
	return s.kontenRepo.GetByID(item, id)
}

func (s *workflowService) Daftar(dest interface{}, model models.Kontenable, params models.KontenListParams, publicOnly bool) (int64, error) {
	return s.kontenRepo.List(dest, model, params, publicOnly)
}

func (s *workflowService) transisi(item models.Kontenable, target models.StatusKonten) error {
	if err := s.kontenRepo.UpdateStatus(item, target); err != nil {
		return fmt.Errorf("gagal mengubah status: %w", err)
	}
	metrics.TransisiKonten.WithLabelValues(string(item.Tipe()), string(target)).Inc()
	return nil
}

// cleanupMedia removes an object uploaded earlier in a save whose later step
// failed, so storage does not accumulate orphans.
func (s *workflowService) cleanupMedia(ctx context.Context, obj *MediaObject) {
	if obj == nil {
		return
	}
	if err := s.media.Delete(ctx, obj.Key); err != nil {
		log.Printf("Gagal membersihkan media %s: %v", obj.Key, err)
	}
}
