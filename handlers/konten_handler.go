package handlers

import (
	"context"
	"errors"
	"strconv"

	"bahasa-indah-nusantara/helper"
	"bahasa-indah-nusantara/middleware"
	"bahasa-indah-nusantara/models"
	"bahasa-indah-nusantara/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// kontenBinder reads the type-specific payload from the request into the
// model and returns the free-text tag names. Works for both JSON and
// multipart form bodies.
type kontenBinder func(c *gin.Context, item models.Kontenable) ([]string, error)

// KontenHandler serves the shared lifecycle routes of one content type. The
// four content types differ only in payload binding and construction, so each
// gets a thin constructor around this handler.
type KontenHandler struct {
	workflow services.WorkflowService
	Helper   *helper.HTTPHelper

	baru       func() models.Kontenable
	baruDaftar func() interface{}
	bind       kontenBinder
	nama       string
}

func newKontenHandler(workflow services.WorkflowService, nama string, baru func() models.Kontenable, baruDaftar func() interface{}, bind kontenBinder) *KontenHandler {
	return &KontenHandler{
		workflow:   workflow,
		Helper:     &helper.HTTPHelper{},
		baru:       baru,
		baruDaftar: baruDaftar,
		bind:       bind,
		nama:       nama,
	}
}

// RegisterRoutes wires the lifecycle endpoints under the authenticated group,
// the moderation zone and the public group.
func (h *KontenHandler) RegisterRoutes(protected, moderasi, public *gin.RouterGroup, path string) {
	grp := protected.Group("/" + path)
	{
		grp.POST("", h.Create)
		grp.GET("", h.List)
		grp.GET("/:id", h.Get)
		grp.PUT("/:id", h.Update)
		grp.PUT("/:id/submit", h.Submit)
		grp.PUT("/:id/ajukan-ulang", h.AjukanUlang)
		grp.DELETE("/:id", h.Hapus)
	}

	mod := moderasi.Group("/" + path)
	{
		mod.GET("", h.ListModerasi)
		mod.PUT("/:id/terima", h.Terima)
		mod.PUT("/:id/tolak", h.Tolak)
	}

	pub := public.Group("/" + path)
	{
		pub.GET("", h.ListPublic)
		pub.GET("/:id", h.GetPublic)
	}
}

func (h *KontenHandler) Create(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	item := h.baru()
	tags, err := h.bind(c, item)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	opts := services.SimpanOptions{Tags: tags}
	if file, err := c.FormFile("thumbnail"); err == nil {
		opts.Thumbnail = file
	}

	if err := h.workflow.Simpan(c.Request.Context(), actor, item, opts); err != nil {
		h.kirimGalat(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Berhasil menyimpan "+h.nama, item)
}

func (h *KontenHandler) Update(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	item, ok := h.ambil(c)
	if !ok {
		return
	}

	tags, err := h.bind(c, item)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	opts := services.SimpanOptions{Tags: tags}
	if file, err := c.FormFile("thumbnail"); err == nil {
		opts.Thumbnail = file
	}

	if err := h.workflow.Simpan(c.Request.Context(), actor, item, opts); err != nil {
		h.kirimGalat(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Berhasil memperbarui "+h.nama, item)
}

func (h *KontenHandler) Get(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	item, ok := h.ambil(c)
	if !ok {
		return
	}

	meta := item.Meta()
	if meta.Status != models.StatusTerbit && meta.UserID != actor.UserID && !actor.Role.BisaModerasi() {
		h.Helper.SendNotFoundError(c, h.nama+" tidak ditemukan", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", item)
}

func (h *KontenHandler) GetPublic(c *gin.Context) {
	item, ok := h.ambil(c)
	if !ok {
		return
	}

	if item.Meta().Status != models.StatusTerbit {
		h.Helper.SendNotFoundError(c, h.nama+" tidak ditemukan", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", item)
}

// List returns the caller's own items, whatever their status.
func (h *KontenHandler) List(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	params, ok := h.bacaParams(c)
	if !ok {
		return
	}
	params.UserID = actor.UserID

	h.daftar(c, params, false)
}

// ListModerasi lists the review queue; defaults to status direview.
func (h *KontenHandler) ListModerasi(c *gin.Context) {
	params, ok := h.bacaParams(c)
	if !ok {
		return
	}
	if params.Status == "" {
		params.Status = string(models.StatusDireview)
	}

	h.daftar(c, params, false)
}

func (h *KontenHandler) ListPublic(c *gin.Context) {
	params, ok := h.bacaParams(c)
	if !ok {
		return
	}

	h.daftar(c, params, true)
}

func (h *KontenHandler) Submit(c *gin.Context) {
	h.transisi(c, h.workflow.Submit, "Berhasil mengajukan "+h.nama)
}

func (h *KontenHandler) AjukanUlang(c *gin.Context) {
	h.transisi(c, h.workflow.AjukanUlang, "Berhasil mengajukan ulang "+h.nama)
}

func (h *KontenHandler) Terima(c *gin.Context) {
	h.transisi(c, h.workflow.Terima, "Konten diterbitkan")
}

func (h *KontenHandler) Tolak(c *gin.Context) {
	h.transisi(c, h.workflow.Tolak, "Konten ditolak")
}

func (h *KontenHandler) Hapus(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	item, ok := h.ambil(c)
	if !ok {
		return
	}

	if err := h.workflow.Hapus(c.Request.Context(), actor, item); err != nil {
		h.kirimGalat(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Berhasil menghapus "+h.nama, h.Helper.EmptyJsonMap())
}

func (h *KontenHandler) transisi(c *gin.Context, aksi func(ctx context.Context, actor models.Actor, item models.Kontenable) error, pesan string) {
	actor := middleware.ActorFromContext(c)

	item, ok := h.ambil(c)
	if !ok {
		return
	}

	if err := aksi(c.Request.Context(), actor, item); err != nil {
		h.kirimGalat(c, err)
		return
	}

	h.Helper.SendSuccess(c, pesan, item)
}

func (h *KontenHandler) ambil(c *gin.Context) (models.Kontenable, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "ID tidak valid", h.Helper.EmptyJsonMap())
		return nil, false
	}

	item := h.baru()
	if err := h.workflow.Ambil(item, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.Helper.SendNotFoundError(c, h.nama+" tidak ditemukan", h.Helper.EmptyJsonMap())
		} else {
			h.Helper.SendDatabaseError(c, err.Error(), h.Helper.EmptyJsonMap())
		}
		return nil, false
	}

	return item, true
}

func (h *KontenHandler) bacaParams(c *gin.Context) (models.KontenListParams, bool) {
	var params models.KontenListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return params, false
	}
	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 10
	}
	return params, true
}

func (h *KontenHandler) daftar(c *gin.Context, params models.KontenListParams, publicOnly bool) {
	dest := h.baruDaftar()
	total, err := h.workflow.Daftar(dest, h.baru(), params, publicOnly)
	if err != nil {
		h.Helper.SendDatabaseError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"data":       dest,
		"pagination": h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *KontenHandler) kirimGalat(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTidakBerizin),
		errors.Is(err, services.ErrBukanPemilik),
		errors.Is(err, services.ErrBukanModerator):
		h.Helper.SendUnauthorizedError(c, err.Error(), h.Helper.EmptyJsonMap())
	default:
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
	}
}
