package handlers

import (
	"bahasa-indah-nusantara/middleware"
	"bahasa-indah-nusantara/models"
	"bahasa-indah-nusantara/services"

	"github.com/gin-gonic/gin"
)

// KamusHandler adds the batch endpoint on top of the shared lifecycle routes.
type KamusHandler struct {
	*KontenHandler
	kamusService services.KamusService
}

func NewKamusHandler(workflow services.WorkflowService, kamusService services.KamusService) *KamusHandler {
	base := newKontenHandler(workflow, "kamus",
		func() models.Kontenable { return &models.Kamus{} },
		func() interface{} { return &[]models.Kamus{} },
		bindKamus,
	)
	return &KamusHandler{KontenHandler: base, kamusService: kamusService}
}

func bindKamus(c *gin.Context, item models.Kontenable) ([]string, error) {
	var req models.KamusRequest
	if err := c.ShouldBind(&req); err != nil {
		return nil, err
	}

	kamus := item.(*models.Kamus)
	kamus.Kata = req.Kata
	kamus.Arti = req.Arti
	kamus.BahasaDaerah = req.BahasaDaerah
	kamus.Contoh = req.Contoh

	return req.Tags, nil
}

// CreateBatch creates several dictionary entries in one request. A duplicate
// word aborts the whole batch before any row is written.
func (h *KamusHandler) CreateBatch(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var req models.KamusBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	created, err := h.kamusService.BuatBatch(c.Request.Context(), actor, req)
	if err != nil {
		h.kirimGalat(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Berhasil menyimpan batch kamus", created)
}
