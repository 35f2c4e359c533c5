package handlers

import (
	"bahasa-indah-nusantara/models"
	"bahasa-indah-nusantara/services"

	"github.com/gin-gonic/gin"
)

func NewCeritaHandler(workflow services.WorkflowService) *KontenHandler {
	return newKontenHandler(workflow, "cerita",
		func() models.Kontenable { return &models.Cerita{} },
		func() interface{} { return &[]models.Cerita{} },
		bindCerita,
	)
}

func bindCerita(c *gin.Context, item models.Kontenable) ([]string, error) {
	var req models.CeritaRequest
	if err := c.ShouldBind(&req); err != nil {
		return nil, err
	}

	cerita := item.(*models.Cerita)
	cerita.Judul = req.Judul
	cerita.Isi = req.Isi
	cerita.BahasaDaerah = req.BahasaDaerah

	return req.Tags, nil
}
