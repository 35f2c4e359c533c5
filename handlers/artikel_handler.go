package handlers

import (
	"bahasa-indah-nusantara/models"
	"bahasa-indah-nusantara/services"

	"github.com/gin-gonic/gin"
)

func NewArtikelHandler(workflow services.WorkflowService) *KontenHandler {
	return newKontenHandler(workflow, "artikel",
		func() models.Kontenable { return &models.Artikel{} },
		func() interface{} { return &[]models.Artikel{} },
		bindArtikel,
	)
}

func bindArtikel(c *gin.Context, item models.Kontenable) ([]string, error) {
	var req models.ArtikelRequest
	if err := c.ShouldBind(&req); err != nil {
		return nil, err
	}

	artikel := item.(*models.Artikel)
	artikel.Judul = req.Judul
	artikel.Isi = req.Isi

	return req.Tags, nil
}
