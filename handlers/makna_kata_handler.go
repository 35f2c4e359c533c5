package handlers

import (
	"bahasa-indah-nusantara/models"
	"bahasa-indah-nusantara/services"

	"github.com/gin-gonic/gin"
)

func NewMaknaKataHandler(workflow services.WorkflowService) *KontenHandler {
	return newKontenHandler(workflow, "makna kata",
		func() models.Kontenable { return &models.MaknaKata{} },
		func() interface{} { return &[]models.MaknaKata{} },
		bindMaknaKata,
	)
}

func bindMaknaKata(c *gin.Context, item models.Kontenable) ([]string, error) {
	var req models.MaknaKataRequest
	if err := c.ShouldBind(&req); err != nil {
		return nil, err
	}

	makna := item.(*models.MaknaKata)
	makna.Kata = req.Kata
	makna.Makna = req.Makna
	makna.BahasaDaerah = req.BahasaDaerah

	return req.Tags, nil
}
