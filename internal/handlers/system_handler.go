package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ramos-bot/GestOnGo-App/internal/config"
	"github.com/Ramos-bot/GestOnGo-App/internal/httpresp"
	"github.com/Ramos-bot/GestOnGo-App/internal/modules"
)

type SystemHandler struct {
	cfg *config.Config
}

func NewSystemHandler(cfg *config.Config) *SystemHandler {
	return &SystemHandler{cfg: cfg}
}

func (h *SystemHandler) Welcome(c *gin.Context) {
	active := []string{"base"}
	for _, m := range modules.Enabled(h.cfg) {
		active = append(active, m.Name)
	}

	httpresp.OK(c, gin.H{
		"mensagem":       "Bem-vindo ao " + h.cfg.AppName + "!",
		"versao":         h.cfg.AppVersion,
		"modulos_ativos": active,
	})
}

func (h *SystemHandler) Health(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"status":  "ok",
		"modulos": modules.Status(h.cfg),
	})
}
