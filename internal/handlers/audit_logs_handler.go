package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ramos-bot/GestOnGo-App/internal/audit"
	"github.com/Ramos-bot/GestOnGo-App/internal/httperr"
	"github.com/Ramos-bot/GestOnGo-App/internal/httpresp"
	"github.com/Ramos-bot/GestOnGo-App/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
}

func NewAuditLogsHandler(logs *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, limit, err := pageNumberParams(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var rep validators.Report
	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		From:   queryDate(&rep, c, "from"),
		To:     queryDate(&rep, c, "to"),
		Page:   page,
		Limit:  limit,
	}
	if err := rep.Err(); err != nil {
		httperr.Respond(c, err)
		return
	}

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Paged(c, logs, total, page, limit)
}
