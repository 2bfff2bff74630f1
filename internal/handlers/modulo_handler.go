package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/Ramos-bot/GestOnGo-App/internal/domain/servico"
	"github.com/Ramos-bot/GestOnGo-App/internal/httperr"
	"github.com/Ramos-bot/GestOnGo-App/internal/httpresp"
	"github.com/Ramos-bot/GestOnGo-App/internal/middleware"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
	ucModulo "github.com/Ramos-bot/GestOnGo-App/internal/usecase/modulo"
	"github.com/Ramos-bot/GestOnGo-App/internal/validators"
)

// ModuloHandler serves the routes of one module table.
type ModuloHandler struct {
	svc *ucModulo.Service
}

func NewModuloHandler(svc *ucModulo.Service) *ModuloHandler {
	return &ModuloHandler{svc: svc}
}

// Tipo may be omitted; the module fills in its own type.
type CreateModuloRequest struct {
	ClienteID    uint         `json:"cliente_id" binding:"required"`
	Tipo         string       `json:"tipo"`
	DataServico  *models.Date `json:"data_servico" binding:"required"`
	DuracaoHoras int          `json:"duracao_horas" binding:"required"`
	Descricao    *string      `json:"descricao"`
}

type UpdateModuloRequest struct {
	ClienteID    *uint        `json:"cliente_id"`
	Tipo         *string      `json:"tipo"`
	DataServico  *models.Date `json:"data_servico"`
	DuracaoHoras *int         `json:"duracao_horas"`
	Descricao    *string      `json:"descricao"`
}

func (h *ModuloHandler) Create(c *gin.Context) {
	var req CreateModuloRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.svc.Create(c.Request.Context(), ucModulo.CreateInput{
		UserID:       middleware.CurrentUserID(c),
		ClienteID:    req.ClienteID,
		Tipo:         req.Tipo,
		DataServico:  *req.DataServico,
		DuracaoHoras: req.DuracaoHoras,
		Descricao:    req.Descricao,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, s)
}

func (h *ModuloHandler) List(c *gin.Context) {
	p, err := pageParams(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var rep validators.Report
	clienteID := queryUint(&rep, c, "cliente_id")
	if err := rep.Err(); err != nil {
		httperr.Respond(c, err)
		return
	}

	services, err := h.svc.List(c.Request.Context(), domain.ModuleFilter{
		ClienteID: clienteID,
		Offset:    p.Offset,
		Limit:     p.Limit,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, services)
}

func (h *ModuloHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	s, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, s)
}

func (h *ModuloHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req UpdateModuloRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.svc.Update(c.Request.Context(), ucModulo.UpdateInput{
		UserID:       middleware.CurrentUserID(c),
		ID:           id,
		ClienteID:    req.ClienteID,
		Tipo:         req.Tipo,
		DataServico:  req.DataServico,
		DuracaoHoras: req.DuracaoHoras,
		Descricao:    req.Descricao,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, s)
}

func (h *ModuloHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}
