package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/Ramos-bot/GestOnGo-App/internal/domain/servico"
	"github.com/Ramos-bot/GestOnGo-App/internal/httperr"
	"github.com/Ramos-bot/GestOnGo-App/internal/httpresp"
	"github.com/Ramos-bot/GestOnGo-App/internal/middleware"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
	ucServico "github.com/Ramos-bot/GestOnGo-App/internal/usecase/servico"
	"github.com/Ramos-bot/GestOnGo-App/internal/validators"
)

// maxPhotoBytes bounds the multipart upload before decoding.
const maxPhotoBytes = 10 << 20

type ServicoHandler struct {
	create *ucServico.Create
	update *ucServico.Update
	delete *ucServico.Delete
	query  *ucServico.Query
	photo  *ucServico.UploadPhoto
}

// NewServicoHandler accepts a nil photo use case when object storage is not
// configured.
func NewServicoHandler(
	create *ucServico.Create,
	update *ucServico.Update,
	del *ucServico.Delete,
	query *ucServico.Query,
	photo *ucServico.UploadPhoto,
) *ServicoHandler {
	return &ServicoHandler{
		create: create,
		update: update,
		delete: del,
		query:  query,
		photo:  photo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServicoRequest struct {
	ClienteID    uint         `json:"cliente_id" binding:"required"`
	Tipo         string       `json:"tipo" binding:"required"`
	DataServico  *models.Date `json:"data_servico" binding:"required"`
	DuracaoHoras int          `json:"duracao_horas" binding:"required"`
	Descricao    *string      `json:"descricao"`
}

type UpdateServicoRequest struct {
	ClienteID    *uint        `json:"cliente_id"`
	Tipo         *string      `json:"tipo"`
	DataServico  *models.Date `json:"data_servico"`
	DuracaoHoras *int         `json:"duracao_horas"`
	Descricao    *string      `json:"descricao"`
	Status       *string      `json:"status"`
}

// ======================================================
// CRUD
// ======================================================

func (h *ServicoHandler) Create(c *gin.Context) {
	var req CreateServicoRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.create.Execute(c.Request.Context(), ucServico.CreateInput{
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

func (h *ServicoHandler) List(c *gin.Context) {
	p, err := pageParams(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var rep validators.Report
	f := domain.Filter{
		DataInicio: queryDate(&rep, c, "data_inicio"),
		DataFim:    queryDate(&rep, c, "data_fim"),
		ClienteID:  queryUint(&rep, c, "cliente_id"),
		Offset:     p.Offset,
		Limit:      p.Limit,
	}
	if raw := c.Query("tipo"); raw != "" {
		t := validators.ServiceType(&rep, "tipo", raw, domain.Base)
		f.Tipo = &t
	}
	if raw := c.Query("status"); raw != "" {
		s := validators.Status(&rep, "status", raw)
		f.Status = &s
	}
	if err := rep.Err(); err != nil {
		httperr.Respond(c, err)
		return
	}

	services, err := h.query.List(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, services)
}

func (h *ServicoHandler) Resume(c *gin.Context) {
	p, err := pageParams(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	rows, err := h.query.Resume(c.Request.Context(), p.Offset, p.Limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, rows)
}

func (h *ServicoHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	s, err := h.query.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, s)
}

func (h *ServicoHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req UpdateServicoRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.update.Execute(c.Request.Context(), ucServico.UpdateInput{
		UserID:       middleware.CurrentUserID(c),
		ID:           id,
		ClienteID:    req.ClienteID,
		Tipo:         req.Tipo,
		DataServico:  req.DataServico,
		DuracaoHoras: req.DuracaoHoras,
		Descricao:    req.Descricao,
		Status:       req.Status,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, s)
}

func (h *ServicoHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.delete.Execute(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// EXTRAS
// ======================================================

func (h *ServicoHandler) Dashboard(c *gin.Context) {
	d, err := h.query.Dashboard(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, d)
}

func (h *ServicoHandler) UploadPhoto(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPhotoBytes)
	header, err := c.FormFile("foto")
	if err != nil {
		httperr.Respond(c, httperr.Validation(httperr.FieldError{Field: "foto", Message: "ficheiro em falta ou demasiado grande"}))
		return
	}

	file, err := header.Open()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	defer file.Close()

	s, err := h.photo.Execute(c.Request.Context(), middleware.CurrentUserID(c), id, file)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, s)
}
