package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/Ramos-bot/GestOnGo-App/internal/domain/cliente"
	"github.com/Ramos-bot/GestOnGo-App/internal/httperr"
	"github.com/Ramos-bot/GestOnGo-App/internal/httpresp"
	"github.com/Ramos-bot/GestOnGo-App/internal/middleware"
	ucCliente "github.com/Ramos-bot/GestOnGo-App/internal/usecase/cliente"
)

type ClientHandler struct {
	create *ucCliente.Create
	update *ucCliente.Update
	delete *ucCliente.Delete
	query  *ucCliente.Query
}

func NewClientHandler(
	create *ucCliente.Create,
	update *ucCliente.Update,
	del *ucCliente.Delete,
	query *ucCliente.Query,
) *ClientHandler {
	return &ClientHandler{
		create: create,
		update: update,
		delete: del,
		query:  query,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateClientRequest struct {
	Nome        string  `json:"nome" binding:"required"`
	Telefone    *string `json:"telefone"`
	Endereco    *string `json:"endereco"`
	Observacoes *string `json:"observacoes"`
}

type UpdateClientRequest struct {
	Nome        *string `json:"nome"`
	Telefone    *string `json:"telefone"`
	Endereco    *string `json:"endereco"`
	Observacoes *string `json:"observacoes"`
}

// ======================================================
// CRUD
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.create.Execute(c.Request.Context(), ucCliente.CreateInput{
		UserID:      middleware.CurrentUserID(c),
		Nome:        req.Nome,
		Telefone:    req.Telefone,
		Endereco:    req.Endereco,
		Observacoes: req.Observacoes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, client)
}

func (h *ClientHandler) List(c *gin.Context) {
	p, err := pageParams(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	clients, err := h.query.List(c.Request.Context(), domain.Filter{
		Nome:   c.Query("nome"),
		Offset: p.Offset,
		Limit:  p.Limit,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	client, err := h.query.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req UpdateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.update.Execute(c.Request.Context(), ucCliente.UpdateInput{
		UserID:      middleware.CurrentUserID(c),
		ID:          id,
		Nome:        req.Nome,
		Telefone:    req.Telefone,
		Endereco:    req.Endereco,
		Observacoes: req.Observacoes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
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

func (h *ClientHandler) Services(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	services, err := h.query.Services(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, services)
}

func (h *ClientHandler) Stats(c *gin.Context) {
	stats, err := h.query.Stats(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, stats)
}
