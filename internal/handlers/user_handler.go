package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ramos-bot/GestOnGo-App/internal/dto"
	"github.com/Ramos-bot/GestOnGo-App/internal/httperr"
	"github.com/Ramos-bot/GestOnGo-App/internal/httpresp"
	"github.com/Ramos-bot/GestOnGo-App/internal/metrics"
	"github.com/Ramos-bot/GestOnGo-App/internal/middleware"
	ucUser "github.com/Ramos-bot/GestOnGo-App/internal/usecase/user"
)

type UserHandler struct {
	register *ucUser.Register
	login    *ucUser.Login
	logout   *ucUser.Logout
	metrics  *metrics.Metrics
}

// NewUserHandler accepts a nil logout when token revocation is disabled.
func NewUserHandler(
	register *ucUser.Register,
	login *ucUser.Login,
	logout *ucUser.Logout,
	m *metrics.Metrics,
) *UserHandler {
	return &UserHandler{
		register: register,
		login:    login,
		logout:   logout,
		metrics:  m,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Senha    string `json:"senha" binding:"required,min=6"`
	IsActive *bool  `json:"is_active"`
}

// LoginRequest follows the OAuth2 password form: the email travels as
// "username".
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.register.Execute(c.Request.Context(), ucUser.RegisterInput{
		Nome:     req.Nome,
		Email:    req.Email,
		Senha:    req.Senha,
		IsActive: req.IsActive,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.NewProfile(u))
}

func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return
	}

	token, err := h.login.Execute(c.Request.Context(), ucUser.LoginInput{
		Email: req.Username,
		Senha: req.Password,
	})
	if err != nil {
		h.metrics.LoginFailed()
		httperr.Respond(c, err)
		return
	}

	h.metrics.LoginSucceeded()
	httpresp.OK(c, token)
}

func (h *UserHandler) Me(c *gin.Context) {
	httpresp.OK(c, dto.NewProfile(middleware.CurrentUser(c)))
}

func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.logout.Execute(c.Request.Context(), middleware.CurrentSession(c)); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
