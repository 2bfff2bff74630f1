package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ramos-bot/GestOnGo-App/internal/httperr"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
	ucUser "github.com/Ramos-bot/GestOnGo-App/internal/usecase/user"
)

const (
	ContextSession = "session"
)

// Auth requires a valid bearer token and stores the authenticated session
// in the gin context.
func Auth(authenticate *ucUser.Authenticate) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.UnauthorizedResponse(c, "missing_authorization_header", "Autenticação necessária.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.UnauthorizedResponse(c, "invalid_authorization_header", "Cabeçalho Authorization inválido.")
			return
		}

		session, err := authenticate.Execute(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Respond(c, err)
			return
		}

		c.Set(ContextSession, session)

		log := zerologFrom(c).With().Uint("user_id", session.User.ID).Logger()
		c.Request = c.Request.WithContext(log.WithContext(c.Request.Context()))

		c.Next()
	}
}

// CurrentSession returns the session stored by Auth.
func CurrentSession(c *gin.Context) *ucUser.Session {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil
	}
	s, _ := v.(*ucUser.Session)
	return s
}

// CurrentUser returns the authenticated user, nil on public routes.
func CurrentUser(c *gin.Context) *models.User {
	if s := CurrentSession(c); s != nil {
		return s.User
	}
	return nil
}

// CurrentUserID is 0 on public routes.
func CurrentUserID(c *gin.Context) uint {
	if u := CurrentUser(c); u != nil {
		return u.ID
	}
	return 0
}
