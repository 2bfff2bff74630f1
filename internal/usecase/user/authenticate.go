package user

import (
	"context"
	"errors"

	domain "github.com/Ramos-bot/GestOnGo-App/internal/domain/user"
	"github.com/Ramos-bot/GestOnGo-App/internal/httperr"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
	"github.com/Ramos-bot/GestOnGo-App/internal/revocation"
	"github.com/Ramos-bot/GestOnGo-App/internal/security"
)

// Session is the outcome of a successful authentication.
type Session struct {
	User   *models.User
	Claims *security.Claims
}

type Authenticate struct {
	repo    domain.Repository
	tokens  *security.TokenManager
	revoked revocation.Store
}

// NewAuthenticate accepts a nil store when token revocation is disabled.
func NewAuthenticate(
	repo domain.Repository,
	tokens *security.TokenManager,
	revoked revocation.Store,
) *Authenticate {
	return &Authenticate{
		repo:    repo,
		tokens:  tokens,
		revoked: revoked,
	}
}

var errInvalidToken = httperr.Unauthorized("invalid_token", "Token inválido ou expirado.")

func (uc *Authenticate) Execute(ctx context.Context, token string) (*Session, error) {
	claims, err := uc.tokens.Verify(token)
	if err != nil {
		return nil, errInvalidToken
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, errInvalidToken
	}

	if uc.revoked != nil {
		revoked, err := uc.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, httperr.Unauthorized("token_revoked", "Sessão terminada.")
		}
	}

	u, err := uc.repo.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.NotFound("user_not_found", "Utilizador não encontrado.")
	}
	if err != nil {
		return nil, err
	}

	return &Session{User: u, Claims: claims}, nil
}
