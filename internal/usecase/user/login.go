package user

import (
	"context"
	"errors"
	"strings"

	"github.com/Ramos-bot/GestOnGo-App/internal/audit"
	domain "github.com/Ramos-bot/GestOnGo-App/internal/domain/user"
	"github.com/Ramos-bot/GestOnGo-App/internal/dto"
	"github.com/Ramos-bot/GestOnGo-App/internal/httperr"
	"github.com/Ramos-bot/GestOnGo-App/internal/security"
)

type LoginInput struct {
	Email string
	Senha string
}

type Login struct {
	repo   domain.Repository
	hasher *security.Hasher
	tokens *security.TokenManager
	audit  *audit.Logger
}

func NewLogin(
	repo domain.Repository,
	hasher *security.Hasher,
	tokens *security.TokenManager,
	audit *audit.Logger,
) *Login {
	return &Login{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		audit:  audit,
	}
}

var errInvalidCredentials = httperr.Unauthorized("invalid_credentials", "Email ou senha incorretos.")

// Execute never tells an unknown email apart from a wrong password.
func (uc *Login) Execute(ctx context.Context, in LoginInput) (*dto.Token, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	u, err := uc.repo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		uc.failed(ctx, email, nil, "unknown_email")
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !uc.hasher.Check(in.Senha, u.HashSenha) {
		uc.failed(ctx, email, &u.ID, "wrong_password")
		return nil, errInvalidCredentials
	}

	if !u.IsActive {
		uc.failed(ctx, email, &u.ID, "inactive")
		return nil, httperr.Unauthorized("inactive_account", "Conta inativa.")
	}

	token, err := uc.tokens.IssueForUser(u.ID)
	if err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		UserID:   &u.ID,
		Action:   audit.ActionLoginSucceeded,
		Entity:   "user",
		EntityID: &u.ID,
	})

	return &dto.Token{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(uc.tokens.TTL().Seconds()),
	}, nil
}

func (uc *Login) failed(ctx context.Context, email string, userID *uint, reason string) {
	uc.audit.Record(ctx, audit.Event{
		UserID:   userID,
		Action:   audit.ActionLoginFailed,
		Entity:   "user",
		EntityID: userID,
		Metadata: map[string]string{"email": email, "reason": reason},
	})
}
