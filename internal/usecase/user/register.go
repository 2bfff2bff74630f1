package user

import (
	"context"
	"errors"
	"strings"

	"github.com/Ramos-bot/GestOnGo-App/internal/audit"
	domain "github.com/Ramos-bot/GestOnGo-App/internal/domain/user"
	"github.com/Ramos-bot/GestOnGo-App/internal/httperr"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
	"github.com/Ramos-bot/GestOnGo-App/internal/security"
	"github.com/Ramos-bot/GestOnGo-App/internal/validators"
)

var errEmailTaken = httperr.Conflict("email_already_registered", "Email já registado.")

type RegisterInput struct {
	Nome     string
	Email    string
	Senha    string
	IsActive *bool
}

type Register struct {
	repo   domain.Repository
	rules  *validators.Rules
	hasher *security.Hasher
	audit  *audit.Logger
}

func NewRegister(
	repo domain.Repository,
	rules *validators.Rules,
	hasher *security.Hasher,
	audit *audit.Logger,
) *Register {
	return &Register{
		repo:   repo,
		rules:  rules,
		hasher: hasher,
		audit:  audit,
	}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*models.User, error) {
	var rep validators.Report
	nome := strings.TrimSpace(in.Nome)
	if len([]rune(nome)) < validators.MinNameLength {
		rep.Addf("nome", "deve ter pelo menos %d caracteres", validators.MinNameLength)
	}
	email := uc.rules.Email(&rep, "email", in.Email)
	validators.Password(&rep, "senha", in.Senha)
	if err := rep.Err(); err != nil {
		return nil, err
	}

	exists, err := uc.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errEmailTaken
	}

	hash, err := uc.hasher.Hash(in.Senha)
	if err != nil {
		return nil, err
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	u := &models.User{
		Nome:      nome,
		Email:     email,
		HashSenha: hash,
		IsActive:  active,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, errEmailTaken
		}
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		UserID:   &u.ID,
		Action:   audit.ActionUserRegistered,
		Entity:   "user",
		EntityID: &u.ID,
	})

	return u, nil
}
