package user

import (
	"context"
	"time"

	"github.com/Ramos-bot/GestOnGo-App/internal/audit"
	"github.com/Ramos-bot/GestOnGo-App/internal/revocation"
)

type Logout struct {
	revoked revocation.Store
	audit   *audit.Logger
	now     func() time.Time
}

func NewLogout(revoked revocation.Store, audit *audit.Logger) *Logout {
	return &Logout{revoked: revoked, audit: audit, now: time.Now}
}

// Execute revokes the session's token for the rest of its lifetime.
func (uc *Logout) Execute(ctx context.Context, s *Session) error {
	if err := uc.revoked.Revoke(ctx, s.Claims.ID, s.Claims.Remaining(uc.now())); err != nil {
		return err
	}

	uc.audit.Record(ctx, audit.Event{
		UserID:   &s.User.ID,
		Action:   audit.ActionLogout,
		Entity:   "user",
		EntityID: &s.User.ID,
	})
	return nil
}
