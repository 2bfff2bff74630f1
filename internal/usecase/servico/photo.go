package servico

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/Ramos-bot/GestOnGo-App/internal/audit"
	domain "github.com/Ramos-bot/GestOnGo-App/internal/domain/servico"
	"github.com/Ramos-bot/GestOnGo-App/internal/httperr"
	"github.com/Ramos-bot/GestOnGo-App/internal/imaging"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
	"github.com/Ramos-bot/GestOnGo-App/internal/storage"
)

// UploadPhoto stores a proof-of-work photo for a service as WebP.
type UploadPhoto struct {
	repo  domain.Repository
	store storage.ObjectStore
	audit *audit.Logger
}

func NewUploadPhoto(repo domain.Repository, store storage.ObjectStore, audit *audit.Logger) *UploadPhoto {
	return &UploadPhoto{repo: repo, store: store, audit: audit}
}

func (uc *UploadPhoto) Execute(ctx context.Context, userID, id uint, photo io.Reader) (*models.Service, error) {
	s, err := uc.repo.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errNotFound
	}
	if err != nil {
		return nil, err
	}

	body, err := imaging.ToWebP(photo, imaging.DefaultMaxSide, imaging.DefaultQuality)
	if errors.Is(err, imaging.ErrUnsupportedImage) {
		return nil, httperr.Validation(httperr.FieldError{
			Field:   "foto",
			Message: "imagem inválida, use JPEG, PNG ou WebP",
		})
	}
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("servicos/%d/%s.webp", s.ID, uuid.NewString())
	url, err := uc.store.Put(ctx, key, imaging.ContentType, body)
	if err != nil {
		return nil, httperr.Internal("photo_storage_failed", err)
	}

	s.FotoURL = &url
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Record(ctx, audit.Event{
		UserID:   &userID,
		Action:   audit.ActionPhotoUploaded,
		Entity:   "service",
		EntityID: &s.ID,
		Metadata: map[string]string{"key": key},
	})

	return s, nil
}
