package audit

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Ramos-bot/GestOnGo-App/internal/models"
)

const (
	ActionLoginSucceeded = "login_succeeded"
	ActionLoginFailed    = "login_failed"
	ActionLogout         = "logout"
	ActionUserRegistered = "user_registered"

	ActionClientCreated = "client_created"
	ActionClientUpdated = "client_updated"
	ActionClientDeleted = "client_deleted"

	ActionServiceCreated = "service_created"
	ActionServiceUpdated = "service_updated"
	ActionServiceDeleted = "service_deleted"
	ActionPhotoUploaded  = "service_photo_uploaded"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Logger writes audit events in the caller's goroutine. A failed write is
// logged and never fails the request.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Record(ctx context.Context, ev Event) {
	if l == nil {
		return
	}
	if err := l.Log(ctx, ev); err != nil {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Str("action", ev.Action).
			Msg("audit write failed")
	}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.db.WithContext(ctx).Create(&entry).Error
}

// Filter narrows the audit listing. Zero values match everything.
type Filter struct {
	Action string
	Entity string
	From   *models.Date
	To     *models.Date
	Page   int
	Limit  int
}

func (l *Logger) List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	q := l.db.WithContext(ctx).Model(&models.AuditLog{})

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", f.From.Time())
	}
	if f.To != nil {
		q = q.Where("created_at < ?", f.To.Time().AddDate(0, 0, 1))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := max(f.Page, 1)

	var logs []models.AuditLog
	err := q.Order("created_at DESC, id DESC").
		Limit(f.Limit).
		Offset((page - 1) * f.Limit).
		Find(&logs).Error

	return logs, total, err
}
