package modulo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramos-bot/GestOnGo-App/internal/audit"
	"github.com/Ramos-bot/GestOnGo-App/internal/db/dbtest"
	domain "github.com/Ramos-bot/GestOnGo-App/internal/domain/servico"
	"github.com/Ramos-bot/GestOnGo-App/internal/httperr"
	"github.com/Ramos-bot/GestOnGo-App/internal/infra/repository"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
	"github.com/Ramos-bot/GestOnGo-App/internal/timezone"
	"github.com/Ramos-bot/GestOnGo-App/internal/validators"
)

func setup(t *testing.T, v domain.Variant) (*Service, *models.Client) {
	t.Helper()
	db := dbtest.Open(t)
	clock := timezone.FixedClock(time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC), "Europe/Lisbon")
	svc := NewService(
		repository.NewModuloGormRepository(db, v),
		validators.New("351", clock, false),
		audit.New(db),
	)

	c := &models.Client{Nome: "Ana Sousa"}
	require.NoError(t, db.Create(c).Error)
	return svc, c
}

func day(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestCreate_FixesType(t *testing.T) {
	svc, c := setup(t, domain.Garden)

	ms, err := svc.Create(context.Background(), CreateInput{
		ClienteID: c.ID, DataServico: day(t, "2026-03-11"), DuracaoHoras: 24,
	})
	require.NoError(t, err)
	assert.Equal(t, "jardinagem", ms.Tipo)
	assert.Equal(t, 24, ms.DuracaoHoras)
}

func TestCreate_RejectsOtherType(t *testing.T) {
	svc, c := setup(t, domain.Pool)

	_, err := svc.Create(context.Background(), CreateInput{
		ClienteID: c.ID, Tipo: "jardinagem", DataServico: day(t, "2026-03-11"), DuracaoHoras: 2,
	})
	assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))
}

func TestCreate_DurationBounds(t *testing.T) {
	svc, c := setup(t, domain.Pool)

	for _, hours := range []int{0, 25} {
		_, err := svc.Create(context.Background(), CreateInput{
			ClienteID: c.ID, DataServico: day(t, "2026-03-11"), DuracaoHoras: hours,
		})
		assert.Equal(t, httperr.KindValidation, httperr.KindOf(err), hours)
	}
}

func TestCreate_SameDayAllowed(t *testing.T) {
	svc, c := setup(t, domain.Garden)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.Create(ctx, CreateInput{ClienteID: c.ID, DataServico: day(t, "2026-03-11"), DuracaoHoras: 1})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx, domain.ModuleFilter{ClienteID: &c.ID, Limit: 50})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCreate_UniquePerClientDayVariant(t *testing.T) {
	strict := domain.Garden
	strict.UniquePerClientDay = true
	svc, c := setup(t, strict)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateInput{ClienteID: c.ID, DataServico: day(t, "2026-03-11"), DuracaoHoras: 1})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateInput{ClienteID: c.ID, DataServico: day(t, "2026-03-11"), DuracaoHoras: 1})
	assert.True(t, httperr.Is(err, "duplicate_service_date"))

	second, err := svc.Create(ctx, CreateInput{ClienteID: c.ID, DataServico: day(t, "2026-03-12"), DuracaoHoras: 1})
	require.NoError(t, err)

	busy := day(t, "2026-03-11")
	_, err = svc.Update(ctx, UpdateInput{ID: second.ID, DataServico: &busy})
	assert.True(t, httperr.Is(err, "duplicate_service_date"))

	hours := 3
	_, err = svc.Update(ctx, UpdateInput{ID: first.ID, DuracaoHoras: &hours})
	assert.NoError(t, err)
}

func TestCreate_UnknownClient(t *testing.T) {
	svc, _ := setup(t, domain.Garden)

	_, err := svc.Create(context.Background(), CreateInput{ClienteID: 77, DataServico: day(t, "2026-03-11"), DuracaoHoras: 1})
	assert.True(t, httperr.Is(err, "client_not_found"))
}

func TestUpdateAndDelete(t *testing.T) {
	svc, c := setup(t, domain.Garden)
	ctx := context.Background()

	ms, err := svc.Create(ctx, CreateInput{ClienteID: c.ID, DataServico: day(t, "2026-03-11"), DuracaoHoras: 1})
	require.NoError(t, err)

	hours := 20
	desc := " poda das oliveiras "
	got, err := svc.Update(ctx, UpdateInput{ID: ms.ID, DuracaoHoras: &hours, Descricao: &desc})
	require.NoError(t, err)
	assert.Equal(t, 20, got.DuracaoHoras)
	assert.Equal(t, "poda das oliveiras", *got.Descricao)

	wrong := "piscina"
	_, err = svc.Update(ctx, UpdateInput{ID: ms.ID, Tipo: &wrong})
	assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))

	require.NoError(t, svc.Delete(ctx, 1, ms.ID))
	assert.True(t, httperr.Is(svc.Delete(ctx, 1, ms.ID), "service_not_found"))

	_, err = svc.Get(ctx, ms.ID)
	assert.True(t, httperr.Is(err, "service_not_found"))
}
