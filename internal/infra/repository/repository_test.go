package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Ramos-bot/GestOnGo-App/internal/db/dbtest"
	"github.com/Ramos-bot/GestOnGo-App/internal/domain/cliente"
	"github.com/Ramos-bot/GestOnGo-App/internal/domain/servico"
	"github.com/Ramos-bot/GestOnGo-App/internal/domain/user"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
)

func date(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func str(s string) *string { return &s }

func seedClient(t *testing.T, db *gorm.DB, nome string) *models.Client {
	t.Helper()
	c := &models.Client{Nome: nome}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedService(t *testing.T, db *gorm.DB, clientID uint, day string, tipo servico.Type, status servico.Status) *models.Service {
	t.Helper()
	s := &models.Service{
		Tipo:         string(tipo),
		DataServico:  date(t, day),
		DuracaoHoras: 2,
		Status:       string(status),
		ClienteID:    clientID,
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

// ===============================
// Users
// ===============================

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserGormRepository(dbtest.Open(t))

	u := &models.User{Nome: "Ana", Email: "ana@example.com", HashSenha: "x", IsActive: false}
	require.NoError(t, repo.Create(ctx, u))

	exists, err := repo.EmailExists(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := repo.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.False(t, got.IsActive)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, user.ErrNotFound)

	err = repo.Create(ctx, &models.User{Nome: "Outra", Email: "ana@example.com", HashSenha: "y"})
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

// ===============================
// Clients
// ===============================

func TestClienteRepository_ListFiltersAndPaginates(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := NewClienteGormRepository(db, servico.Garden, servico.Pool)

	seedClient(t, db, "João Silva")
	seedClient(t, db, "Maria Santos")
	seedClient(t, db, "Pedro Silvano")
	seedClient(t, db, "Álvaro Sousa")

	all, err := repo.List(ctx, cliente.Filter{Limit: 50})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "João Silva", all[0].Nome)

	silva, err := repo.List(ctx, cliente.Filter{Nome: "SILV", Limit: 50})
	require.NoError(t, err)
	assert.Len(t, silva, 2)

	for _, nome := range []string{"álvaro", "ÁLVARO", "varo sou"} {
		found, err := repo.List(ctx, cliente.Filter{Nome: nome, Limit: 50})
		require.NoError(t, err)
		require.Len(t, found, 1, nome)
		assert.Equal(t, "Álvaro Sousa", found[0].Nome)
	}

	page, err := repo.List(ctx, cliente.Filter{Offset: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Maria Santos", page[0].Nome)
}

func TestClienteRepository_NameTaken(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := NewClienteGormRepository(db)

	c := seedClient(t, db, "Maria Santos")

	taken, err := repo.NameTaken(ctx, "Maria Santos", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.NameTaken(ctx, "Maria Santos", c.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	seedClient(t, db, "Ângela Óscar")
	taken, err = repo.NameTaken(ctx, "ângela óscar", 0)
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestClienteRepository_UpdateRefreshesSearchName(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := NewClienteGormRepository(db)

	c := seedClient(t, db, "Maria Santos")
	c.Nome = "Élio Prata"
	require.NoError(t, repo.Update(ctx, c))

	found, err := repo.List(ctx, cliente.Filter{Nome: "élio", Limit: 50})
	require.NoError(t, err)
	require.Len(t, found, 1)

	taken, err := repo.NameTaken(ctx, "Maria Santos", 0)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestClienteRepository_CountServicesAcrossTables(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := NewClienteGormRepository(db, servico.Garden, servico.Pool)
	c := seedClient(t, db, "Rui Costa")

	n, err := repo.CountServices(ctx, c.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	pool := NewModuloGormRepository(db, servico.Pool)
	require.NoError(t, pool.Create(ctx, &models.ModuleService{
		Tipo: string(servico.TypePool), DataServico: date(t, "2026-06-01"), DuracaoHoras: 3, ClienteID: c.ID,
	}))
	seedService(t, db, c.ID, "2026-06-02", servico.TypeGarden, servico.StatusScheduled)

	n, err = repo.CountServices(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestClienteRepository_DeleteMissing(t *testing.T) {
	repo := NewClienteGormRepository(dbtest.Open(t))
	assert.ErrorIs(t, repo.Delete(context.Background(), 42), cliente.ErrNotFound)
}

func TestClienteRepository_Stats(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := NewClienteGormRepository(db)

	require.NoError(t, db.Create(&models.Client{Nome: "A1", Telefone: str("912345678"), Endereco: str("Rua 1")}).Error)
	require.NoError(t, db.Create(&models.Client{Nome: "A2", Telefone: str("912345679")}).Error)
	require.NoError(t, db.Create(&models.Client{Nome: "A3"}).Error)

	s, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, cliente.Stats{Total: 3, WithPhone: 2, WithAddress: 1}, s)
}

// ===============================
// Services
// ===============================

func TestServicoRepository_ListFiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := NewServicoGormRepository(db)
	a := seedClient(t, db, "Cliente A")
	b := seedClient(t, db, "Cliente B")

	seedService(t, db, a.ID, "2026-04-01", servico.TypeGarden, servico.StatusScheduled)
	seedService(t, db, a.ID, "2026-04-10", servico.TypePool, servico.StatusCompleted)
	seedService(t, db, b.ID, "2026-04-05", servico.TypeGarden, servico.StatusScheduled)

	all, err := repo.List(ctx, servico.Filter{Limit: 50})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2026-04-10", all[0].DataServico.String())
	assert.Equal(t, "2026-04-01", all[2].DataServico.String())

	garden := servico.TypeGarden
	from := date(t, "2026-04-02")
	filtered, err := repo.List(ctx, servico.Filter{Tipo: &garden, DataInicio: &from, Limit: 50})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, b.ID, filtered[0].ClienteID)

	clientID := a.ID
	mine, err := repo.List(ctx, servico.Filter{ClienteID: &clientID, Limit: 50})
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestServicoRepository_ListResumeJoinsClientName(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := NewServicoGormRepository(db)
	c := seedClient(t, db, "Ana Sousa")
	seedService(t, db, c.ID, "2026-04-01", servico.TypeGarden, servico.StatusScheduled)

	rows, err := repo.ListResume(ctx, 0, 50)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana Sousa", rows[0].ClienteNome)
	assert.Equal(t, "2026-04-01", rows[0].DataServico.String())
	assert.Equal(t, "agendado", rows[0].Status)
}

func TestServicoRepository_HasActiveOnDate(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := NewServicoGormRepository(db)
	c := seedClient(t, db, "Ana Sousa")
	day := date(t, "2026-04-01")

	s := seedService(t, db, c.ID, "2026-04-01", servico.TypeGarden, servico.StatusScheduled)

	busy, err := repo.HasActiveOnDate(ctx, c.ID, day, 0)
	require.NoError(t, err)
	assert.True(t, busy)

	busy, err = repo.HasActiveOnDate(ctx, c.ID, day, s.ID)
	require.NoError(t, err)
	assert.False(t, busy)

	s.Status = string(servico.StatusCancelled)
	require.NoError(t, repo.Update(ctx, s))

	busy, err = repo.HasActiveOnDate(ctx, c.ID, day, 0)
	require.NoError(t, err)
	assert.False(t, busy)
}

func TestServicoRepository_Dashboard(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := NewServicoGormRepository(db)
	c := seedClient(t, db, "Ana Sousa")

	seedService(t, db, c.ID, "2026-03-02", servico.TypeGarden, servico.StatusCompleted)
	seedService(t, db, c.ID, "2026-03-12", servico.TypePool, servico.StatusScheduled)
	seedService(t, db, c.ID, "2026-03-17", servico.TypeGarden, servico.StatusScheduled)
	seedService(t, db, c.ID, "2026-04-20", servico.TypePool, servico.StatusCancelled)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	month, err := repo.CountBetween(ctx, date(t, "2026-03-01"), date(t, "2026-04-01"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), month)

	byType, err := repo.CountByType(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), byType[servico.TypeGarden])
	assert.Equal(t, int64(2), byType[servico.TypePool])

	byStatus, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), byStatus[servico.StatusScheduled])
	assert.Equal(t, int64(1), byStatus[servico.StatusCancelled])
	assert.Zero(t, byStatus[servico.StatusInProgress])

	upcoming, err := repo.CountUpcoming(ctx, date(t, "2026-03-10"), date(t, "2026-03-17"), servico.StatusScheduled)
	require.NoError(t, err)
	assert.Equal(t, int64(2), upcoming)
}

func TestServicoRepository_TransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := NewServicoGormRepository(db)
	c := seedClient(t, db, "Ana Sousa")

	err := repo.Transaction(ctx, func(tx servico.Repository) error {
		require.NoError(t, tx.Create(ctx, &models.Service{
			Tipo: "jardinagem", DataServico: date(t, "2026-04-01"), DuracaoHoras: 1,
			Status: "agendado", ClienteID: c.ID,
		}))
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

// ===============================
// Module tables
// ===============================

func TestModuloRepository_TablesAreIndependent(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	garden := NewModuloGormRepository(db, servico.Garden)
	pool := NewModuloGormRepository(db, servico.Pool)
	c := seedClient(t, db, "Ana Sousa")

	s := &models.ModuleService{
		Tipo: "jardinagem", DataServico: date(t, "2026-05-01"), DuracaoHoras: 20, ClienteID: c.ID,
	}
	require.NoError(t, garden.Create(ctx, s))
	require.NotZero(t, s.ID)

	got, err := garden.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, got.DuracaoHoras)

	_, err = pool.Get(ctx, s.ID)
	assert.ErrorIs(t, err, servico.ErrNotFound)

	got.DuracaoHoras = 4
	require.NoError(t, garden.Update(ctx, got))

	list, err := garden.List(ctx, servico.ModuleFilter{Limit: 50})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 4, list[0].DuracaoHoras)

	require.NoError(t, garden.Delete(ctx, s.ID))
	assert.ErrorIs(t, garden.Delete(ctx, s.ID), servico.ErrNotFound)
}
