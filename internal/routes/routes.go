package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Ramos-bot/GestOnGo-App/internal/audit"
	"github.com/Ramos-bot/GestOnGo-App/internal/config"
	"github.com/Ramos-bot/GestOnGo-App/internal/domain/servico"
	"github.com/Ramos-bot/GestOnGo-App/internal/handlers"
	"github.com/Ramos-bot/GestOnGo-App/internal/httperr"
	infraRepo "github.com/Ramos-bot/GestOnGo-App/internal/infra/repository"
	"github.com/Ramos-bot/GestOnGo-App/internal/metrics"
	"github.com/Ramos-bot/GestOnGo-App/internal/middleware"
	"github.com/Ramos-bot/GestOnGo-App/internal/modules"
	"github.com/Ramos-bot/GestOnGo-App/internal/revocation"
	"github.com/Ramos-bot/GestOnGo-App/internal/security"
	"github.com/Ramos-bot/GestOnGo-App/internal/storage"
	"github.com/Ramos-bot/GestOnGo-App/internal/timezone"
	ucCliente "github.com/Ramos-bot/GestOnGo-App/internal/usecase/cliente"
	ucModulo "github.com/Ramos-bot/GestOnGo-App/internal/usecase/modulo"
	ucServico "github.com/Ramos-bot/GestOnGo-App/internal/usecase/servico"
	ucUser "github.com/Ramos-bot/GestOnGo-App/internal/usecase/user"
	"github.com/Ramos-bot/GestOnGo-App/internal/validators"
)

// Deps are built once at startup. Revocation and Photos are optional: a nil
// value leaves the logout and photo routes out.
type Deps struct {
	DB         *gorm.DB
	Config     *config.Config
	Logger     zerolog.Logger
	Metrics    *metrics.Metrics
	Revocation revocation.Store
	Photos     storage.ObjectStore
	Clock      *timezone.Clock
}

// NewRouter returns a gin engine with global middleware and every route.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	RegisterRoutes(r, deps)
	return r
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	cfg := deps.Config
	db := deps.DB

	httperr.UseJSONFieldNames()

	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}
	if deps.Clock == nil {
		deps.Clock = timezone.NewClock(cfg.Timezone)
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestLogger(deps.Logger),
		middleware.Recovery(),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(cfg.AllowedOrigins, cfg.CORSAllowCredentials),
	)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	allModules := modules.All()
	moduleVariants := make([]servico.Variant, 0, len(allModules))
	for _, m := range allModules {
		moduleVariants = append(moduleVariants, m.Variant)
	}

	userRepo := infraRepo.NewUserGormRepository(db)
	clienteRepo := infraRepo.NewClienteGormRepository(db, moduleVariants...)
	servicoRepo := infraRepo.NewServicoGormRepository(db)

	auditLogger := audit.New(db)
	hasher := security.NewHasher(cfg.BcryptCost)
	tokens := security.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiration)
	rules := validators.New(cfg.PhoneCountryCode, deps.Clock, cfg.ValidateEmailDomain)

	// ======================================================
	// USE CASES
	// ======================================================
	authenticateUC := ucUser.NewAuthenticate(userRepo, tokens, deps.Revocation)

	var logoutUC *ucUser.Logout
	if deps.Revocation != nil {
		logoutUC = ucUser.NewLogout(deps.Revocation, auditLogger)
	}

	var photoUC *ucServico.UploadPhoto
	if deps.Photos != nil {
		photoUC = ucServico.NewUploadPhoto(servicoRepo, deps.Photos, auditLogger)
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	systemHandler := handlers.NewSystemHandler(cfg)

	userHandler := handlers.NewUserHandler(
		ucUser.NewRegister(userRepo, rules, hasher, auditLogger),
		ucUser.NewLogin(userRepo, hasher, tokens, auditLogger),
		logoutUC,
		deps.Metrics,
	)

	clientHandler := handlers.NewClientHandler(
		ucCliente.NewCreate(clienteRepo, rules, auditLogger),
		ucCliente.NewUpdate(clienteRepo, rules, auditLogger),
		ucCliente.NewDelete(clienteRepo, auditLogger),
		ucCliente.NewQuery(clienteRepo),
	)

	servicoHandler := handlers.NewServicoHandler(
		ucServico.NewCreate(servicoRepo, rules, auditLogger),
		ucServico.NewUpdate(servicoRepo, rules, auditLogger),
		ucServico.NewDelete(servicoRepo, auditLogger),
		ucServico.NewQuery(servicoRepo, deps.Clock),
		photoUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/", systemHandler.Welcome)
	r.GET("/health", systemHandler.Health)
	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler(deps.Logger)))

	users := r.Group("/utilizadores")
	{
		collection(users, "POST", userHandler.Register)
		users.POST("/login", userHandler.Login)
	}

	// ======================================================
	// SECURED
	// ======================================================
	auth := middleware.Auth(authenticateUC)

	securedUsers := r.Group("/utilizadores", auth)
	{
		securedUsers.GET("/me", userHandler.Me)
		if logoutUC != nil {
			securedUsers.POST("/logout", userHandler.Logout)
		}
	}

	clientes := r.Group("/clientes", auth)
	{
		collection(clientes, "POST", clientHandler.Create)
		collection(clientes, "GET", clientHandler.List)
		clientes.GET("/estatisticas/resumo", clientHandler.Stats)
		clientes.GET("/:id", clientHandler.Get)
		clientes.PUT("/:id", clientHandler.Update)
		clientes.PATCH("/:id", clientHandler.Update)
		clientes.DELETE("/:id", clientHandler.Delete)
		clientes.GET("/:id/servicos", clientHandler.Services)
	}

	servicos := r.Group("/servicos", auth)
	{
		collection(servicos, "POST", servicoHandler.Create)
		collection(servicos, "GET", servicoHandler.List)
		servicos.GET("/resumo", servicoHandler.Resume)
		servicos.GET("/estatisticas/dashboard", servicoHandler.Dashboard)
		servicos.GET("/:id", servicoHandler.Get)
		servicos.PUT("/:id", servicoHandler.Update)
		servicos.PATCH("/:id", servicoHandler.Update)
		servicos.DELETE("/:id", servicoHandler.Delete)
		if photoUC != nil {
			servicos.POST("/:id/foto", servicoHandler.UploadPhoto)
		}
	}

	// ------------------------------
	// MODULES
	// ------------------------------
	for _, m := range modules.Enabled(cfg) {
		h := handlers.NewModuloHandler(ucModulo.NewService(
			infraRepo.NewModuloGormRepository(db, m.Variant),
			rules,
			auditLogger,
		))

		g := r.Group(m.Prefix, auth)
		collection(g, "POST", h.Create)
		collection(g, "GET", h.List)
		g.GET("/:id", h.Get)
		g.PUT("/:id", h.Update)
		g.PATCH("/:id", h.Update)
		g.DELETE("/:id", h.Delete)

		deps.Logger.Info().Str("module", m.Name).Str("prefix", m.Prefix).Msg("module enabled")
	}

	r.GET("/auditoria", auth, auditLogsHandler.List)
}

// collection registers a handler on the group root with and without the
// trailing slash so neither form is redirected.
func collection(g *gin.RouterGroup, method string, h gin.HandlerFunc) {
	g.Handle(method, "", h)
	g.Handle(method, "/", h)
}
