package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/gorm"

	"github.com/gameforge/arcade-dashboard/internal/chat"
	"github.com/gameforge/arcade-dashboard/internal/config"
	"github.com/gameforge/arcade-dashboard/internal/mocks"
	"github.com/gameforge/arcade-dashboard/internal/models"
	"github.com/gameforge/arcade-dashboard/internal/repositories"
	"github.com/gameforge/arcade-dashboard/pkg/arcade"
	"github.com/gameforge/arcade-dashboard/pkg/cache"
)

const (
	Version = "1.0.0"

	ApiPathPrefix = "/api"

	ToolId           = "id"
	ServerId         = "id"
	ConversationId   = "conversationId"
	ToolListPath     = ApiPathPrefix + "/tools"
	ToolPath         = ToolListPath + "/{" + ToolId + "}"
	ServerListPath   = ApiPathPrefix + "/servers"
	ServerPath       = ServerListPath + "/{" + ServerId + "}"
	CategoryListPath = ApiPathPrefix + "/categories"
	UserPath         = ApiPathPrefix + "/user"
	AuthStatusPath   = ApiPathPrefix + "/auth/status"
	ConfigStatusPath = ApiPathPrefix + "/config/status"
	DashboardPath    = ApiPathPrefix + "/dashboard"
	ChatPath         = ApiPathPrefix + "/chat"
	ConversationPath = ChatPath + "/{" + ConversationId + "}"
	CachePath        = ApiPathPrefix + "/cache"
	CacheStatsPath   = CachePath + "/stats"

	HealthCheckPath = "/healthz"
	ReadyCheckPath  = "/readyz"
)

type App struct {
	config       config.EnvConfig
	logger       *slog.Logger
	repositories *repositories.Repositories
	chat         *chat.Service
	cache        *cache.CacheManager
	db           *gorm.DB
	retention    *chat.RetentionWorker
}

// NewApp wires the dashboard client for the configured mode, the chat
// service and the response cache.
func NewApp(cfg config.EnvConfig, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var dashboardClient repositories.DashboardClientInterface
	if cfg.MockMode() {
		logger.Info("serving mock data", slog.Bool("configured", cfg.Configured()))
		dashboardClient = mocks.NewDashboardClientMock(logger)
	} else {
		client, err := arcade.NewClient(cfg.ArcadeClientConfig(), arcade.WithLogger(logger))
		if err != nil {
			return nil, fmt.Errorf("failed to create Arcade client: %w", err)
		}
		dashboardClient = repositories.NewArcadeDashboardClient(client, logger)
	}

	db, err := chat.OpenDB(cfg.Chat.DBPath)
	if err != nil {
		return nil, err
	}
	store := chat.NewConversationStore(db, cfg.Chat.MaxMessages)
	if err := store.AutoMigrate(); err != nil {
		return nil, err
	}
	agent := chat.NewAgent(cfg.ChatAgentConfig(), logger)
	var limiter *chat.RateLimiter
	if cfg.Chat.RateInterval > 0 {
		limiter = chat.NewRateLimiter(cfg.Chat.RateInterval)
	}
	chatService := chat.NewService(agent, store, limiter, logger)

	logger.Info("app initialized",
		slog.String("mode", dashboardClient.Mode()),
		slog.String("chat_agent", agent.Name()),
		slog.Bool("cache", cfg.Cache.Enabled))

	return &App{
		config:       cfg,
		logger:       logger,
		repositories: repositories.NewRepositories(dashboardClient),
		chat:         chatService,
		cache:        cache.NewCacheManager(cfg.CacheConfig()),
		db:           db,
		retention:    chat.NewRetentionWorker(store, cfg.Chat.Retention, logger),
	}, nil
}

// Start launches background work. It returns immediately; the work stops
// when ctx is cancelled.
func (app *App) Start(ctx context.Context) {
	if app.retention != nil {
		go app.retention.Run(ctx)
	}
}

func (app *App) Shutdown() error {
	app.logger.Info("shutting down app...")
	if app.db == nil {
		return nil
	}
	sqlDB, err := app.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (app *App) mode() string {
	return app.repositories.DashboardClient.Mode()
}

func (app *App) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(app.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{cache.HeaderCache, "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.NotFound(app.notFoundHandler)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	catalog := app.cache.CatalogMiddleware()
	account := app.cache.AccountMiddleware()

	// live tool reads always go upstream
	if app.mode() == models.ModeMock {
		r.With(catalog).Get(ToolListPath, app.GetAllToolsHandler)
		r.With(catalog).Get(ToolPath, app.GetToolHandler)
	} else {
		r.Get(ToolListPath, app.GetAllToolsHandler)
		r.Get(ToolPath, app.GetToolHandler)
	}
	r.With(catalog).Get(ServerListPath, app.GetAllServersHandler)
	r.With(catalog).Get(ServerPath, app.GetServerHandler)
	r.With(catalog).Get(CategoryListPath, app.GetCategoriesHandler)

	r.With(account).Get(UserPath, app.UserHandler)
	r.With(account).Get(AuthStatusPath, app.AuthStatusHandler)

	r.Get(ConfigStatusPath, app.ConfigStatusHandler)
	r.Get(DashboardPath, app.DashboardHandler)

	r.Post(ChatPath, app.PostChatHandler)
	r.Get(ConversationPath, app.GetConversationHandler)
	r.Delete(ConversationPath, app.DeleteConversationHandler)

	r.Get(CacheStatsPath, app.CacheStatsHandler)
	r.Delete(CachePath, app.InvalidateCacheHandler)

	r.Get(HealthCheckPath, app.HealthcheckHandler)
	r.Get(ReadyCheckPath, app.ReadyHandler)

	return r
}
