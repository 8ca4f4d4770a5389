package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ideasage/backend/internal/api"
	analysisapi "github.com/ideasage/backend/internal/api/analysis"
	chatapi "github.com/ideasage/backend/internal/api/chat"
	credentialapi "github.com/ideasage/backend/internal/api/credential"
	ideaapi "github.com/ideasage/backend/internal/api/idea"
	"github.com/ideasage/backend/internal/config"
	"github.com/ideasage/backend/internal/integration/gemini"
	"github.com/ideasage/backend/internal/pkg/stream"
	"github.com/ideasage/backend/internal/repository"
	"github.com/ideasage/backend/internal/usecase/analysis"
	"github.com/ideasage/backend/internal/usecase/chat"
	"github.com/ideasage/backend/internal/usecase/idea"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize repositories
	kv := repository.NewKVPostgres(db)
	store := repository.NewStore(kv, logger)
	credentialStore := repository.NewCredential(kv, logger)
	logger.Info("Repositories initialized")

	// Initialize generative connector (with mock support)
	var analysisConn analysis.GeminiConnector
	var titleConn idea.TitleGenerator
	var chatConn chat.ChatGenerator

	if cfg.EnableMocks {
		logger.Info("Using mock connector for the generative endpoint")
		mock := gemini.NewMockConnector(logger)
		analysisConn, titleConn, chatConn = mock, mock, mock
	} else {
		logger.Info("Using real connector for the generative endpoint")
		conn := gemini.NewConnector(cfg.GeminiCfg, credentialStore, logger)
		analysisConn, titleConn, chatConn = conn, conn, conn
	}

	// Initialize use cases
	ideaUC := idea.NewUsecase(store, titleConn, logger)
	analysisUC := analysis.NewUsecase(store, analysisConn, logger)
	chatUC := chat.NewUsecase(store, chatConn, stream.NewSimulator(cfg.ChatCfg.StreamInterval), logger)
	draftTracker := idea.NewDraftTracker(cfg.DraftCfg, titleConn, logger)
	logger.Info("Use cases initialized")

	// Setup API handlers
	credentialHandler := credentialapi.NewHandler(credentialStore)
	ideaHandler := ideaapi.NewHandler(ideaUC, draftTracker)
	analysisHandler := analysisapi.NewHandler(analysisUC)
	chatHandler := chatapi.NewHandler(chatUC)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(credentialHandler, ideaHandler, analysisHandler, chatHandler, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server. The write timeout must outlast a full
	// generation plus simulated delivery of a long reply.
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		draft:  draftTracker,
		logger: logger,
	}, nil
}
