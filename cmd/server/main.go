package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"dochub/internal/config"
	docsysSvc "dochub/internal/domain/services/docsystem"
	"dochub/internal/filetypes"
	"dochub/internal/handler"
	"dochub/internal/middleware"
	"dochub/internal/repository/postgres"
	postgresDocsys "dochub/internal/repository/postgres/docsystem"
	serviceDocsys "dochub/internal/service/docsystem"
	"dochub/internal/storage"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, logCloser, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer func() { _ = logCloser.Close() }()
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
		"blob_backend", cfg.BlobBackend,
	)

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", postgres.MaxConns,
		"min_conns", postgres.MinConns,
	)

	tables := postgres.NewTableNames(cfg.TablePrefix)
	if err := postgres.Migrate(ctx, pool, tables, logger); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	blobs, err := newBlobStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to set up blob storage: %v", err)
	}

	fileTypes, err := filetypes.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load file type registry: %v", err)
	}

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	folderRepo := postgresDocsys.NewFolderRepository(repoConfig)
	docRepo := postgresDocsys.NewDocumentRepository(repoConfig)
	userRepo := postgresDocsys.NewUserRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool, logger)

	// Create services
	validator := serviceDocsys.NewResourceValidator(folderRepo)
	folderService := serviceDocsys.NewFolderService(folderRepo, blobs, txManager, validator, cfg.RootFolderPath, logger)
	listingService := serviceDocsys.NewListingService(folderRepo, docRepo, validator, logger)
	treeService := serviceDocsys.NewTreeService(folderRepo, docRepo, validator, logger)
	uploadService := serviceDocsys.NewUploadService(docRepo, blobs, fileTypes, folderService, validator, cfg.RootFolderPath, logger)
	userService := serviceDocsys.NewUserService(userRepo, folderService, txManager, logger)
	docService := serviceDocsys.NewDocumentService(docRepo, logger)

	// Create handlers
	folderHandler := handler.NewFolderHandler(folderService, listingService, treeService, logger)
	uploadHandler := handler.NewUploadHandler(uploadService, cfg.MaxUploadBytes, logger)
	userHandler := handler.NewUserHandler(userService, logger)
	docHandler := handler.NewDocumentHandler(docService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.Health)

	// Folder routes
	mux.HandleFunc("GET /api/folder", folderHandler.GetRoot)
	mux.HandleFunc("POST /api/folder", folderHandler.CreateFolder)
	mux.HandleFunc("GET /api/folder/{id}", folderHandler.ListFolder)
	mux.HandleFunc("GET /api/folder/{id}/tree", folderHandler.GetTree)

	// Upload and document routes
	mux.HandleFunc("POST /api/upload", uploadHandler.Upload)
	mux.HandleFunc("GET /api/documents/{id}", docHandler.GetDocument)

	// User routes
	mux.HandleFunc("POST /api/user", userHandler.Register)

	// Build middleware chain
	// Order: CORS → RequestID → RequestLog → Recovery → Routes
	var h http.Handler = mux
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestLog(logger)(h)
	h = middleware.RequestID(h)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       5 * time.Minute, // Large uploads
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

// newBlobStore selects the blob backend from configuration
func newBlobStore(ctx context.Context, cfg *config.Config) (docsysSvc.BlobStore, error) {
	if cfg.BlobBackend == config.BlobBackendMinio {
		store, err := storage.NewMinioStore(ctx,
			cfg.MinioEndpoint,
			cfg.MinioAccessKey,
			cfg.MinioSecretKey,
			cfg.MinioBucket,
			cfg.MinioUseSSL,
		)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	store, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}
	return store, nil
}
