package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "bizportal/docs"
	"bizportal/internal/adapter/http/handlers"
	"bizportal/internal/adapter/http/middleware"
	"bizportal/internal/adapter/http/stream"
	"bizportal/internal/adapter/persistence/repository"
	"bizportal/internal/domain/entities"
	"bizportal/internal/infrastructure/config"
	"bizportal/internal/infrastructure/database"
	"bizportal/internal/infrastructure/documents"
	"bizportal/internal/infrastructure/imageeditor"
	"bizportal/internal/infrastructure/scheduler"
	"bizportal/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	shutdownTimeout = 10 * time.Second
	imageEditBurst  = 2
)

// Server is the wired HTTP surface of the portal.
type Server struct {
	Router    *gin.Engine
	Handler   http.Handler
	Lifecycle *usecase.LifecycleUseCase
}

// Run builds the server and serves until SIGINT or SIGTERM.
func Run(cfg config.Config) error {
	srv, err := NewServer(context.Background(), cfg)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           srv.Handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	httpServer.RegisterOnShutdown(srv.Lifecycle.Stop)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", httpServer.Addr).Msg("server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

// NewServer wires repositories, use cases and handlers into a router.
func NewServer(ctx context.Context, cfg config.Config) (*Server, error) {
	quoteRepo := repository.NewQuoteMemoryRepository()
	orderRepo := repository.NewOrderMemoryRepository()
	invoiceRepo := repository.NewInvoiceMemoryRepository()

	lifecycle := usecase.NewLifecycleUseCase(quoteRepo, orderRepo, invoiceRepo, scheduler.NewCronScheduler(), cfg.Lifecycle())

	var seedTickets []entities.Ticket
	if cfg.SeedData {
		if err := lifecycle.Seed(ctx, database.MockQuotes(), database.MockOrders(), database.MockInvoices()); err != nil {
			return nil, fmt.Errorf("seed lifecycle: %w", err)
		}
		seedTickets = database.MockTickets()
	}
	ticketRepo := repository.NewTicketMemoryRepository(seedTickets...)

	gateway, err := imageeditor.NewGeminiGateway(ctx, imageeditor.Config{
		APIKey: cfg.GeminiAPIKey,
		Model:  cfg.ImageEditorModel,
		Mock:   cfg.ImageEditorMock,
	})
	if err != nil {
		return nil, fmt.Errorf("image gateway: %w", err)
	}

	catalogUseCase := usecase.NewCatalogUseCase(database.NewStaticCatalog(database.MockProducts()))
	ticketUseCase := usecase.NewTicketUseCase(ticketRepo, time.Now)
	sessionUseCase := usecase.NewSessionUseCase(lifecycle, time.Now)
	imageUseCase := usecase.NewImageEditUseCase(gateway)
	documentUseCase := usecase.NewInvoiceDocumentUseCase(lifecycle, documents.NewInvoicePDFRenderer())

	router := gin.New()
	setMiddlewares(router)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPortalRoutes(v1, portalHandlers{
		portal:     handlers.NewPortalHandler(sessionUseCase, ticketUseCase),
		catalog:    handlers.NewCatalogHandler(catalogUseCase, imageUseCase),
		quotes:     handlers.NewQuoteHandler(lifecycle, catalogUseCase),
		lifecycle:  handlers.NewLifecycleHandler(lifecycle, documentUseCase),
		stream:     stream.NewSnapshotStream(lifecycle, lifecycle, cfg.CORSAllowedOrigins),
		imageLimit: middleware.NewRateLimiter(cfg.ImageEditRatePerMinute, imageEditBurst),
	})

	return &Server{
		Router:    router,
		Handler:   withCORS(router, cfg.CORSAllowedOrigins),
		Lifecycle: lifecycle,
	}, nil
}

func withCORS(h http.Handler, origins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(h)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
}
