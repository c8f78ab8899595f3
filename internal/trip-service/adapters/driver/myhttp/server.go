package myhttp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/maharjanPranish/NepXplore/internal/config"
	"github.com/maharjanPranish/NepXplore/internal/mylogger"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/adapters/driven/bm"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/adapters/driven/cache"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/adapters/driven/db"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/adapters/driven/notification"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/adapters/driver/myhttp/handle"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/adapters/driver/myhttp/middleware"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/adapters/driver/myhttp/ws"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/ports"
	"github.com/maharjanPranish/NepXplore/internal/trip-service/core/services"
)

var ErrServerClosed = errors.New("Server closed")

const WaitTime = 10

type Server struct {
	mux    *http.ServeMux
	cfg    *config.Config
	srv    *http.Server
	mylog  mylogger.Logger
	db     *db.DB
	mb     ports.ITripBroker
	ctx    context.Context
	appCtx context.Context
	mu     sync.Mutex
	wg     sync.WaitGroup
}

func NewServer(ctx, appCtx context.Context, mylog mylogger.Logger, cfg *config.Config) *Server {
	return &Server{
		ctx:    ctx,
		appCtx: appCtx,
		cfg:    cfg,
		mylog:  mylog,
		mux:    http.NewServeMux(),
	}
}

// Run initializes routes and starts listening. It returns when the server stops.
func (s *Server) Run() error {
	mylog := s.mylog.Action("server_started")

	database, err := db.New(s.ctx, s.cfg.DB, mylog)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = database
	mylog.Info("Successful database connection")

	mb, err := bm.New(s.appCtx, *s.cfg.RabbitMq, s.mylog)
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	s.mb = mb
	mylog.Info("Successful message broker connection")

	if err := s.Configure(); err != nil {
		return err
	}

	s.mu.Lock()
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%v", s.cfg.Srv.TripServicePort),
		Handler: s.mux,
	}
	s.mu.Unlock()

	mylog = mylog.WithGroup("details").With("port", s.cfg.Srv.TripServicePort)

	mylog.Info("server is running")
	return s.startHTTPServer()
}

// Stop provides a programmatic shutdown. Accepts a context for timeout control.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mylog.Info("Shutting down HTTP server...")

	s.wg.Wait()

	if s.srv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, WaitTime*time.Second)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.mylog.Error("Failed to shut down HTTP server gracefully", err)
			return fmt.Errorf("http server shutdown: %w", err)
		}
	}

	if s.mb != nil {
		if err := s.mb.Close(); err != nil {
			s.mylog.Error("Failed to close message broker", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.mylog.Error("Failed to close database", err)
			return fmt.Errorf("db close: %w", err)
		}
		s.mylog.Info("Database closed")
	}

	s.mylog.Info("HTTP server shut down gracefully")
	return nil
}

func (s *Server) startHTTPServer() error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		} else {
			errCh <- nil
		}
	}()

	select {
	case <-s.ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Configure wires repositories, services and handlers and registers routes.
func (s *Server) Configure() error {
	// Repositories
	requestsRepo := db.NewRequestsRepo(s.db)
	guidesRepo := db.NewGuidesRepo(s.db)
	destinationsRepo := db.NewDestinationsRepo(s.db)
	notificationsRepo := db.NewNotificationsRepo(s.db)
	catalogCache := cache.New(s.cfg.Redis, s.mylog)

	// services
	requestsService := services.NewRequestsService(s.mylog, requestsRepo, guidesRepo, s.mb)
	guidesService := services.NewGuidesService(s.mylog, guidesRepo)
	destinationsService := services.NewDestinationsService(s.mylog, destinationsRepo, catalogCache)
	notificationsService := services.NewNotificationsService(s.mylog, notificationsRepo)

	// handlers
	requestsHandler := handle.NewRequestsHandler(requestsService, s.mylog)
	guidesHandler := handle.NewGuidesHandler(guidesService, s.mylog)
	destinationsHandler := handle.NewDestinationsHandler(destinationsService, s.mylog)
	notificationsHandler := handle.NewNotificationsHandler(notificationsService, s.mylog)

	authMiddleware := middleware.NewAuthMiddleware(s.cfg.App.JwtSecret)

	dispatcher := ws.NewDispatcher(s.appCtx, s.mylog)

	// assignment fan-out worker
	worker := notification.New(s.appCtx, &s.wg, s.mylog, dispatcher, s.mb)
	if err := worker.Run(); err != nil {
		return fmt.Errorf("failed to start notification worker: %w", err)
	}

	// Register routes
	s.mux.Handle("POST /api/requests", authMiddleware.Wrap(requestsHandler.Submit()))
	s.mux.Handle("GET /api/requests", authMiddleware.Wrap(requestsHandler.List()))
	s.mux.Handle("PUT /api/requests/{request_id}/assign", authMiddleware.Wrap(requestsHandler.Assign()))
	s.mux.Handle("PUT /api/requests/{request_id}", authMiddleware.Wrap(requestsHandler.AdvanceStatus()))
	s.mux.Handle("GET /api/requests/{request_id}/eligible", authMiddleware.Wrap(requestsHandler.EligibleGuides()))

	s.mux.Handle("GET /api/guides", guidesHandler.List())
	s.mux.Handle("POST /api/guides", authMiddleware.Wrap(guidesHandler.Create()))
	s.mux.Handle("PUT /api/guides/{guide_id}", authMiddleware.Wrap(guidesHandler.Update()))

	s.mux.Handle("GET /api/destinations", destinationsHandler.List())

	s.mux.Handle("GET /api/notifications", authMiddleware.Wrap(notificationsHandler.List()))
	s.mux.Handle("PUT /api/notifications/{notification_id}/read", authMiddleware.Wrap(notificationsHandler.MarkRead()))
	s.mux.Handle("DELETE /api/notifications", authMiddleware.Wrap(notificationsHandler.ClearAll()))

	// websocket routes
	s.mux.Handle("GET /ws/users/{user_id}", authMiddleware.Wrap(dispatcher.WsHandler()))

	return nil
}
