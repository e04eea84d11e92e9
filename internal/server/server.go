package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/suyash01/splitease/internal/config"
	"github.com/suyash01/splitease/internal/handlers"
	"go.uber.org/zap"
)

type Server struct {
	cfg    *config.Config
	log    *zap.Logger
	router *mux.Router
}

func New(cfg *config.Config, log *zap.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		log:    log,
		router: mux.NewRouter(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(limitBody(s.cfg.MaxInputBytes))

	s.router.HandleFunc("/", handlers.HandleHome).Methods("GET")
	s.router.HandleFunc("/healthz", handlers.HandleHealth).Methods("GET")
	s.router.HandleFunc("/settle", handlers.HandleSettle).Methods("POST")
	s.router.HandleFunc("/api/settle", handlers.HandleAPISettle).Methods("POST")
}

// Handler is the router wrapped with CORS, request ids and request logging.
// The outer wrappers also see requests no route matches.
func (s *Server) Handler() http.Handler {
	withCORS := cors.New(cors.Options{
		AllowedOrigins: s.cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "HX-Request", "HX-Target", "HX-Trigger", "HX-Current-URL"},
		ExposedHeaders: []string{"HX-Trigger", requestIDHeader},
	}).Handler(s.router)
	return requestID(s.logRequests(withCORS))
}

// Run listens on the configured port until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+s.cfg.Port)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", s.cfg.Port, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down within
// the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.Handler()}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down", zap.Duration("timeout", s.cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
