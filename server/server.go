package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/Garrettc123/ai-business-automation-tree/automation"
	"github.com/Garrettc123/ai-business-automation-tree/logger"
	"github.com/Garrettc123/ai-business-automation-tree/server/endpoint"
	"github.com/Garrettc123/ai-business-automation-tree/server/middleware"
)

// Server is the HTTP server for the automation status surface, backed
// by Gin with h2c so HTTP/2 cleartext clients are served on the same
// port.
type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     Config
	log        *logger.Logger
}

// New creates a Server with the standard middleware stack applied. Call
// RegisterStatusRoutes before starting it. Config defaults must already
// be applied.
func New(cfg Config, log *logger.Logger) *Server {
	if log == nil {
		log = logger.NewDefault("server")
	}

	// Gin mode follows the global zerolog level.
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		engine: gin.New(),
		config: cfg,
		log:    log.WithComponent("server"),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.buildHandler(),
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Second,
	}
	return s
}

// buildHandler stacks h2c over the middleware chain over the Gin
// engine. h2c sits outermost so HTTP/2 upgrades happen before any
// wrapper hides the hijacker; every request then passes recovery,
// request ID, CORS, body size, logging and the optional rate limit.
func (s *Server) buildHandler() http.Handler {
	mws := []middleware.Middleware{
		middleware.Recovery(s.log),
		middleware.RequestID(),
		middleware.CORS(&s.config.CORS),
	}
	if s.config.MaxBodySize != "" {
		mws = append(mws, middleware.BodySizeLimit(s.config.MaxBodySize))
	}
	mws = append(mws, middleware.RequestLogger(s.log))
	if s.config.RateLimit > 0 {
		mws = append(mws, middleware.RateLimit(s.config.RateLimit))
	}

	h2s := &http2.Server{
		MaxConcurrentStreams: 250,
		IdleTimeout:          120 * time.Second,
	}
	return h2c.NewHandler(middleware.Chain(mws...)(s.engine), h2s)
}

// RegisterStatusRoutes wires the fixed status surface for the given
// system: /health, /api/status, /api/branches and the catch-all 404.
func (s *Server) RegisterStatusRoutes(sys *automation.System) {
	s.engine.GET("/health", endpoint.Health(sys.Status))
	s.engine.GET("/api/status", endpoint.Status(sys.Status))
	s.engine.GET("/api/branches", endpoint.Branches(sys.Branches))
	s.engine.NoRoute(endpoint.NotFound())

	s.log.Info("Status routes registered", map[string]interface{}{
		"endpoints": endpoint.Available,
	})
}

// GinEngine returns the underlying Gin engine for route registration.
func (s *Server) GinEngine() *gin.Engine {
	return s.engine
}

// Handler returns the fully assembled root handler. Useful for tests
// that exercise the surface without binding a port.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start binds the port and begins serving. It returns once the listener
// is bound so the caller knows the port is ready; serving continues in
// a goroutine.
func (s *Server) Start(ctx context.Context) error {
	s.log.Info("Starting HTTP server", map[string]interface{}{
		"addr": s.httpServer.Addr,
	})

	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("server failed to bind %s: %w", s.httpServer.Addr, err)
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.Error("Server error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	s.log.Info("HTTP server started", map[string]interface{}{
		"addr": s.httpServer.Addr,
	})
	return nil
}

// Stop gracefully shuts down the server with a 5-second deadline.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.log.Error("Server shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("HTTP server shut down successfully")
	return nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
