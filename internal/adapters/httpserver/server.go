// Package httpserver exposes the prompt optimizer over HTTP.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/bnema/betterprompt-cli/internal/contracts/v1/fixprompt"
	"github.com/bnema/betterprompt-cli/internal/ports"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
)

type Options struct {
	Addr           string
	Debug          bool
	AllowedOrigins []string
}

type Server struct {
	opts    Options
	handler http.Handler
	logger  *zap.Logger
}

func New(optimizer ports.Optimizer, opts Options, logger *zap.Logger) (*Server, error) {
	if optimizer == nil {
		return nil, errors.New("optimizer is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Server{
		opts:    opts,
		handler: newRouter(optimizer, opts, logger),
		logger:  logger,
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

func newRouter(optimizer ports.Optimizer, opts Options, logger *zap.Logger) *gin.Engine {
	if opts.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(requestID(), accessLog(logger), recovery(logger), cors.New(corsConfig(opts.AllowedOrigins)))

	h := &handlers{optimizer: optimizer, logger: logger}
	router.GET("/", h.index)
	router.GET(fixprompt.HealthPath, h.health)
	router.POST(fixprompt.Path, h.fixPrompt)
	router.NoRoute(h.notFound)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{"Content-Length", requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}

	cfg.AllowOrigins = origins
	return cfg
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		s.logger.Info("listening", zap.String("addr", s.opts.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		s.logger.Info("shutting down")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return group.Wait()
}
