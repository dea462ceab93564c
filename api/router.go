// Package api serves mazes over HTTP with gin.
//
// Routes live under <BaseURL>/v1. Controllers register read routes on the
// public group and write routes on the protected group; when no
// authorization middleware is configured both groups are open.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Controller registers a set of routes.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
	RegisterProtected(*gin.RouterGroup)
}

// Config holds the settings for NewRouter.
type Config struct {
	Addr                    string // address to listen on
	BaseURL                 string // prefix for every route
	Controllers             []Controller
	AuthorizationMiddleware gin.HandlerFunc // nil leaves protected routes open
	Logger                  logrus.FieldLogger
}

// Router builds the gin engine and runs the HTTP server.
type Router struct {
	addr                    string
	baseURL                 string
	controllers             []Controller
	authorizationMiddleware gin.HandlerFunc
	log                     logrus.FieldLogger
}

// NewRouter returns a Router for config.
func NewRouter(config Config) *Router {
	log := config.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Router{
		addr:                    config.Addr,
		baseURL:                 config.BaseURL,
		controllers:             config.Controllers,
		authorizationMiddleware: config.AuthorizationMiddleware,
		log:                     log,
	}
}

// Handler returns the engine with every controller's routes registered.
func (r *Router) Handler() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(r.log))

	root := engine.Group(r.baseURL)
	{
		publicRoutes := root.Group("/v1")
		for _, c := range r.controllers {
			c.RegisterPublic(publicRoutes)
		}

		protectedRoutes := root.Group("/v1")
		if r.authorizationMiddleware != nil {
			protectedRoutes.Use(r.authorizationMiddleware)
		}
		for _, c := range r.controllers {
			c.RegisterProtected(protectedRoutes)
		}
	}

	return engine
}

// Serve listens on the configured address until ctx is cancelled, then
// drains in-flight requests for up to five seconds.
func (r *Router) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              r.addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		r.log.WithField("addr", r.addr).Info("http server listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	r.log.Info("http server stopped")

	return nil
}

// requestLogger logs one line per request.
func requestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		})
		if len(c.Errors) > 0 {
			entry.WithField("errors", c.Errors.String()).Warn("request failed")
			return
		}
		entry.Debug("request")
	}
}
