// Package httpapi exposes the favorites core over HTTP: the write API
// used by page toggles, the favoritelist bulk editors, the read-only
// list views, and the lifecycle hooks the host wiki calls on page
// moves and deletions.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wikimedia/favorites/favorites"
	"github.com/wikimedia/favorites/token"
)

type Server struct {
	echo    *echo.Echo
	log     *slog.Logger
	store   favorites.Store
	engine  *favorites.Engine
	reactor *favorites.Reactor
	tokens  *token.Service
}

type Config struct {
	Store   favorites.Store
	Engine  *favorites.Engine
	Reactor *favorites.Reactor
	Tokens  *token.Service
	Log     *slog.Logger
}

func NewServer(cfg Config) *Server {
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:    e,
		log:     log,
		store:   cfg.Store,
		engine:  cfg.Engine,
		reactor: cfg.Reactor,
		tokens:  cfg.Tokens,
	}

	e.Use(requestLogger(log))
	e.Use(resolveUser)

	e.GET("/healthz", s.handleHealth)
	e.GET("/api/token", s.handleToken)
	e.POST("/api/favorite", s.handleToggle)
	e.GET("/favoritelist", s.handleList)
	e.POST("/favoritelist/raw", s.handleRawEdit)
	e.POST("/favoritelist/edit", s.handleNormalEdit)
	e.POST("/hooks/page-move", s.handlePageMove)
	e.POST("/hooks/page-delete", s.handlePageDelete)

	return s
}

func (s *Server) Start(addr string) error {
	s.log.Info("favorites api listening", "addr", addr)
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler { return s.echo }

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
