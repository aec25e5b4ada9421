package server

import (
	"context"

	"shopapp/internal/config"
	"shopapp/internal/middleware"
	repo "shopapp/internal/repository"
	"shopapp/internal/token"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	e    *echo.Echo
	port string
}

// ルート登録できるhandlerの約束
type RouteRegistrar interface {
	RegisterRoutes(g *echo.Group)
}

// New はミドルウェアとルートを組み立てたechoサーバーを返す
func New(
	cfg config.Config,
	logger *zap.Logger,
	tokens *token.Service,
	users repo.UserRepository,
	handlers ...RouteRegistrar,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLog(logger))

	// APIグループ全体に認証（bypass対象はミドルウェア内で素通し）
	g := e.Group(cfg.APIPrefix)
	g.Use(middleware.AuthJWT(cfg.APIPrefix, tokens, users, logger))

	for _, h := range handlers {
		h.RegisterRoutes(g)
	}

	return &Server{e: e, port: cfg.Port}
}

func (s *Server) Start() error {
	return s.e.Start(":" + s.port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}
