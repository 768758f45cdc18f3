package server

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/coli-team/coli-web/internal/config"
	"github.com/coli-team/coli-web/internal/handlers"
	"github.com/coli-team/coli-web/internal/middleware"
	"github.com/coli-team/coli-web/internal/rendering"
	"github.com/coli-team/coli-web/web"
)

// multipartOverhead is allowed on top of the upload limit for the text
// fields and part headers of the sign-up form.
const multipartOverhead = 64 << 10

// Server holds the dependencies for the HTTP server.
type Server struct {
	E      *echo.Echo
	Cfg    *config.Config
	logger *slog.Logger

	signUpHandler *handlers.SignUpHandler
	homeHandler   *handlers.HomeHandler
}

// New creates the echo instance with its middleware stack and routes.
func New(cfg *config.Config, logger *slog.Logger, renderer *rendering.UniversalRenderer, signUp *handlers.SignUpHandler, home *handlers.HomeHandler) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = handlers.NewValidator()

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger(logger))
	e.Use(echomw.Recover())

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s := &Server{
		E:             e,
		Cfg:           cfg,
		logger:        logger,
		signUpHandler: signUp,
		homeHandler:   home,
	}
	setupErrorHandling(e)
	s.RegisterRoutes()
	return s
}

// bodyLimit is the request size cap for the sign-up form.
func (s *Server) bodyLimit() string {
	return fmt.Sprintf("%dB", s.Cfg.MaxUploadBytes+multipartOverhead)
}
