package server

import (
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/coli-team/coli-web/internal/handlers"
	"github.com/coli-team/coli-web/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter(s.Cfg.SignUpRate, s.Cfg.SignUpBurst)

	s.E.GET("/", s.homeHandler.HomeGet, middleware.RequireUser)

	s.E.GET("/sign-up", s.signUpHandler.Get, middleware.RedirectIfSignedIn)
	s.E.POST("/sign-up", s.signUpHandler.Post, rateLimiter, echomw.BodyLimit(s.bodyLimit()))
	s.E.GET("/sign-up/label/:field", s.signUpHandler.Label)
	s.E.POST("/sign-out", handlers.SignOut)

	s.E.GET("/health", handlers.Health)
}
