package app

import (
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/coli-team/coli-web/internal/api"
	"github.com/coli-team/coli-web/internal/config"
	"github.com/coli-team/coli-web/internal/handlers"
	"github.com/coli-team/coli-web/internal/rendering"
	"github.com/coli-team/coli-web/internal/server"
	"github.com/coli-team/coli-web/internal/signup"
	"github.com/coli-team/coli-web/internal/view/components"
)

// Dependencies holds the core services resolved from the injector.
type Dependencies struct {
	Config     *config.Config
	Logger     *slog.Logger
	API        *api.Client
	Assets     components.Assets
	Controller *signup.Controller
	Renderer   *rendering.UniversalRenderer
}

// resolve pulls the shared services out of i.
func resolve(i do.Injector) (Dependencies, error) {
	var (
		deps Dependencies
		err  error
	)
	if deps.Config, err = do.Invoke[*config.Config](i); err != nil {
		return deps, err
	}
	if deps.Logger, err = do.Invoke[*slog.Logger](i); err != nil {
		return deps, err
	}
	if deps.API, err = do.Invoke[*api.Client](i); err != nil {
		return deps, err
	}
	if deps.Assets, err = do.Invoke[components.Assets](i); err != nil {
		return deps, err
	}
	if deps.Controller, err = do.Invoke[*signup.Controller](i); err != nil {
		return deps, err
	}
	if deps.Renderer, err = do.Invoke[*rendering.UniversalRenderer](i); err != nil {
		return deps, err
	}
	return deps, nil
}

// newServer builds the HTTP server from the resolved dependencies.
func newServer(i do.Injector) (*server.Server, error) {
	deps, err := resolve(i)
	if err != nil {
		return nil, err
	}
	signUp := handlers.NewSignUpHandler(deps.Controller, deps.Config.MaxUploadBytes)
	home := handlers.NewHomeHandler(deps.API, deps.Assets)
	return server.New(deps.Config, deps.Logger, deps.Renderer, signUp, home), nil
}
