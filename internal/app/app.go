// Package app wires the application services together.
package app

import (
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/coli-team/coli-web/internal/api"
	"github.com/coli-team/coli-web/internal/config"
	"github.com/coli-team/coli-web/internal/logging"
	"github.com/coli-team/coli-web/internal/rendering"
	"github.com/coli-team/coli-web/internal/server"
	"github.com/coli-team/coli-web/internal/signup"
	"github.com/coli-team/coli-web/internal/view/components"
)

// New returns an injector providing every service for cfg. Services are
// built lazily on first use.
func New(cfg *config.Config) *do.RootScope {
	i := do.New()
	do.ProvideValue(i, cfg)

	do.Provide(i, func(i do.Injector) (*slog.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logging.New(cfg.LogFormat, cfg.LogLevel), nil
	})
	do.Provide(i, func(i do.Injector) (*api.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return api.NewClient(cfg.APIBaseURL, cfg.APITimeout), nil
	})
	do.Provide(i, func(i do.Injector) (components.Assets, error) {
		return components.NewAssets(do.MustInvoke[*config.Config](i).AssetBaseURL), nil
	})
	do.Provide(i, func(i do.Injector) (*signup.Controller, error) {
		client, err := do.Invoke[*api.Client](i)
		if err != nil {
			return nil, err
		}
		return signup.NewController(client, do.MustInvoke[*slog.Logger](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*rendering.UniversalRenderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})
	do.Provide(i, newServer)
	return i
}

// Server resolves the HTTP server from i.
func Server(i do.Injector) (*server.Server, error) {
	return do.Invoke[*server.Server](i)
}

// Controller resolves the sign-up form controller from i.
func Controller(i do.Injector) (*signup.Controller, error) {
	return do.Invoke[*signup.Controller](i)
}
