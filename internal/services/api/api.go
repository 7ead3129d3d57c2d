// Package api provides the HTTP API for the application
package api

import (
	"issuegate/internal/platform/config"
	"issuegate/internal/platform/logger"
	phttp "issuegate/internal/platform/net/http"

	"issuegate/internal/modkit"
	"issuegate/internal/modkit/httpkit"
	"issuegate/internal/modkit/module"

	metamod "issuegate/internal/services/api/meta/module"
	triagemod "issuegate/internal/services/api/triage/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Logger *logger.Logger
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		metamod.New(deps),
		triagemod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
