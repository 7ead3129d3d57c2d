// @title         Issuegate API
// @version       0.1.0
// @description   Deterministic spam triage for issue-report text

package main

import (
	"context"

	"issuegate/internal/platform/config"
	"issuegate/internal/platform/logger"
	phttp "issuegate/internal/platform/net/http"

	"issuegate/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config: root,
			Logger: l,
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
