// Package bootstrap orchestrates application lifecycle for the automation
// platform's binaries.
//
// It provides typed configuration handling, component registration, and
// startup/shutdown hooks for uniform service initialization.
//
// # Quick Start
//
//	app, err := bootstrap.NewApp(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	app.RegisterComponent(serverComponent)
//	if err := app.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// The bootstrap package handles component initialization in registration
// order, graceful shutdown on OS signals, and health aggregation.
package bootstrap
