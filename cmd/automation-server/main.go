// Command automation-server runs the business automation platform as a
// long-running service. It wires the event hub, telemetry, the six branch
// coordinators and the HTTP status surface under the bootstrap shell, then
// serves until SIGINT or SIGTERM.
package main

import (
	"context"

	"github.com/Garrettc123/ai-business-automation-tree/automation"
	"github.com/Garrettc123/ai-business-automation-tree/bootstrap"
	"github.com/Garrettc123/ai-business-automation-tree/component"
	"github.com/Garrettc123/ai-business-automation-tree/config"
	"github.com/Garrettc123/ai-business-automation-tree/events"
	"github.com/Garrettc123/ai-business-automation-tree/logger"
	"github.com/Garrettc123/ai-business-automation-tree/observability"
	"github.com/Garrettc123/ai-business-automation-tree/server"
	"github.com/Garrettc123/ai-business-automation-tree/version"
)

const serviceName = "automation-server"

// appConfig is the full configuration tree for the service binary. Values
// come from cmd/automation-server/config.yml overlaid with environment
// variables (HTTP_PORT, AUTOMATION_MAX_PARALLEL and so on).
type appConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	HTTP       server.Config        `yaml:"http" mapstructure:"http"`
	Automation automation.Config    `yaml:"automation" mapstructure:"automation"`
	Telemetry  observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

func (c *appConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	if c.Version == "" {
		c.Version = version.Version
	}
	c.ServiceConfig.ApplyDefaults()
	c.HTTP.ApplyDefaults()
	c.Automation.ApplyDefaults()
	c.Telemetry.ApplyDefaults()
}

func (c *appConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.HTTP.Validate(); err != nil {
		return err
	}
	if err := c.Automation.Validate(); err != nil {
		return err
	}
	return c.Telemetry.Validate()
}

func main() {
	var cfg appConfig
	if err := config.LoadConfig(serviceName, &cfg); err != nil {
		logger.Fatal("Failed to load configuration", map[string]interface{}{"error": err.Error()})
	}

	app, err := bootstrap.NewApp(&cfg)
	if err != nil {
		logger.Fatal("Failed to initialize application", map[string]interface{}{"error": err.Error()})
	}

	build := version.Get()
	app.Logger.Info("Build identity", map[string]interface{}{
		"version": build.Version,
		"commit":  build.GitCommit,
		"go":      build.GoVersion,
	})

	eventsComp := events.NewComponent()
	sys := automation.New(cfg.Automation, eventsComp.Hub(), app.Logger)
	srv := server.New(cfg.HTTP, app.Logger)
	srv.RegisterStatusRoutes(sys)

	telemetry := observability.NewTelemetry(cfg.Telemetry, app.Name, app.Version, cfg.Environment)

	// Startup order doubles as shutdown order in reverse: the server stops
	// accepting requests before the automation system and the event hub go
	// away underneath it.
	components := []component.Component{
		eventsComp,
		telemetry,
		automation.NewComponent(sys),
		server.NewComponent(srv),
	}
	for _, c := range components {
		if err := app.RegisterComponent(c); err != nil {
			app.Logger.Fatal("Failed to register component", map[string]interface{}{
				"component": c.Name(),
				"error":     err.Error(),
			})
		}
	}

	if err := app.Run(context.Background()); err != nil {
		app.Logger.Fatal("Service exited with error", map[string]interface{}{"error": err.Error()})
	}
}
