// Package config loads service configuration from YAML files and the
// environment.
//
// Configuration is resolved in layers: a config.yml discovered near the
// binary (or passed explicitly), a .env file loaded through godotenv, and
// process environment variables bound through Viper. Later layers override
// earlier ones.
//
// Services embed ServiceConfig in their own config structs so defaults
// and validation compose:
//
//	type Config struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    HTTP server.Config   `yaml:"http" mapstructure:"http"`
//	}
package config
