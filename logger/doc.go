// Package logger provides structured logging for the automation platform
// using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//
// # Usage
//
//	log := logger.Get("workflow")
//	log.Info("workflow finalized", logger.Fields(
//	    logger.FieldScenario, "product-launch",
//	    logger.FieldDuration, elapsed.Milliseconds(),
//	))
package logger
