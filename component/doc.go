// Package component defines the core interfaces for lifecycle-managed
// services in the automation platform.
//
// Components represent services that require startup, shutdown, and
// health monitoring, such as the HTTP server, the workflow event hub,
// and the automation system itself. They are registered with the
// bootstrap package for automatic lifecycle management.
//
// # Interfaces
//
//   - Component: Core lifecycle interface (Start/Stop/Health)
//   - Describable: Bootstrap summary descriptions
//   - RouteProvider: HTTP route reporting for the startup summary
package component
