// Package http provides HTTP handlers and routing for the sandbox REST API.
//
// This package implements all HTTP endpoints using the Gin framework, including
// health checks, service discovery, tool execution, and session management.
//
// Endpoints:
//   - Health: / and /health
//   - Services: /services, /services/discover, /services/execute
//   - Sessions: /sessions, /sessions/:id
//   - Stats: /stats
//
// Example Usage:
//
//	handlers := http.NewHandlers(registry, sessionMgr, metrics)
//	router.GET("/health", handlers.Health)
//	router.POST("/services/execute", handlers.ExecuteService)
package http
