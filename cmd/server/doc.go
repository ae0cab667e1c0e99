// Package main is the entry point for the SandboxFS server.
//
// The server exposes sandboxed filesystem operations over a REST API:
// every path a client supplies is resolved against a confined root, so
// tools can read, write, and navigate without reaching the host tree.
//
// The server provides:
//   - REST API for tool execution and discovery
//   - Per-session sandbox isolation
//   - Prometheus metrics
//   - Rate limiting and CORS
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8000 -sandbox-dir /var/lib/sandboxfs
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
