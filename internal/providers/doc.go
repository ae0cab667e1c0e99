// Package providers implements the service provider system.
//
// Service providers expose capabilities through a standardized tool-based
// interface. Each provider groups related operations behind a single
// service definition that the registry can list, discover, and execute.
//
// Available Providers:
//   - Filesystem: Sandboxed file operations, directories, search, formats
//
// Provider Interface:
//   - Definition(): Returns service metadata and tool definitions
//   - Execute(): Executes a tool with parameters and context
//
// Example Usage:
//
//	fs := filesystem.NewProvider(sessions, workspace, logger)
//	result, err := fs.Execute(ctx, "filesystem.read", params, sbCtx)
package providers
