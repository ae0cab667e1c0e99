// Package filesystem exposes sandboxed filesystem operations as tools.
//
// This package is organized into specialized modules:
//   - basic: Core file operations (read, write, append, exists, delete)
//   - directory: Directory operations (cwd, cd, list, create, tree, walk)
//   - metadata: File metadata (stat, MIME type, encoding detection)
//   - search: File search and filtering (find, glob)
//   - formats: Structured formats (JSON, YAML, TOML, gzip)
//
// All operations:
//   - Resolve paths through the sandbox core before any I/O
//   - Report sandbox-relative paths only
//   - Return structured results with a failure code on denial
//
// Context Resolution:
//   - With a sandbox ID: operations run in that session's sandbox
//   - Without: operations use the default workspace sandbox
//
// Example Usage:
//
//	provider := filesystem.NewProvider(sessions, workspace, logger)
//	result, err := provider.Execute(ctx, "filesystem.read", params, sbCtx)
package filesystem
