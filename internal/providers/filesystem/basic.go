package filesystem

import (
	"context"

	"github.com/GriffinCanCode/SandboxFS/internal/sandbox"
	"github.com/GriffinCanCode/SandboxFS/internal/types"
)

// BasicOps handles basic file operations
type BasicOps struct {
	*FilesystemOps
}

// GetTools returns basic file operation tool definitions
func (b *BasicOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.read",
			Name:        "Read File",
			Description: "Read file contents as UTF-8 text",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "filesystem.write",
			Name:        "Write File",
			Description: "Write text to file (overwrites existing content in full)",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
				{Name: "content", Type: "string", Description: "Content to write", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.append",
			Name:        "Append to File",
			Description: "Append text to end of file",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
				{Name: "content", Type: "string", Description: "Content to append", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.exists",
			Name:        "Check Existence",
			Description: "Check if a file or directory exists",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File or directory path", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "filesystem.delete",
			Name:        "Delete File",
			Description: "Delete a file or empty directory",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File or directory path", Required: true},
			},
			Returns: "boolean",
		},
	}
}

// Read reads file contents
func (b *BasicOps) Read(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	sb, err := b.Sandbox(sbCtx)
	if err != nil {
		return Failure(err.Error())
	}

	file, err := sb.ReadFile(path)
	if err != nil {
		return FromError(err)
	}

	return Success(map[string]interface{}{
		"path":    file.Path,
		"content": file.Content,
		"size":    len(file.Content),
	})
}

// Write writes content to file (overwrites)
func (b *BasicOps) Write(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}
	content, ok := params["content"].(string)
	if !ok {
		return Failure("content parameter required")
	}

	sb, err := b.Sandbox(sbCtx)
	if err != nil {
		return Failure(err.Error())
	}

	n, err := sb.WriteFile(path, content)
	if err != nil {
		return FromError(err)
	}

	return Success(map[string]interface{}{
		"written": true,
		"path":    path,
		"size":    n,
	})
}

// Append appends content to file
func (b *BasicOps) Append(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}
	content, ok := params["content"].(string)
	if !ok {
		return Failure("content parameter required")
	}

	sb, err := b.Sandbox(sbCtx)
	if err != nil {
		return Failure(err.Error())
	}

	// The core is overwrite-only; append composes read and write.
	existing := ""
	file, rerr := sb.ReadFile(path)
	if rerr == nil {
		existing = file.Content
	} else if !sandbox.IsNotFound(rerr) {
		return FromError(rerr)
	}

	n, err := sb.WriteFile(path, existing+content)
	if err != nil {
		return FromError(err)
	}

	return Success(map[string]interface{}{
		"appended": true,
		"path":     path,
		"size":     n,
	})
}

// Exists checks if file/directory exists
func (b *BasicOps) Exists(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	sb, err := b.Sandbox(sbCtx)
	if err != nil {
		return Failure(err.Error())
	}

	exists, err := sb.Exists(path)
	if err != nil {
		return FromError(err)
	}

	return Success(map[string]interface{}{"exists": exists, "path": path})
}

// Delete deletes a file or empty directory
func (b *BasicOps) Delete(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	sb, err := b.Sandbox(sbCtx)
	if err != nil {
		return Failure(err.Error())
	}

	rel, err := sb.Remove(path)
	if err != nil {
		return FromError(err)
	}

	return Success(map[string]interface{}{"deleted": true, "path": rel})
}
