package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/GriffinCanCode/SandboxFS/internal/types"
	"github.com/charlievieth/fastwalk"
	"go.uber.org/zap"
)

// DirectoryOps handles directory operations
type DirectoryOps struct {
	*FilesystemOps
}

// GetTools returns directory operation tool definitions
func (d *DirectoryOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.dir.current",
			Name:        "Current Directory",
			Description: "Get the sandbox-relative working directory",
			Parameters:  []types.Parameter{},
			Returns:     "string",
		},
		{
			ID:          "filesystem.dir.change",
			Name:        "Change Directory",
			Description: "Change the working directory",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "filesystem.dir.list",
			Name:        "List Directory",
			Description: "List contents of the working directory",
			Parameters:  []types.Parameter{},
			Returns:     "array",
		},
		{
			ID:          "filesystem.dir.create",
			Name:        "Create Directory",
			Description: "Create a new directory (recursive)",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "filesystem.dir.tree",
			Name:        "Directory Tree",
			Description: "Map every directory under a path to its listing",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.dir.walk",
			Name:        "Walk Directory",
			Description: "Walk directory recursively (fast)",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Directory path", Required: true},
				{Name: "max_depth", Type: "number", Description: "Max depth (0=unlimited)", Required: false},
			},
			Returns: "array",
		},
	}
}

// Current returns the working directory
func (d *DirectoryOps) Current(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	sb, err := d.Sandbox(sbCtx)
	if err != nil {
		return Failure(err.Error())
	}
	return Success(map[string]interface{}{"path": sb.CurrentDir()})
}

// Change changes the working directory
func (d *DirectoryOps) Change(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	sb, err := d.Sandbox(sbCtx)
	if err != nil {
		return Failure(err.Error())
	}

	loc, err := sb.ChangeDir(path)
	if err != nil {
		return FromError(err)
	}
	return Success(map[string]interface{}{"path": loc})
}

// List lists working directory contents
func (d *DirectoryOps) List(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	sb, err := d.Sandbox(sbCtx)
	if err != nil {
		return Failure(err.Error())
	}

	entries, err := sb.ListContents()
	if err != nil {
		return FromError(err)
	}

	return Success(map[string]interface{}{
		"path":    sb.CurrentDir(),
		"entries": entries,
		"count":   len(entries),
	})
}

// Create creates a directory
func (d *DirectoryOps) Create(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	sb, err := d.Sandbox(sbCtx)
	if err != nil {
		return Failure(err.Error())
	}

	rel, err := sb.MakeDir(path)
	if err != nil {
		if d.Logger != nil {
			d.Logger.Warn("directory creation failed",
				zap.String("path", path),
				zap.Error(err),
			)
		}
		return FromError(err)
	}

	return Success(map[string]interface{}{"created": true, "path": rel})
}

// Tree maps every directory reachable under a path to its listing
func (d *DirectoryOps) Tree(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	sb, err := d.Sandbox(sbCtx)
	if err != nil {
		return Failure(err.Error())
	}

	tree, err := sb.DirectoryTree(path)
	if err != nil {
		return FromError(err)
	}

	return Success(map[string]interface{}{
		"path":  path,
		"tree":  tree,
		"count": len(tree),
	})
}

// Walk walks a directory recursively using fastwalk
func (d *DirectoryOps) Walk(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	maxDepth := 0
	if depth, ok := params["max_depth"].(float64); ok {
		maxDepth = int(depth)
	}

	sb, err := d.Sandbox(sbCtx)
	if err != nil {
		return Failure(err.Error())
	}

	fullPath, err := sb.Resolve(path)
	if err != nil {
		return FromError(err)
	}

	entries := []map[string]interface{}{}
	conf := fastwalk.Config{
		Follow: false,
	}

	err = fastwalk.Walk(&conf, fullPath, func(p string, de os.DirEntry, werr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if werr != nil || p == fullPath {
			return nil
		}

		relPath, _ := filepath.Rel(fullPath, p)
		depth := len(strings.Split(relPath, string(os.PathSeparator))) - 1
		if maxDepth > 0 && depth > maxDepth {
			if de.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		info, ierr := de.Info()
		if ierr != nil {
			return nil
		}

		entries = append(entries, map[string]interface{}{
			"path":     filepath.ToSlash(relPath),
			"is_dir":   de.IsDir(),
			"size":     info.Size(),
			"modified": info.ModTime().Unix(),
		})
		return nil
	})

	if err != nil {
		return Failure("walk failed: " + err.Error())
	}

	return Success(map[string]interface{}{"path": path, "entries": entries, "count": len(entries)})
}
