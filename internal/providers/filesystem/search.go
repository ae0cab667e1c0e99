package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/GriffinCanCode/SandboxFS/internal/types"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
)

// SearchOps handles search and filtering operations
type SearchOps struct {
	*FilesystemOps
}

// GetTools returns search operation tool definitions
func (s *SearchOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.find",
			Name:        "Find Files",
			Description: "Find files by name pattern (fast recursive)",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Root directory", Required: true},
				{Name: "pattern", Type: "string", Description: "File pattern (e.g., '*.go')", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "filesystem.glob",
			Name:        "Advanced Glob",
			Description: "Advanced glob with ** patterns (gitignore-style)",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Root directory", Required: true},
				{Name: "pattern", Type: "string", Description: "Glob pattern (e.g., '**/*.go')", Required: true},
			},
			Returns: "array",
		},
	}
}

// Find finds files by name pattern
func (s *SearchOps) Find(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}
	pattern, ok := params["pattern"].(string)
	if !ok || pattern == "" {
		return Failure("pattern parameter required")
	}

	sb, err := s.Sandbox(sbCtx)
	if err != nil {
		return Failure(err.Error())
	}

	fullPath, err := sb.Resolve(path)
	if err != nil {
		return FromError(err)
	}

	matches := []string{}
	conf := fastwalk.Config{Follow: false}

	werr := fastwalk.Walk(&conf, fullPath, func(p string, de os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil || de.IsDir() {
			return nil
		}

		matched, _ := filepath.Match(pattern, filepath.Base(p))
		if matched {
			relPath, _ := filepath.Rel(fullPath, p)
			matches = append(matches, filepath.ToSlash(relPath))
		}
		return nil
	})

	if werr != nil {
		return Failure("find failed: " + werr.Error())
	}

	return Success(map[string]interface{}{"path": path, "matches": matches, "count": len(matches)})
}

// Glob performs advanced glob matching under a resolved directory
func (s *SearchOps) Glob(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}
	pattern, ok := params["pattern"].(string)
	if !ok || pattern == "" {
		return Failure("pattern parameter required")
	}

	// Patterns anchor below the resolved directory; traversal segments
	// would bypass resolution.
	if strings.Contains(pattern, "..") {
		return Failure("pattern cannot contain .. components")
	}

	sb, err := s.Sandbox(sbCtx)
	if err != nil {
		return Failure(err.Error())
	}

	fullPath, err := sb.Resolve(path)
	if err != nil {
		return FromError(err)
	}

	matches, gerr := doublestar.FilepathGlob(filepath.Join(fullPath, pattern))
	if gerr != nil {
		return Failure("glob failed: " + gerr.Error())
	}

	relMatches := []string{}
	for _, match := range matches {
		if relPath, rerr := filepath.Rel(fullPath, match); rerr == nil {
			relMatches = append(relMatches, filepath.ToSlash(relPath))
		}
	}

	return Success(map[string]interface{}{"path": path, "matches": relMatches, "count": len(relMatches)})
}
