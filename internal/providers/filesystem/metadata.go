package filesystem

import (
	"context"
	"io"
	"os"

	"github.com/GriffinCanCode/SandboxFS/internal/types"
	"github.com/gabriel-vasile/mimetype"
	"github.com/saintfish/chardet"
)

// MetadataOps handles file metadata operations
type MetadataOps struct {
	*FilesystemOps
}

// GetTools returns metadata operation tool definitions
func (m *MetadataOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.stat",
			Name:        "File Stats",
			Description: "Get file or directory metadata",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File or directory path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.mime_type",
			Name:        "MIME Type",
			Description: "Detect file MIME type (fast, accurate)",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "filesystem.encoding",
			Name:        "Detect Encoding",
			Description: "Detect text encoding of a file",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.is_text",
			Name:        "Is Text File",
			Description: "Check if file is text",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
			Returns: "boolean",
		},
	}
}

// Stat gets file stats
func (m *MetadataOps) Stat(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	sb, err := m.Sandbox(sbCtx)
	if err != nil {
		return Failure(err.Error())
	}

	target, err := sb.Resolve(path)
	if err != nil {
		return FromError(err)
	}

	info, serr := os.Stat(target)
	if serr != nil {
		return Failure("stat failed: " + sb.Rel(target))
	}

	return Success(map[string]interface{}{
		"path": sb.Rel(target),
		"info": map[string]interface{}{
			"name":     info.Name(),
			"size":     info.Size(),
			"is_dir":   info.IsDir(),
			"mode":     info.Mode().String(),
			"modified": info.ModTime().Unix(),
		},
	})
}

// MimeType detects file MIME type
func (m *MetadataOps) MimeType(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	sb, err := m.Sandbox(sbCtx)
	if err != nil {
		return Failure(err.Error())
	}

	target, err := sb.Resolve(path)
	if err != nil {
		return FromError(err)
	}

	mtype, derr := mimetype.DetectFile(target)
	if derr != nil {
		return Failure("detection failed: " + sb.Rel(target))
	}

	return Success(map[string]interface{}{
		"path":      sb.Rel(target),
		"mime_type": mtype.String(),
		"extension": mtype.Extension(),
	})
}

// Encoding detects text encoding
func (m *MetadataOps) Encoding(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	sb, err := m.Sandbox(sbCtx)
	if err != nil {
		return Failure(err.Error())
	}

	target, err := sb.Resolve(path)
	if err != nil {
		return FromError(err)
	}

	f, oerr := os.Open(target)
	if oerr != nil {
		return Failure("open failed: " + sb.Rel(target))
	}
	defer f.Close()

	// A prefix is enough for the detector.
	buf := make([]byte, 8192)
	n, rerr := f.Read(buf)
	if rerr != nil && rerr != io.EOF {
		return Failure("read failed: " + sb.Rel(target))
	}

	detected, derr := chardet.NewTextDetector().DetectBest(buf[:n])
	if derr != nil {
		return Failure("detection failed: " + sb.Rel(target))
	}

	return Success(map[string]interface{}{
		"path":       sb.Rel(target),
		"charset":    detected.Charset,
		"language":   detected.Language,
		"confidence": detected.Confidence,
	})
}

// IsText checks whether a file holds text content
func (m *MetadataOps) IsText(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}

	sb, err := m.Sandbox(sbCtx)
	if err != nil {
		return Failure(err.Error())
	}

	target, err := sb.Resolve(path)
	if err != nil {
		return FromError(err)
	}

	mtype, derr := mimetype.DetectFile(target)
	if derr != nil {
		return Failure("detection failed: " + sb.Rel(target))
	}

	isText := false
	for t := mtype; t != nil; t = t.Parent() {
		if t.Is("text/plain") {
			isText = true
			break
		}
	}

	return Success(map[string]interface{}{
		"path":      sb.Rel(target),
		"is_text":   isText,
		"mime_type": mtype.String(),
	})
}
