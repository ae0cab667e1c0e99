package filesystem

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/SandboxFS/internal/logging"
	"github.com/GriffinCanCode/SandboxFS/internal/sandbox"
	"github.com/GriffinCanCode/SandboxFS/internal/session"
	"github.com/GriffinCanCode/SandboxFS/internal/types"
)

// Provider exposes sandboxed filesystem operations as a tool service
type Provider struct {
	ops       *FilesystemOps
	basic     *BasicOps
	directory *DirectoryOps
	metadata  *MetadataOps
	search    *SearchOps
	formats   *FormatsOps
}

// NewProvider creates a filesystem provider backed by session sandboxes
// and a default workspace
func NewProvider(sessions *session.Manager, defaultFS *sandbox.FS, logger *logging.Logger) *Provider {
	ops := &FilesystemOps{
		Sessions: sessions,
		Default:  defaultFS,
		Logger:   logger,
	}
	return &Provider{
		ops:       ops,
		basic:     &BasicOps{ops},
		directory: &DirectoryOps{ops},
		metadata:  &MetadataOps{ops},
		search:    &SearchOps{ops},
		formats:   &FormatsOps{ops},
	}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.basic.GetTools()...)
	tools = append(tools, p.directory.GetTools()...)
	tools = append(tools, p.metadata.GetTools()...)
	tools = append(tools, p.search.GetTools()...)
	tools = append(tools, p.formats.GetTools()...)

	return types.Service{
		ID:          "filesystem",
		Name:        "Filesystem Service",
		Description: "File and directory operations confined to a sandbox root",
		Category:    types.CategoryFilesystem,
		Capabilities: []string{
			"read",
			"write",
			"create",
			"delete",
			"list",
			"navigate",
			"tree",
			"search",
			"metadata",
			"formats",
		},
		Tools: tools,
	}
}

// Execute runs a filesystem operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Basic operations
	case "filesystem.read":
		return p.basic.Read(ctx, params, sbCtx)
	case "filesystem.write":
		return p.basic.Write(ctx, params, sbCtx)
	case "filesystem.append":
		return p.basic.Append(ctx, params, sbCtx)
	case "filesystem.exists":
		return p.basic.Exists(ctx, params, sbCtx)
	case "filesystem.delete":
		return p.basic.Delete(ctx, params, sbCtx)

	// Directory operations
	case "filesystem.dir.current":
		return p.directory.Current(ctx, params, sbCtx)
	case "filesystem.dir.change":
		return p.directory.Change(ctx, params, sbCtx)
	case "filesystem.dir.list":
		return p.directory.List(ctx, params, sbCtx)
	case "filesystem.dir.create":
		return p.directory.Create(ctx, params, sbCtx)
	case "filesystem.dir.tree":
		return p.directory.Tree(ctx, params, sbCtx)
	case "filesystem.dir.walk":
		return p.directory.Walk(ctx, params, sbCtx)

	// Metadata operations
	case "filesystem.stat":
		return p.metadata.Stat(ctx, params, sbCtx)
	case "filesystem.mime_type":
		return p.metadata.MimeType(ctx, params, sbCtx)
	case "filesystem.encoding":
		return p.metadata.Encoding(ctx, params, sbCtx)
	case "filesystem.is_text":
		return p.metadata.IsText(ctx, params, sbCtx)

	// Search operations
	case "filesystem.find":
		return p.search.Find(ctx, params, sbCtx)
	case "filesystem.glob":
		return p.search.Glob(ctx, params, sbCtx)

	// Format operations
	case "filesystem.json.read":
		return p.formats.JSONRead(ctx, params, sbCtx)
	case "filesystem.json.write":
		return p.formats.JSONWrite(ctx, params, sbCtx)
	case "filesystem.yaml.read":
		return p.formats.YAMLRead(ctx, params, sbCtx)
	case "filesystem.yaml.write":
		return p.formats.YAMLWrite(ctx, params, sbCtx)
	case "filesystem.toml.read":
		return p.formats.TOMLRead(ctx, params, sbCtx)
	case "filesystem.toml.write":
		return p.formats.TOMLWrite(ctx, params, sbCtx)
	case "filesystem.gzip.compress":
		return p.formats.GzipCompress(ctx, params, sbCtx)
	case "filesystem.gzip.decompress":
		return p.formats.GzipDecompress(ctx, params, sbCtx)

	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
