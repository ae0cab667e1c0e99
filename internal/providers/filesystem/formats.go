package filesystem

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/GriffinCanCode/SandboxFS/internal/sandbox"
	"github.com/GriffinCanCode/SandboxFS/internal/types"
	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/gzip"
	"github.com/pelletier/go-toml/v2"
)

// FormatsOps handles structured file format operations
type FormatsOps struct {
	*FilesystemOps
}

// GetTools returns format operation tool definitions
func (f *FormatsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.json.read",
			Name:        "Read JSON",
			Description: "Read and parse JSON file (fast decoding)",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.json.write",
			Name:        "Write JSON",
			Description: "Write data as JSON file (fast encoding)",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
				{Name: "data", Type: "object", Description: "Data to write", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.yaml.read",
			Name:        "Read YAML",
			Description: "Parse YAML file",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.yaml.write",
			Name:        "Write YAML",
			Description: "Write data as YAML file",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
				{Name: "data", Type: "object", Description: "Data to write", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.toml.read",
			Name:        "Read TOML",
			Description: "Parse TOML file",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.toml.write",
			Name:        "Write TOML",
			Description: "Write data as TOML file",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "File path", Required: true},
				{Name: "data", Type: "object", Description: "Data to write", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.gzip.compress",
			Name:        "Gzip Compress",
			Description: "Compress a file with gzip",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Source file path", Required: true},
				{Name: "output", Type: "string", Description: "Output path (default: path + .gz)", Required: false},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.gzip.decompress",
			Name:        "Gzip Decompress",
			Description: "Decompress a gzip file",
			Parameters: []types.Parameter{
				{Name: "path", Type: "string", Description: "Compressed file path", Required: true},
				{Name: "output", Type: "string", Description: "Output path", Required: true},
			},
			Returns: "object",
		},
	}
}

// JSONRead reads and parses a JSON file
func (f *FormatsOps) JSONRead(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	file, res := f.readSource(params, sbCtx)
	if res != nil {
		return res, nil
	}

	var parsed interface{}
	if err := sonic.Unmarshal([]byte(file.Content), &parsed); err != nil {
		return Failure("invalid JSON: " + err.Error())
	}

	return Success(map[string]interface{}{"path": file.Path, "data": parsed})
}

// JSONWrite writes data as a JSON file
func (f *FormatsOps) JSONWrite(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	path, data, res := writeParams(params)
	if res != nil {
		return res, nil
	}

	encoded, err := sonic.MarshalIndent(data, "", "  ")
	if err != nil {
		return Failure("JSON encoding failed: " + err.Error())
	}

	return f.writeEncoded(path, encoded, sbCtx)
}

// YAMLRead parses a YAML file
func (f *FormatsOps) YAMLRead(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	file, res := f.readSource(params, sbCtx)
	if res != nil {
		return res, nil
	}

	var parsed interface{}
	if err := yaml.Unmarshal([]byte(file.Content), &parsed); err != nil {
		return Failure("invalid YAML: " + err.Error())
	}

	return Success(map[string]interface{}{"path": file.Path, "data": parsed})
}

// YAMLWrite writes data as a YAML file
func (f *FormatsOps) YAMLWrite(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	path, data, res := writeParams(params)
	if res != nil {
		return res, nil
	}

	encoded, err := yaml.Marshal(data)
	if err != nil {
		return Failure("YAML encoding failed: " + err.Error())
	}

	return f.writeEncoded(path, encoded, sbCtx)
}

// TOMLRead parses a TOML file
func (f *FormatsOps) TOMLRead(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	file, res := f.readSource(params, sbCtx)
	if res != nil {
		return res, nil
	}

	var parsed map[string]interface{}
	if err := toml.Unmarshal([]byte(file.Content), &parsed); err != nil {
		return Failure("invalid TOML: " + err.Error())
	}

	return Success(map[string]interface{}{"path": file.Path, "data": parsed})
}

// TOMLWrite writes data as a TOML file
func (f *FormatsOps) TOMLWrite(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	path, data, res := writeParams(params)
	if res != nil {
		return res, nil
	}

	encoded, err := toml.Marshal(data)
	if err != nil {
		return Failure("TOML encoding failed: " + err.Error())
	}

	return f.writeEncoded(path, encoded, sbCtx)
}

// GzipCompress compresses a file with gzip
func (f *FormatsOps) GzipCompress(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}
	output, _ := params["output"].(string)
	if output == "" {
		output = path + ".gz"
	}

	sb, err := f.Sandbox(sbCtx)
	if err != nil {
		return Failure(err.Error())
	}

	// Compressed payloads bypass the text core: resolve both endpoints,
	// then do direct I/O on the contained paths.
	src, err := sb.Resolve(path)
	if err != nil {
		return FromError(err)
	}
	dst, err := sb.Resolve(output)
	if err != nil {
		return FromError(err)
	}

	data, rerr := os.ReadFile(src)
	if rerr != nil {
		return Failure("read failed: " + sb.Rel(src))
	}

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, werr := w.Write(data); werr != nil {
		return Failure("compression failed: " + werr.Error())
	}
	if cerr := w.Close(); cerr != nil {
		return Failure("compression failed: " + cerr.Error())
	}

	if merr := os.MkdirAll(filepath.Dir(dst), 0o700); merr != nil {
		return Failure("write failed: " + sb.Rel(dst))
	}
	if werr := os.WriteFile(dst, buf.Bytes(), 0o600); werr != nil {
		return Failure("write failed: " + sb.Rel(dst))
	}

	return Success(map[string]interface{}{
		"path":            sb.Rel(src),
		"output":          sb.Rel(dst),
		"original_size":   len(data),
		"compressed_size": buf.Len(),
	})
}

// GzipDecompress decompresses a gzip file
func (f *FormatsOps) GzipDecompress(ctx context.Context, params map[string]interface{}, sbCtx *types.Context) (*types.Result, error) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		return Failure("path parameter required")
	}
	output, ok := params["output"].(string)
	if !ok || output == "" {
		return Failure("output parameter required")
	}

	sb, err := f.Sandbox(sbCtx)
	if err != nil {
		return Failure(err.Error())
	}

	src, err := sb.Resolve(path)
	if err != nil {
		return FromError(err)
	}
	dst, err := sb.Resolve(output)
	if err != nil {
		return FromError(err)
	}

	in, oerr := os.Open(src)
	if oerr != nil {
		return Failure("open failed: " + sb.Rel(src))
	}
	defer in.Close()

	r, gerr := gzip.NewReader(in)
	if gerr != nil {
		return Failure("invalid gzip data: " + sb.Rel(src))
	}
	defer r.Close()

	data, rerr := io.ReadAll(r)
	if rerr != nil {
		return Failure("decompression failed: " + rerr.Error())
	}

	if merr := os.MkdirAll(filepath.Dir(dst), 0o700); merr != nil {
		return Failure("write failed: " + sb.Rel(dst))
	}
	if werr := os.WriteFile(dst, data, 0o600); werr != nil {
		return Failure("write failed: " + sb.Rel(dst))
	}

	return Success(map[string]interface{}{
		"path":   sb.Rel(src),
		"output": sb.Rel(dst),
		"size":   len(data),
	})
}

// readSource reads the path parameter through the text core.
func (f *FormatsOps) readSource(params map[string]interface{}, sbCtx *types.Context) (sandbox.File, *types.Result) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		res, _ := Failure("path parameter required")
		return sandbox.File{}, res
	}

	sb, err := f.Sandbox(sbCtx)
	if err != nil {
		res, _ := Failure(err.Error())
		return sandbox.File{}, res
	}

	file, err := sb.ReadFile(path)
	if err != nil {
		res, _ := FromError(err)
		return sandbox.File{}, res
	}
	return file, nil
}

// writeEncoded writes serialized content through the text core.
func (f *FormatsOps) writeEncoded(path string, content []byte, sbCtx *types.Context) (*types.Result, error) {
	sb, err := f.Sandbox(sbCtx)
	if err != nil {
		return Failure(err.Error())
	}

	n, err := sb.WriteFile(path, string(content))
	if err != nil {
		return FromError(err)
	}
	return Success(map[string]interface{}{"written": true, "path": path, "size": n})
}

func writeParams(params map[string]interface{}) (string, interface{}, *types.Result) {
	path, ok := params["path"].(string)
	if !ok || path == "" {
		res, _ := Failure("path parameter required")
		return "", nil, res
	}
	data, ok := params["data"]
	if !ok {
		res, _ := Failure("data parameter required")
		return "", nil, res
	}
	return path, data, nil
}
