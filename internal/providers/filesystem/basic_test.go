package filesystem

import (
	"context"
	"testing"

	"github.com/GriffinCanCode/SandboxFS/internal/sandbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	fs, err := sandbox.New(t.TempDir())
	require.NoError(t, err)
	return NewProvider(nil, fs, nil)
}

func TestWriteReadRoundTrip(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	result, err := p.Execute(ctx, "filesystem.write", map[string]interface{}{
		"path":    "/notes/today.txt",
		"content": "hello",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.EqualValues(t, 5, result.Data["size"])

	result, err = p.Execute(ctx, "filesystem.read", map[string]interface{}{
		"path": "/notes/today.txt",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, "hello", result.Data["content"])
	assert.Equal(t, "/notes/today.txt", result.Data["path"])
}

func TestAppendComposesReadAndWrite(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	// Append to a missing file creates it.
	result, err := p.Execute(ctx, "filesystem.append", map[string]interface{}{
		"path":    "/log.txt",
		"content": "one\n",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	result, err = p.Execute(ctx, "filesystem.append", map[string]interface{}{
		"path":    "/log.txt",
		"content": "two\n",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	result, err = p.Execute(ctx, "filesystem.read", map[string]interface{}{
		"path": "/log.txt",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, "one\ntwo\n", result.Data["content"])
}

func TestReadFailureCarriesKindCode(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	result, err := p.Execute(ctx, "filesystem.read", map[string]interface{}{
		"path": "/missing.txt",
	}, nil)
	require.NoError(t, err)
	require.False(t, result.Success)
	require.NotNil(t, result.Error)
	assert.Equal(t, "not_found", result.Data["code"])

	// Traversal outside the root is denied, not surfaced as a real path.
	result, err = p.Execute(ctx, "filesystem.read", map[string]interface{}{
		"path": "../../etc/passwd",
	}, nil)
	require.NoError(t, err)
	require.False(t, result.Success)
	assert.Equal(t, "denied", result.Data["code"])
}

func TestExistsAndDelete(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	result, err := p.Execute(ctx, "filesystem.exists", map[string]interface{}{
		"path": "/data.txt",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, false, result.Data["exists"])

	_, err = p.Execute(ctx, "filesystem.write", map[string]interface{}{
		"path":    "/data.txt",
		"content": "x",
	}, nil)
	require.NoError(t, err)

	result, err = p.Execute(ctx, "filesystem.exists", map[string]interface{}{
		"path": "/data.txt",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, true, result.Data["exists"])

	result, err = p.Execute(ctx, "filesystem.delete", map[string]interface{}{
		"path": "/data.txt",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	result, err = p.Execute(ctx, "filesystem.exists", map[string]interface{}{
		"path": "/data.txt",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, false, result.Data["exists"])
}

func TestMissingParamsFail(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	result, err := p.Execute(ctx, "filesystem.read", map[string]interface{}{}, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)

	result, err = p.Execute(ctx, "filesystem.write", map[string]interface{}{
		"path": "/f.txt",
	}, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestUnknownTool(t *testing.T) {
	p := newTestProvider(t)

	result, err := p.Execute(context.Background(), "filesystem.bogus", map[string]interface{}{}, nil)
	require.NoError(t, err)
	require.False(t, result.Success)
	assert.Contains(t, *result.Error, "unknown tool")
}

func TestDefinitionListsAllTools(t *testing.T) {
	p := newTestProvider(t)

	def := p.Definition()
	assert.Equal(t, "filesystem", def.ID)

	seen := map[string]bool{}
	for _, tool := range def.Tools {
		assert.False(t, seen[tool.ID], "duplicate tool id: %s", tool.ID)
		seen[tool.ID] = true
	}

	for _, id := range []string{
		"filesystem.read",
		"filesystem.dir.tree",
		"filesystem.stat",
		"filesystem.glob",
		"filesystem.json.write",
		"filesystem.gzip.compress",
	} {
		assert.True(t, seen[id], "missing tool id: %s", id)
	}
}
