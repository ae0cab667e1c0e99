package filesystem

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONWriteRead(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	result, err := p.Execute(ctx, "filesystem.json.write", map[string]interface{}{
		"path": "/config.json",
		"data": map[string]interface{}{
			"name":    "demo",
			"retries": 3,
		},
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	result, err = p.Execute(ctx, "filesystem.json.read", map[string]interface{}{
		"path": "/config.json",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	data, ok := result.Data["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "demo", data["name"])
	assert.EqualValues(t, 3, data["retries"])
}

func TestJSONReadInvalid(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	_, err := p.Execute(ctx, "filesystem.write", map[string]interface{}{
		"path":    "/broken.json",
		"content": "{not json",
	}, nil)
	require.NoError(t, err)

	result, err := p.Execute(ctx, "filesystem.json.read", map[string]interface{}{
		"path": "/broken.json",
	}, nil)
	require.NoError(t, err)
	require.False(t, result.Success)
	assert.Contains(t, *result.Error, "invalid JSON")
}

func TestYAMLWriteRead(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	result, err := p.Execute(ctx, "filesystem.yaml.write", map[string]interface{}{
		"path": "/config.yaml",
		"data": map[string]interface{}{
			"host": "localhost",
			"port": 8000,
		},
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	result, err = p.Execute(ctx, "filesystem.yaml.read", map[string]interface{}{
		"path": "/config.yaml",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	data, ok := result.Data["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "localhost", data["host"])
}

func TestTOMLWriteRead(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	result, err := p.Execute(ctx, "filesystem.toml.write", map[string]interface{}{
		"path": "/config.toml",
		"data": map[string]interface{}{
			"title": "example",
		},
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	result, err = p.Execute(ctx, "filesystem.toml.read", map[string]interface{}{
		"path": "/config.toml",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	data, ok := result.Data["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "example", data["title"])
}

func TestGzipRoundTrip(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	original := "repetitive content repetitive content repetitive content"
	_, err := p.Execute(ctx, "filesystem.write", map[string]interface{}{
		"path":    "/data.txt",
		"content": original,
	}, nil)
	require.NoError(t, err)

	result, err := p.Execute(ctx, "filesystem.gzip.compress", map[string]interface{}{
		"path": "/data.txt",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, "/data.txt.gz", result.Data["output"])
	assert.EqualValues(t, len(original), result.Data["original_size"])

	result, err = p.Execute(ctx, "filesystem.gzip.decompress", map[string]interface{}{
		"path":   "/data.txt.gz",
		"output": "/restored.txt",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	result, err = p.Execute(ctx, "filesystem.read", map[string]interface{}{
		"path": "/restored.txt",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, original, result.Data["content"])
}

func TestFormatWritesStayContained(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	result, err := p.Execute(ctx, "filesystem.json.write", map[string]interface{}{
		"path": "../escape.json",
		"data": map[string]interface{}{"x": 1},
	}, nil)
	require.NoError(t, err)
	require.False(t, result.Success)
	assert.Equal(t, "denied", result.Data["code"])
}
