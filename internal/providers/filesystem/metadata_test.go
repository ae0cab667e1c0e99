package filesystem

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStat(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	_, err := p.Execute(ctx, "filesystem.write", map[string]interface{}{
		"path":    "/report.txt",
		"content": "hello world",
	}, nil)
	require.NoError(t, err)

	result, err := p.Execute(ctx, "filesystem.stat", map[string]interface{}{
		"path": "/report.txt",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	info, ok := result.Data["info"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "report.txt", info["name"])
	assert.EqualValues(t, 11, info["size"])
	assert.Equal(t, false, info["is_dir"])
}

func TestMimeTypeDetection(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	_, err := p.Execute(ctx, "filesystem.write", map[string]interface{}{
		"path":    "/page.html",
		"content": "<!DOCTYPE html><html><body>hi</body></html>",
	}, nil)
	require.NoError(t, err)

	result, err := p.Execute(ctx, "filesystem.mime_type", map[string]interface{}{
		"path": "/page.html",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Contains(t, result.Data["mime_type"], "text/html")
}

func TestEncodingDetection(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	_, err := p.Execute(ctx, "filesystem.write", map[string]interface{}{
		"path":    "/plain.txt",
		"content": "The quick brown fox jumps over the lazy dog. Pack my box with five dozen liquor jugs.",
	}, nil)
	require.NoError(t, err)

	result, err := p.Execute(ctx, "filesystem.encoding", map[string]interface{}{
		"path": "/plain.txt",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.NotEmpty(t, result.Data["charset"])
}

func TestIsText(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	_, err := p.Execute(ctx, "filesystem.write", map[string]interface{}{
		"path":    "/readme.md",
		"content": "# Title\n\nSome prose.\n",
	}, nil)
	require.NoError(t, err)

	result, err := p.Execute(ctx, "filesystem.is_text", map[string]interface{}{
		"path": "/readme.md",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, true, result.Data["is_text"])
}

func TestMetadataOnMissingFile(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	for _, toolID := range []string{"filesystem.stat", "filesystem.mime_type", "filesystem.is_text"} {
		result, err := p.Execute(ctx, toolID, map[string]interface{}{
			"path": "/nope.bin",
		}, nil)
		require.NoError(t, err)
		assert.False(t, result.Success, toolID)
	}
}
