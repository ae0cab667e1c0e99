package filesystem

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSearchTree(t *testing.T, p *Provider) {
	t.Helper()
	ctx := context.Background()
	for path, content := range map[string]string{
		"/main.go":          "package main",
		"/pkg/util.go":      "package pkg",
		"/pkg/util_test.go": "package pkg",
		"/docs/guide.md":    "# Guide",
	} {
		_, err := p.Execute(ctx, "filesystem.write", map[string]interface{}{
			"path":    path,
			"content": content,
		}, nil)
		require.NoError(t, err)
	}
}

func TestFindByName(t *testing.T) {
	p := newTestProvider(t)
	seedSearchTree(t, p)

	result, err := p.Execute(context.Background(), "filesystem.find", map[string]interface{}{
		"path":    "/",
		"pattern": "*.go",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	matches, ok := result.Data["matches"].([]string)
	require.True(t, ok)
	assert.Len(t, matches, 3)
	assert.Contains(t, matches, "main.go")
	assert.Contains(t, matches, "pkg/util.go")
}

func TestGlobRecursive(t *testing.T) {
	p := newTestProvider(t)
	seedSearchTree(t, p)

	result, err := p.Execute(context.Background(), "filesystem.glob", map[string]interface{}{
		"path":    "/",
		"pattern": "**/*.md",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	matches, ok := result.Data["matches"].([]string)
	require.True(t, ok)
	assert.Equal(t, []string{"docs/guide.md"}, matches)
}

func TestGlobRejectsTraversalPattern(t *testing.T) {
	p := newTestProvider(t)

	result, err := p.Execute(context.Background(), "filesystem.glob", map[string]interface{}{
		"path":    "/",
		"pattern": "../**/*",
	}, nil)
	require.NoError(t, err)
	require.False(t, result.Success)
	assert.Contains(t, *result.Error, "..")
}

func TestSearchOutsideRootDenied(t *testing.T) {
	p := newTestProvider(t)

	result, err := p.Execute(context.Background(), "filesystem.find", map[string]interface{}{
		"path":    "../..",
		"pattern": "*",
	}, nil)
	require.NoError(t, err)
	require.False(t, result.Success)
	assert.Equal(t, "denied", result.Data["code"])
}
