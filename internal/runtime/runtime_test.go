package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noamashri/workhours/internal/output"
)

func TestNewInMemory(t *testing.T) {
	ctx, err := New(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { ctx.Close() })

	assert.NotNil(t, ctx.DB)
	assert.NotNil(t, ctx.Entries)
	assert.NotNil(t, ctx.Theme)
	assert.NotNil(t, ctx.Formatter)
}

func TestEnvOverrideMemory(t *testing.T) {
	t.Setenv("WORKHOURS_DATABASE", ":memory:")

	ctx, err := New(DefaultOptions())
	require.NoError(t, err)
	t.Cleanup(func() { ctx.Close() })

	assert.Equal(t, "", ctx.DB.Path())
}

func TestEnvOverridePath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WORKHOURS_DATABASE", dir)

	ctx, err := New(DefaultOptions())
	require.NoError(t, err)
	t.Cleanup(func() { ctx.Close() })

	assert.Equal(t, dir, ctx.DB.Path())
}

func TestIsJSON(t *testing.T) {
	ctx, err := New(Options{InMemory: true, Format: output.FormatJSON})
	require.NoError(t, err)
	t.Cleanup(func() { ctx.Close() })

	assert.True(t, ctx.IsJSON())
	assert.NotNil(t, ctx.JSONFormatter())
	assert.NotNil(t, ctx.CLIFormatter())
}
