package local

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOpenRemove(t *testing.T) {
	ctx := context.Background()
	store := New(t.TempDir())

	require.NoError(t, store.Write(ctx, "doc-1", []byte("payload")))
	assert.True(t, store.Exists(ctx, "doc-1"))

	rc, err := store.Open(ctx, "doc-1")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "payload", string(data))

	require.NoError(t, store.Remove(ctx, "doc-1"))
	assert.False(t, store.Exists(ctx, "doc-1"))
	_, err = store.Open(ctx, "doc-1")
	assert.Error(t, err)
}

func TestWriteCreatesBaseDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "uploads")
	store := New(base)

	require.NoError(t, store.Write(context.Background(), "doc-2", []byte("x")))

	if _, err := os.Stat(filepath.Join(base, "doc-2.pdf")); err != nil {
		t.Fatalf("expected blob file on disk: %v", err)
	}
}

func TestRejectsTraversalIDs(t *testing.T) {
	ctx := context.Background()
	store := New(t.TempDir())

	for _, id := range []string{"", "../escape", "a/b", `a\b`} {
		assert.Error(t, store.Write(ctx, id, []byte("x")), "id %q", id)
		assert.False(t, store.Exists(ctx, id), "id %q", id)
	}
}

func TestRemoveMissingBlobFails(t *testing.T) {
	store := New(t.TempDir())
	assert.Error(t, store.Remove(context.Background(), "ghost"))
}
