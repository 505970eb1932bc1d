package sqlitestore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db", "tasks.db")
	s, err := New(path, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	_, found, err := s.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Save(ctx, []byte(`[1]`)))
	require.NoError(t, s.Save(ctx, []byte(`[2]`)))

	data, found, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[2]`, string(data))
}

func TestSlotsAreKeyed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")
	a, err := New(path, "a")
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	require.NoError(t, a.Save(context.Background(), []byte(`[]`)))

	b, err := New(path, "b")
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	_, found, err := b.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")
	s, err := New(path, "")
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), []byte(`["x"]`)))
	require.NoError(t, s.Close())

	s, err = New(path, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	data, found, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `["x"]`, string(data))
}

func TestNewExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := New("~/db/tasks.db", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Save(context.Background(), []byte(`[]`)))

	assert.FileExists(t, filepath.Join(home, "db", "tasks.db"))
}
