package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name string, content []byte) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), name)

	err := os.WriteFile(configPath, content, 0o600)
	require.NoError(t, err)

	return configPath
}

func TestFetcher_Fetch_Success(t *testing.T) {
	t.Parallel()

	content := []byte("behaviors:\n  hotel:\n    attribute: hotel_data\n")
	configPath := writeConfig(t, "behaviors.yaml", content)

	fetcher, err := NewFetcher(configPath)()
	require.NoError(t, err)
	assert.Equal(t, configPath, fetcher.Path())

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestFetcher_Fetch_ReturnsCopy(t *testing.T) {
	t.Parallel()

	configPath := writeConfig(t, "behaviors.json", []byte(`{"a":1}`))

	fetcher, err := NewFetcher(configPath)()
	require.NoError(t, err)

	first, err := fetcher.Fetch()
	require.NoError(t, err)

	first[0] = 'X'

	second, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), second)
}

func TestFetcher_Fetch_ReadOnce(t *testing.T) {
	t.Parallel()

	configPath := writeConfig(t, "behaviors.yaml", []byte("v1"))

	fetcher, err := NewFetcher(configPath)()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(configPath, []byte("v2"), 0o600))

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), data)
}

func TestFetcher_Fetch_EmptyFile(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher(writeConfig(t, "empty.yaml", []byte{}))()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestNewFetcher_FileNotFound(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher("/nonexistent/path/behaviors.yaml")()

	require.Error(t, err)
	assert.Nil(t, fetcher)
	assert.Contains(t, err.Error(), "stat file")
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestNewFetcher_DirectoryPath(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher(t.TempDir())()

	require.ErrorIs(t, err, ErrPathIsDirectory)
	assert.Nil(t, fetcher)
}

func TestNewLimitedFetcher_TooLarge(t *testing.T) {
	t.Parallel()

	configPath := writeConfig(t, "large.yaml", make([]byte, 2048))

	fetcher, err := NewLimitedFetcher(configPath, 1024)()
	require.ErrorIs(t, err, ErrFileTooLarge)
	assert.Nil(t, fetcher)

	fetcher, err = NewLimitedFetcher(configPath, 2048)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Len(t, data, 2048)
}

func TestNewFetcher_CleansPath(t *testing.T) {
	t.Parallel()

	configPath := writeConfig(t, "behaviors.yaml", []byte("a: 1"))
	dirty := filepath.Dir(configPath) + "/./" + filepath.Base(configPath)

	fetcher, err := NewFetcher(dirty)()
	require.NoError(t, err)
	assert.Equal(t, configPath, fetcher.Path())
}
