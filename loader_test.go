package pairdiff

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoaderReusesParsedDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1.txt")
	require.Nil(t, os.WriteFile(path, []byte("1 2\n3 4\n"), 0644))

	loader, err := NewLoader(0)
	require.Nil(t, err)

	first, err := loader.Load(path)
	require.Nil(t, err)
	require.EqualValues(t, 2, first.Rows())

	// rewrite the file, the cached dataset must still be served
	require.Nil(t, os.WriteFile(path, []byte("5 6\n"), 0644))
	second, err := loader.Load(path)
	require.Nil(t, err)
	require.Same(t, first, second)
}

func TestLoaderDoesNotCacheFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1.txt")

	loader, err := NewLoader(0)
	require.Nil(t, err)

	_, err = loader.Load(path)
	require.NotNil(t, err)

	// once the file exists the same loader picks it up
	require.Nil(t, os.WriteFile(path, []byte("1 2\n"), 0644))
	ds, err := loader.Load(path)
	require.Nil(t, err)
	require.EqualValues(t, 1, ds.Rows())
}
