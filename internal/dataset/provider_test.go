package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_Memoizes(t *testing.T) {
	path := writeCSV(t, "DATE,TG\n2020-01-01,5\n2020-01-02,6\n")
	p := NewProvider(LoadOptions{Path: path})

	first, err := p.Table()
	require.NoError(t, err)
	second, err := p.Table()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestProvider_ReloadsOnFileChange(t *testing.T) {
	path := writeCSV(t, "DATE,TG\n2020-01-01,5\n")
	p := NewProvider(LoadOptions{Path: path})

	first, err := p.Table()
	require.NoError(t, err)
	assert.Equal(t, 1, first.RowsLoaded)

	require.NoError(t, os.WriteFile(path, []byte("DATE,TG\n2020-01-01,5\n2020-01-02,6\n"), 0o644))
	// Coarse mtime resolution on some filesystems can hide a same-instant
	// rewrite; force a distinct timestamp.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	second, err := p.Table()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, 2, second.RowsLoaded)
}

func TestProvider_MissingFile(t *testing.T) {
	p := NewProvider(LoadOptions{Path: filepath.Join(t.TempDir(), "absent.csv")})

	_, err := p.Table()
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrSourceNotFound))
}

func TestProvider_ErrorDoesNotPoisonCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "late.csv")
	p := NewProvider(LoadOptions{Path: path})

	_, err := p.Table()
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("DATE,TG\n2020-01-01,5\n"), 0o644))
	table, err := p.Table()
	require.NoError(t, err)
	assert.Equal(t, 1, table.RowsLoaded)
}
