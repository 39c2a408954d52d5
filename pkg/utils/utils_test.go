package utils

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

var rom = bytes.Repeat([]byte{0x00, 0xC3, 0x50, 0x01}, 0x2000)

func compress(t *testing.T, ext string) []byte {
	t.Helper()
	buf := &bytes.Buffer{}

	var w io.WriteCloser
	var err error
	switch ext {
	case ".gz":
		w = gzip.NewWriter(buf)
	case ".xz":
		w, err = xz.NewWriter(buf)
	case ".zst":
		w, err = zstd.NewWriter(buf)
	case ".lz4":
		w = lz4.NewWriter(buf)
	case ".br":
		w = brotli.NewWriter(buf)
	case ".zip":
		z := zip.NewWriter(buf)
		f, err := z.Create("rom.gb")
		require.NoError(t, err)
		_, err = f.Write(rom)
		require.NoError(t, err)
		require.NoError(t, z.Close())
		return buf.Bytes()
	default:
		return rom
	}
	require.NoError(t, err)

	_, err = w.Write(rom)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	for _, ext := range []string{".gb", ".bin", ".gz", ".xz", ".zst", ".lz4", ".br", ".zip"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(dir, "rom"+ext)
			require.NoError(t, os.WriteFile(path, compress(t, ext), 0o644))

			data, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, rom, data)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.gb"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rom.gz")
	require.NoError(t, os.WriteFile(path, []byte("not gzip"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(0, -4, 11))
	assert.Equal(t, 11, Clamp(0, 40, 11))
	assert.Equal(t, 5, Clamp(0, 5, 11))
	assert.Equal(t, 1.5, Clamp(0.5, 1.5, 2.0))
}
