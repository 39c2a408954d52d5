package utils

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// LoadFile loads the given file and performs decompression if necessary.
// The compression is asserted from the file extension; archives (.zip,
// .7z) yield their first file. Any other extension is returned as is.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", filename, err)
	}

	data, err = Decompress(strings.ToLower(filepath.Ext(filename)), data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", filename, err)
	}
	return data, nil
}

// Decompress decompresses data according to the file extension ext.
func Decompress(ext string, data []byte) ([]byte, error) {
	var decoder io.Reader
	var err error

	switch ext {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
	case ".xz":
		decoder, err = xz.NewReader(bytes.NewReader(data))
	case ".zst":
		var d *zstd.Decoder
		d, err = zstd.NewReader(bytes.NewReader(data))
		if err == nil {
			defer d.Close()
			decoder = d
		}
	case ".lz4":
		decoder = lz4.NewReader(bytes.NewReader(data))
	case ".br":
		decoder = brotli.NewReader(bytes.NewReader(data))
	case ".zip":
		zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(zipReader.File) == 0 {
			return nil, fmt.Errorf("empty zip archive")
		}

		// read the first file in the zip file
		return readAll(zipReader.File[0].Open())
	case ".7z":
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(r.File) == 0 {
			return nil, fmt.Errorf("empty 7z archive")
		}

		// read the first file in the archive
		return readAll(r.File[0].Open())
	default:
		// return the data as is
		return data, nil
	}

	if err != nil {
		return nil, err
	}
	return io.ReadAll(decoder)
}

func readAll(rc io.ReadCloser, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
