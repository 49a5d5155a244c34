// Package romload loads cartridge ROM bytes from disk, transparently
// decompressing .zip, .gz, and .7z archives.
package romload

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// Load reads filename and, based on its extension, decompresses it
// before returning the raw cartridge bytes. Plain .gb/.gbc files (and
// anything with an extension this package doesn't recognize) are
// returned as-is.
func Load(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("romload: open %s: %w", filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("romload: read %s: %w", filename, err)
	}

	switch filepath.Ext(filename) {
	case ".gz":
		return decompressGzip(data, filename)
	case ".zip":
		return decompressZip(data, filename)
	case ".7z":
		return decompressSevenZip(data, filename)
	default:
		return data, nil
	}
}

func decompressGzip(data []byte, filename string) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("romload: gzip %s: %w", filename, err)
	}
	defer r.Close()
	return io.ReadAll(r)
}

// decompressZip reads the first file stored in the archive, matching
// how real-world GB ROM archives are packaged (one ROM per archive).
func decompressZip(data []byte, filename string) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("romload: zip %s: %w", filename, err)
	}
	if len(r.File) == 0 {
		return nil, fmt.Errorf("romload: zip %s: archive is empty", filename)
	}
	entry, err := r.File[0].Open()
	if err != nil {
		return nil, fmt.Errorf("romload: zip %s: %w", filename, err)
	}
	defer entry.Close()
	return io.ReadAll(entry)
}

func decompressSevenZip(data []byte, filename string) ([]byte, error) {
	r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("romload: 7z %s: %w", filename, err)
	}
	if len(r.File) == 0 {
		return nil, fmt.Errorf("romload: 7z %s: archive is empty", filename)
	}
	entry, err := r.File[0].Open()
	if err != nil {
		return nil, fmt.Errorf("romload: 7z %s: %w", filename, err)
	}
	defer entry.Close()
	return io.ReadAll(entry)
}
