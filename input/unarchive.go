package input

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4"
	"github.com/pivolan/go_utils"
)

var ErrEmptyArchive = errors.New("archive has no files")

// archiveExtensions are the compressed inputs Open unpacks on the fly.
var archiveExtensions = []string{".gz", ".lz4", ".zip"}

func IsArchive(path string) bool {
	return go_utils.InArray(strings.ToLower(filepath.Ext(path)), archiveExtensions)
}

// Open returns a reader over the file contents, decompressing gzip, lz4 and zip
// archives. For zip the largest file in the archive is read.
func Open(path string) (io.ReadCloser, error) {
	if !IsArchive(path) {
		return os.Open(path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return openZip(path)
	case ".gz":
		return openGzip(path)
	default:
		return openLZ4(path)
	}
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var first error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func openZip(path string) (io.ReadCloser, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}

	var largestFile *zip.File
	var largestSize uint64
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if largestFile == nil || f.UncompressedSize64 > largestSize {
			largestFile = f
			largestSize = f.UncompressedSize64
		}
	}
	if largestFile == nil {
		r.Close()
		return nil, fmt.Errorf("%w: %s", ErrEmptyArchive, path)
	}

	rc, err := largestFile.Open()
	if err != nil {
		r.Close()
		return nil, err
	}
	return &readCloser{Reader: rc, closers: []io.Closer{r, rc}}, nil
}

func openGzip(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	gr, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return &readCloser{Reader: gr, closers: []io.Closer{file, gr}}, nil
}

func openLZ4(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &readCloser{Reader: lz4.NewReader(file), closers: []io.Closer{file}}, nil
}

// ReadAll reads the whole (decompressed) file. A positive limit rejects larger inputs.
func ReadAll(path string, limit int64) ([]byte, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	if limit <= 0 {
		return io.ReadAll(rc)
	}
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(rc, limit+1))
	if err != nil {
		return nil, err
	}
	if n > limit {
		return nil, fmt.Errorf("%s is larger than %d bytes", path, limit)
	}
	return buf.Bytes(), nil
}
