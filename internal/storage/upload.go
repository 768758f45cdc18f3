package storage

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"

	"github.com/coli-team/coli-web/internal/domain"
)

// ErrTooLarge is returned when an upload exceeds the configured limit.
var ErrTooLarge = errors.New("upload exceeds size limit")

// ReadUpload reads at most maxBytes from r into an Upload. The content type
// is sniffed from the bytes, not trusted from the caller.
func ReadUpload(r io.Reader, filename string, maxBytes int64) (*domain.Upload, error) {
	content, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	if int64(len(content)) > maxBytes {
		return nil, fmt.Errorf("%s: %w (%d bytes)", filename, ErrTooLarge, maxBytes)
	}
	return &domain.Upload{
		Filename:    filepath.Base(filename),
		ContentType: mimetype.Detect(content).String(),
		Content:     content,
	}, nil
}

// OpenUpload reads the file at path on fs as an Upload.
func OpenUpload(fs afero.Fs, path string, maxBytes int64) (*domain.Upload, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadUpload(f, path, maxBytes)
}
