// Package loader handles firmware image loading operations.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// FileAccessError indicates that the image file could not be opened or mapped.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("accessing file %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// Image is a read-only firmware image. The embedded reader is positioned at
// the start of the image.
type Image struct {
	*bytes.Reader

	data mmap.MMap
}

// Close releases the memory mapping of the image.
func (img *Image) Close() error {
	if img.data == nil {
		return nil
	}
	if err := img.data.Unmap(); err != nil {
		return fmt.Errorf("unmapping image: %w", err)
	}
	img.data = nil
	return nil
}

// Loader handles loading firmware images from disk.
type Loader struct{}

// New creates a new image loader.
func New() *Loader {
	return &Loader{}
}

// Load maps the given file read-only into memory.
func (l *Loader) Load(path string) (*Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &FileAccessError{Path: path, Err: errors.New("is a directory")}
	}

	// empty files can not be mapped
	if info.Size() == 0 {
		return &Image{Reader: bytes.NewReader(nil)}, nil
	}

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: fmt.Errorf("mapping file: %w", err)}
	}

	return &Image{
		Reader: bytes.NewReader(data),
		data:   data,
	}, nil
}
