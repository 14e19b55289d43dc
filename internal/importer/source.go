package importer

import (
	"fmt"
	"io"
	"os"
)

// Source is the origin of an import. It is removed after all of its
// transactions have been persisted.
type Source interface {
	Open() (io.ReadCloser, error)
	Remove() error
}

// FileSource is a Source backed by a file on disk.
type FileSource struct {
	Path string
}

func (f FileSource) Open() (io.ReadCloser, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("could not open import file: %w", err)
	}

	return file, nil
}

func (f FileSource) Remove() error {
	err := os.Remove(f.Path)
	if err != nil {
		return fmt.Errorf("could not remove import file: %w", err)
	}

	return nil
}
