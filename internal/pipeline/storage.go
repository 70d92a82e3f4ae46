// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import "os"

// Storage abstracts the file operations the pipeline performs so tests
// can substitute fakes and count writes.
type Storage interface {
	// Exists reports whether a file is present at path. A probe error
	// is treated as "not present".
	Exists(path string) bool

	// ReadFile returns the full contents of the file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile creates the file at path with the given contents in a
	// single write.
	WriteFile(path string, data []byte) error
}

// OSStorage is the operating-system backed Storage.
type OSStorage struct{}

func (OSStorage) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OSStorage) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (OSStorage) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
