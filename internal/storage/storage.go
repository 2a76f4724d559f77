// Package storage handles reading and writing buffer content on disk,
// and watching the open file for external modification.
package storage

import (
	"fmt"
	"os"
)

// Storage reads and writes whole files. The editor always operates on
// complete buffers; there are no partial writes.
type Storage interface {
	// Read returns the full content of the file at path.
	Read(path string) ([]byte, error)

	// Write replaces the file at path with data.
	Write(path string, data []byte) error
}

// Disk is the Storage implementation backed by the local filesystem.
type Disk struct{}

// NewDisk creates a disk-backed storage.
func NewDisk() *Disk {
	return &Disk{}
}

func (d *Disk) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

func (d *Disk) Write(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
