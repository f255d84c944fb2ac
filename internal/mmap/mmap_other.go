//go:build !unix && !windows

package mmap

import (
	"io"
	"os"
)

// Mmap reads the region into memory on platforms without mmap.
func Mmap(fd *os.File, offset int64, size int64) ([]byte, error) {
	if size <= 0 {
		fi, err := fd.Stat()
		if err != nil {
			return nil, err
		}
		size = fi.Size() - offset
	}
	if size <= 0 {
		return []byte{}, nil
	}
	data := make([]byte, size)
	if _, err := fd.ReadAt(data, offset); err != nil && err != io.EOF {
		return nil, err
	}
	return data, nil
}

func Munmap(b []byte) error {
	return nil
}

func Madvise(b []byte) error {
	return nil
}
