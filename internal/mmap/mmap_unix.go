//go:build unix

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

// Mmap maps size bytes of fd starting at offset, which must be page
// aligned. A size of zero maps through the end of the file.
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
	data, err := unix.Mmap(int(fd.Fd()), offset, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, os.NewSyscallError("mmap", err)
	}
	return data, nil
}

func Munmap(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Munmap(b)
}

// Madvise hints that b will be read randomly.
func Madvise(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Madvise(b, unix.MADV_RANDOM)
}
