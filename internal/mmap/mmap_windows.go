//go:build windows

package mmap

import (
	"os"
	"syscall"
	"unsafe"
)

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

	maxsize := size + offset
	maxsizehi := uint32(maxsize >> 32)
	maxsizelo := uint32(maxsize & 0xffffffff)

	handle, err := syscall.CreateFileMapping(syscall.Handle(fd.Fd()), nil,
		syscall.PAGE_READONLY, maxsizehi, maxsizelo, nil)
	if err != nil {
		return nil, os.NewSyscallError("CreateFileMapping", err)
	}

	offsethi := uint32(offset >> 32)
	offsetlo := uint32(offset & 0xffffffff)
	addr, err := syscall.MapViewOfFile(handle, syscall.FILE_MAP_READ, offsethi, offsetlo, uintptr(size))
	if addr == 0 {
		return nil, os.NewSyscallError("MapViewOfFile", err)
	}

	if err := syscall.CloseHandle(handle); err != nil {
		return nil, os.NewSyscallError("CloseHandle", err)
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), int(size)), nil
}

func Munmap(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return syscall.UnmapViewOfFile(uintptr(unsafe.Pointer(&b[0])))
}

// Madvise does nothing on Windows.
func Madvise(b []byte) error {
	return nil
}
