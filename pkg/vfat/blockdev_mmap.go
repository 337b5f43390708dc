//go:build !windows
// +build !windows

package vfat

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MmapBlockDevice is a BlockDevice backed by a whole-file shared mapping,
// adapted from internal/mmap/mmap.go: instead of a read-only PROT_READ
// mapping of an arbitrary byte range, it maps the entire disk image
// PROT_READ|PROT_WRITE so that WriteBlock can mutate the mapping directly
// and have the kernel write it back through the page cache.
type MmapBlockDevice struct {
	f          *os.File
	data       []byte
	blockCount uint16
}

// OpenMmapBlockDevice maps the whole of path into memory. Like
// FileBlockDevice, the file's size must be an exact, non-zero multiple of
// BlockSize.
func OpenMmapBlockDevice(path string) (*MmapBlockDevice, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDisk, err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrBadDisk, err)
	}

	size := fi.Size()
	if size == 0 || size%BlockSize != 0 {
		f.Close()
		return nil, fmt.Errorf("%w: file size %d is not a positive multiple of %d", ErrBadDisk, size, BlockSize)
	}

	blocks := size / BlockSize
	if blocks > 0xFFFF {
		f.Close()
		return nil, fmt.Errorf("%w: file has %d blocks", ErrBadDisk, blocks)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: mmap failed: %v", ErrBadDisk, err)
	}

	return &MmapBlockDevice{f: f, data: data, blockCount: uint16(blocks)}, nil
}

func (d *MmapBlockDevice) BlockCount() uint16 { return d.blockCount }

func (d *MmapBlockDevice) region(index uint16) ([]byte, error) {
	if index >= d.blockCount {
		return nil, fmt.Errorf("%w: block index %d out of range", ErrIO, index)
	}
	start := int(index) * BlockSize
	return d.data[start : start+BlockSize], nil
}

func (d *MmapBlockDevice) ReadBlock(index uint16, buf *[BlockSize]byte) error {
	r, err := d.region(index)
	if err != nil {
		return err
	}
	copy(buf[:], r)
	return nil
}

func (d *MmapBlockDevice) WriteBlock(index uint16, buf *[BlockSize]byte) error {
	r, err := d.region(index)
	if err != nil {
		return err
	}
	copy(r, buf[:])
	return nil
}

// Close flushes the mapping back to the file, unmaps it, and closes the
// underlying file descriptor.
func (d *MmapBlockDevice) Close() error {
	if err := unix.Msync(d.data, unix.MS_SYNC); err != nil {
		unix.Munmap(d.data)
		d.f.Close()
		return fmt.Errorf("%w: msync failed: %v", ErrIO, err)
	}
	if err := unix.Munmap(d.data); err != nil {
		d.f.Close()
		return fmt.Errorf("%w: munmap failed: %v", ErrIO, err)
	}
	return d.f.Close()
}
