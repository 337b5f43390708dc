package vfat

import (
	"fmt"
	"os"
)

// FileBlockDevice is a BlockDevice backed by a plain host file opened with
// os.OpenFile, pread/pwrite-ing one BlockSize slice per call. It plays the
// role the teacher's internal/disk.DiskInfo plays for a raw device
// (ReadAt/WriteAt gated on the access mode the file was opened with), here
// specialized to the fixed block granularity this filesystem requires.
type FileBlockDevice struct {
	f          *os.File
	blockCount uint16
	readOnly   bool
}

// OpenFileBlockDevice opens path as a block device. The file's size must be
// an exact, non-zero multiple of BlockSize and at most 0xFFFF blocks (the
// largest count BlockCount can report).
func OpenFileBlockDevice(path string, readOnly bool) (*FileBlockDevice, error) {
	flag := os.O_RDWR
	if readOnly {
		flag = os.O_RDONLY
	}

	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDisk, err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrBadDisk, err)
	}

	if fi.Size()%BlockSize != 0 {
		f.Close()
		return nil, fmt.Errorf("%w: file size %d is not a multiple of %d", ErrBadDisk, fi.Size(), BlockSize)
	}

	blocks := fi.Size() / BlockSize
	if blocks <= 0 || blocks > 0xFFFF {
		f.Close()
		return nil, fmt.Errorf("%w: file has %d blocks", ErrBadDisk, blocks)
	}

	return &FileBlockDevice{f: f, blockCount: uint16(blocks), readOnly: readOnly}, nil
}

// CreateFileBlockDevice creates a new host file of exactly blockCount
// blocks, zero-filled, and returns it opened for read-write. It is the
// thin disk-image-creation helper described in SPEC_FULL.md §4.8; the
// library's core never calls it on its own.
func CreateFileBlockDevice(path string, blockCount uint16) (*FileBlockDevice, error) {
	if blockCount == 0 {
		return nil, fmt.Errorf("%w: zero blocks requested", ErrBadDisk)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDisk, err)
	}

	if err := f.Truncate(int64(blockCount) * BlockSize); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrBadDisk, err)
	}

	return &FileBlockDevice{f: f, blockCount: blockCount}, nil
}

func (d *FileBlockDevice) BlockCount() uint16 { return d.blockCount }

func (d *FileBlockDevice) ReadBlock(index uint16, buf *[BlockSize]byte) error {
	if index >= d.blockCount {
		return fmt.Errorf("%w: block index %d out of range", ErrIO, index)
	}
	_, err := d.f.ReadAt(buf[:], int64(index)*BlockSize)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

func (d *FileBlockDevice) WriteBlock(index uint16, buf *[BlockSize]byte) error {
	if d.readOnly {
		return fmt.Errorf("%w: device opened read-only", ErrIO)
	}
	if index >= d.blockCount {
		return fmt.Errorf("%w: block index %d out of range", ErrIO, index)
	}
	_, err := d.f.WriteAt(buf[:], int64(index)*BlockSize)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

func (d *FileBlockDevice) Close() error {
	return d.f.Close()
}
