package vfat

import (
	"fmt"
	"io"
)

// File adapts one open handle to the standard io.Reader/io.Writer/io.Seeker
// interfaces, so callers can hand a virtual file to anything that accepts
// those (bufio, io.Copy, pkg/reader's BufferedReadSeeker, ...) instead of
// calling Volume.Read/Write/Lseek by file descriptor number directly.
type File struct {
	v  *Volume
	fd int
}

// OpenFile opens name on v and wraps the resulting handle as a File.
func (v *Volume) OpenFile(name string) (*File, error) {
	fd, err := v.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{v: v, fd: fd}, nil
}

func (f *File) Read(p []byte) (int, error) {
	n, err := f.v.Read(f.fd, p)
	if err != nil {
		return n, err
	}
	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return n, nil
}

func (f *File) Write(p []byte) (int, error) {
	return f.v.Write(f.fd, p)
}

// Seek implements io.Seeker. The file's size is fetched via Stat for every
// whence; io.SeekEnd is resolved against it, and any target outside
// [0, size] fails with ErrBadOffset.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	size, err := f.v.Stat(f.fd)
	if err != nil {
		return 0, err
	}

	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		cur, err := f.v.handleOffset(f.fd)
		if err != nil {
			return 0, err
		}
		target = int64(cur) + offset
	case io.SeekEnd:
		target = int64(size) + offset
	default:
		return 0, fmt.Errorf("vfat: invalid whence %d", whence)
	}

	if target < 0 || target > int64(size) {
		return 0, ErrBadOffset
	}
	if err := f.v.Lseek(f.fd, uint32(target)); err != nil {
		return 0, err
	}
	return target, nil
}

func (f *File) Stat() (uint32, error) {
	return f.v.Stat(f.fd)
}

func (f *File) Close() error {
	return f.v.Close(f.fd)
}

// handleOffset exposes the current offset of fd without advancing it.
func (v *Volume) handleOffset(fd int) (uint32, error) {
	h, err := v.fdHandle(fd)
	if err != nil {
		return 0, err
	}
	return h.offset, nil
}
