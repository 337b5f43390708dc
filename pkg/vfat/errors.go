package vfat

import "errors"

// Sentinel errors returned by the library surface. Callers should compare
// against these with errors.Is; operations that fail return one of these,
// either bare or wrapped with additional context via
// fmt.Errorf("...: %w", ErrX).
var (
	ErrNotMounted     = errors.New("vfat: not mounted")
	ErrAlreadyMounted = errors.New("vfat: already mounted")
	ErrBadDisk        = errors.New("vfat: cannot open block device")
	ErrBadFormat      = errors.New("vfat: bad signature")
	ErrBadSize        = errors.New("vfat: block count mismatch")
	ErrBusy           = errors.New("vfat: resource busy")
	ErrBadName        = errors.New("vfat: invalid file name")
	ErrExists         = errors.New("vfat: file already exists")
	ErrFull           = errors.New("vfat: root directory full")
	ErrNotFound       = errors.New("vfat: file not found")
	ErrNoFd           = errors.New("vfat: no free file descriptor")
	ErrBadFd          = errors.New("vfat: invalid file descriptor")
	ErrBadOffset      = errors.New("vfat: offset past end of file")
	ErrBadBuf         = errors.New("vfat: nil buffer")
	ErrNoSpace        = errors.New("vfat: no free block")
	ErrIO             = errors.New("vfat: block device I/O error")
)
