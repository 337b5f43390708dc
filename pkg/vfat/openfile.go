package vfat

import "fmt"

// Open returns a new handle on name with its offset at 0. The same file
// may be opened more than once; each call yields an independent handle
// with its own offset.
func (v *Volume) Open(name string) (int, error) {
	if err := v.ensureMounted(); err != nil {
		return -1, err
	}
	slot := v.lookup(name)
	if slot < 0 {
		return -1, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	for fd := range v.handle {
		if v.handle[fd] == nil {
			v.handle[fd] = &handle{slot: slot, offset: 0}
			return fd, nil
		}
	}
	return -1, ErrNoFd
}

func (v *Volume) fdHandle(fd int) (*handle, error) {
	if fd < 0 || fd >= MaxOpenCount || v.handle[fd] == nil {
		return nil, ErrBadFd
	}
	return v.handle[fd], nil
}

// Close releases fd. Its offset and slot reference are discarded.
func (v *Volume) Close(fd int) error {
	if err := v.ensureMounted(); err != nil {
		return err
	}
	if _, err := v.fdHandle(fd); err != nil {
		return err
	}
	v.handle[fd] = nil
	return nil
}

// Stat returns the current size, in bytes, of the file referenced by fd.
func (v *Volume) Stat(fd int) (uint32, error) {
	if err := v.ensureMounted(); err != nil {
		return 0, err
	}
	h, err := v.fdHandle(fd)
	if err != nil {
		return 0, err
	}
	return v.dir[h.slot].FileSize, nil
}

// Lseek repositions fd's offset. offset must not exceed the file's
// current size; growing the file (to then lseek further) is done through
// Write, not Lseek.
func (v *Volume) Lseek(fd int, offset uint32) error {
	if err := v.ensureMounted(); err != nil {
		return err
	}
	h, err := v.fdHandle(fd)
	if err != nil {
		return err
	}
	if offset > v.dir[h.slot].FileSize {
		return ErrBadOffset
	}
	h.offset = offset
	return nil
}
