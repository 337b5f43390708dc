package vfat

import "fmt"

// DirEntry is the information List returns about one non-empty root
// directory slot.
type DirEntry struct {
	Name      string
	Size      uint32
	FirstData uint16
}

func validateName(name string) ([]byte, error) {
	b := []byte(name)
	if len(b) < 1 || len(b) > MaxNameLen {
		return nil, fmt.Errorf("%w: name must be 1..%d bytes", ErrBadName, MaxNameLen)
	}
	return b, nil
}

// lookup returns the slot index of name, or -1 if no non-empty slot
// matches.
func (v *Volume) lookup(name string) int {
	for i := range v.dir {
		if !v.dir[i].empty() && v.dir[i].name() == name {
			return i
		}
	}
	return -1
}

// Create adds a new, empty file named name. name must be 1..15 bytes and
// unique among the files already on the volume. No FAT entries are
// consumed until the file is written to.
func (v *Volume) Create(name string) error {
	if err := v.ensureMounted(); err != nil {
		return err
	}
	raw, err := validateName(name)
	if err != nil {
		return err
	}
	if v.lookup(name) >= 0 {
		return fmt.Errorf("%w: %q", ErrExists, name)
	}

	slot := -1
	for i := range v.dir {
		if v.dir[i].empty() {
			slot = i
			break
		}
	}
	if slot < 0 {
		return ErrFull
	}

	v.dir[slot] = dirEntry{}
	v.dir[slot].setName(raw)
	v.dir[slot].FileSize = 0
	v.dir[slot].FirstData = FatEOC
	return nil
}

// Delete removes name, freeing its entire FAT chain. It fails with
// ErrBusy if any handle is currently open on the file.
func (v *Volume) Delete(name string) error {
	if err := v.ensureMounted(); err != nil {
		return err
	}
	slot := v.lookup(name)
	if slot < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	for _, h := range v.handle {
		if h != nil && h.slot == slot {
			return ErrBusy
		}
	}

	if v.dir[slot].FirstData != FatEOC {
		v.freeChain(v.dir[slot].FirstData)
	}
	v.dir[slot] = dirEntry{}
	return nil
}

// List enumerates every non-empty root directory slot, in slot order.
func (v *Volume) List() ([]DirEntry, error) {
	if err := v.ensureMounted(); err != nil {
		return nil, err
	}
	var out []DirEntry
	for i := range v.dir {
		if v.dir[i].empty() {
			continue
		}
		out = append(out, DirEntry{
			Name:      v.dir[i].name(),
			Size:      v.dir[i].FileSize,
			FirstData: v.dir[i].FirstData,
		})
	}
	return out, nil
}
