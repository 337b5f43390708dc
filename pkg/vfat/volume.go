package vfat

import "fmt"

// handle is one entry of the open-file table: a reference to a root
// directory slot plus a byte offset into that file.
type handle struct {
	slot   int
	offset uint32
}

// Volume is the in-memory image of a mounted disk: the superblock, the
// complete FAT, the root-directory block, the open-file table and the
// single bounce buffer used for every read-modify-write. Apart from the
// mountedDevices registry below, there is no process-wide global state
// (see SPEC_FULL.md §9's "globals -> scoped state" note): everything a
// mounted disk needs lives in this one owned value. "Not mounted" is
// either a nil *Volume or a Volume whose closed field Unmount has set;
// every public operation checks this first through ensureMounted.
type Volume struct {
	bd     BlockDevice
	super  superblock
	fat    []uint16
	dir    [MaxFileCount]dirEntry
	handle [MaxOpenCount]*handle
	bounce [BlockSize]byte
	closed bool
}

// mountedDevices tracks which BlockDevice values currently have a live
// Volume over them, so mounting the same device twice fails with
// ErrAlreadyMounted instead of producing two Volumes that silently
// clobber each other's in-memory FAT and directory.
var mountedDevices = map[BlockDevice]struct{}{}

// Mount reads the superblock, FAT and root directory off bd and returns a
// Volume ready to serve Directory/Allocator/I-O operations.
func Mount(bd BlockDevice) (*Volume, error) {
	if _, ok := mountedDevices[bd]; ok {
		return nil, ErrAlreadyMounted
	}

	var sbBuf [BlockSize]byte
	if err := bd.ReadBlock(0, &sbBuf); err != nil {
		return nil, fmt.Errorf("%w: reading superblock: %v", ErrBadDisk, err)
	}

	sb, err := readSuperblock(sbBuf[:])
	if err != nil {
		return nil, err
	}
	if err := sb.validate(bd.BlockCount()); err != nil {
		return nil, err
	}

	fatBlocks := make([][]byte, sb.FatBlkCount)
	for i := 0; i < int(sb.FatBlkCount); i++ {
		var buf [BlockSize]byte
		if err := bd.ReadBlock(uint16(1+i), &buf); err != nil {
			return nil, fmt.Errorf("%w: reading FAT block %d: %v", ErrBadDisk, i, err)
		}
		fatBlocks[i] = append([]byte(nil), buf[:]...)
	}
	fat := decodeFAT(fatBlocks, int(sb.DataBlkCount))

	var dirBuf [BlockSize]byte
	if err := bd.ReadBlock(sb.RootDirBlk, &dirBuf); err != nil {
		return nil, fmt.Errorf("%w: reading root directory: %v", ErrBadDisk, err)
	}
	dir, err := decodeDirBlock(dirBuf[:])
	if err != nil {
		return nil, err
	}

	v := &Volume{
		bd:    bd,
		super: *sb,
		fat:   fat,
		dir:   dir,
	}
	mountedDevices[bd] = struct{}{}
	return v, nil
}

// MountFile is a convenience wrapper mirroring the teacher's fs.Open
// helper: it opens path as a FileBlockDevice and mounts it in one step.
func MountFile(path string) (*Volume, error) {
	bd, err := OpenFileBlockDevice(path, false)
	if err != nil {
		return nil, err
	}
	v, err := Mount(bd)
	if err != nil {
		bd.Close()
		return nil, err
	}
	return v, nil
}

// MountMmapFile is MountFile's mmap-backed counterpart, used when a caller
// wants page-cache-backed I/O instead of pread/pwrite syscalls per block.
func MountMmapFile(path string) (*Volume, error) {
	bd, err := OpenMmapBlockDevice(path)
	if err != nil {
		return nil, err
	}
	v, err := Mount(bd)
	if err != nil {
		bd.Close()
		return nil, err
	}
	return v, nil
}

func (v *Volume) ensureMounted() error {
	if v == nil || v.closed {
		return ErrNotMounted
	}
	return nil
}

func (v *Volume) openHandleCount() int {
	n := 0
	for _, h := range v.handle {
		if h != nil {
			n++
		}
	}
	return n
}

// Unmount flushes the root directory and every FAT block back to the
// block device, in that order, then closes it. Data blocks are never
// cached by this library, so they are already durable.
func (v *Volume) Unmount() error {
	if err := v.ensureMounted(); err != nil {
		return err
	}
	if v.openHandleCount() > 0 {
		return ErrBusy
	}

	dirBlk, err := encodeDirBlock(&v.dir)
	if err != nil {
		return err
	}
	if err := v.bd.WriteBlock(v.super.RootDirBlk, &dirBlk); err != nil {
		return fmt.Errorf("%w: writing root directory: %v", ErrIO, err)
	}

	fatBlocks := encodeFAT(v.fat, v.super.FatBlkCount)
	for i := range fatBlocks {
		if err := v.bd.WriteBlock(uint16(1+i), &fatBlocks[i]); err != nil {
			return fmt.Errorf("%w: writing FAT block %d: %v", ErrIO, i, err)
		}
	}

	delete(mountedDevices, v.bd)
	v.closed = true
	v.bounce = [BlockSize]byte{}
	return v.bd.Close()
}
