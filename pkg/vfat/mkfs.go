package vfat

import "fmt"

// Format writes a fresh, empty superblock, FAT and root directory onto bd,
// sized to use all of bd.BlockCount() blocks. It picks the smallest
// fat_blk_count in [1,4] whose resulting data_blk_count satisfies the
// superblock invariants from SPEC_FULL.md §3/§4.8. This is deliberately
// the simplest tool that produces a conformant image; disk-image creation
// sophistication is explicitly out of scope for this library (spec.md §1).
func Format(bd BlockDevice) error {
	total := bd.BlockCount()

	fatBlkCount, dataBlkCount, err := chooseLayout(total)
	if err != nil {
		return err
	}

	sb := superblock{
		TotalBlkCount: total,
		RootDirBlk:    1 + uint16(fatBlkCount),
		DataBlk:       2 + uint16(fatBlkCount),
		DataBlkCount:  dataBlkCount,
		FatBlkCount:   fatBlkCount,
	}
	copy(sb.Signature[:], Signature)

	sbBlk, err := sb.marshal()
	if err != nil {
		return err
	}
	if err := bd.WriteBlock(0, &sbBlk); err != nil {
		return fmt.Errorf("%w: writing superblock: %v", ErrIO, err)
	}

	fat := make([]uint16, dataBlkCount)
	fat[0] = FatEOC
	for i, blk := range encodeFAT(fat, fatBlkCount) {
		if err := bd.WriteBlock(uint16(1+i), &blk); err != nil {
			return fmt.Errorf("%w: writing FAT block %d: %v", ErrIO, i, err)
		}
	}

	var dir [MaxFileCount]dirEntry
	dirBlk, err := encodeDirBlock(&dir)
	if err != nil {
		return err
	}
	if err := bd.WriteBlock(sb.RootDirBlk, &dirBlk); err != nil {
		return fmt.Errorf("%w: writing root directory: %v", ErrIO, err)
	}

	return nil
}

// FormatFile creates a new host file of totalBlocks blocks and formats it.
func FormatFile(path string, totalBlocks uint16) error {
	bd, err := CreateFileBlockDevice(path, totalBlocks)
	if err != nil {
		return err
	}
	defer bd.Close()
	return Format(bd)
}

func chooseLayout(total uint16) (fatBlkCount uint8, dataBlkCount uint16, err error) {
	for fbc := uint8(1); fbc <= MaxFatBlocks; fbc++ {
		if int(total) < 2+int(fbc) {
			continue
		}
		data := uint32(total) - 2 - uint32(fbc)
		maxForFat := uint32(fbc) * FatEntriesPerBlock
		minForFat := uint32(fbc-1) * FatEntriesPerBlock
		if data > minForFat && data <= maxForFat && data <= MaxDataBlocks {
			return fbc, uint16(data), nil
		}
	}
	return 0, 0, fmt.Errorf("%w: %d blocks cannot be laid out as a valid volume", ErrBadSize, total)
}
