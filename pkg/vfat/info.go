package vfat

import "fmt"

// Stats is the informational surface spec'd in SPEC_FULL.md §4.6: enough
// to compute the FAT and root-directory free ratios without exposing the
// raw FAT or directory arrays.
type Stats struct {
	TotalBlocks      uint16
	FatBlocks        uint8
	RootDirBlock     uint16
	DataBlock        uint16
	DataBlockCount   uint16
	FatFreeCount     int
	RootDirFreeCount int
}

// FatFreeRatio returns the number of free FAT entries in [1, data_blk_count)
// together with the total entry count, data_blk_count (entry 0 included).
func (s Stats) FatFreeRatio() (free, total int) {
	return s.FatFreeCount, int(s.DataBlockCount)
}

// RootDirFreeRatio returns the fraction of root-directory slots that are
// empty.
func (s Stats) RootDirFreeRatio() (free, total int) {
	return s.RootDirFreeCount, MaxFileCount
}

func (s Stats) String() string {
	fatFree, fatTotal := s.FatFreeRatio()
	dirFree, dirTotal := s.RootDirFreeRatio()
	return fmt.Sprintf(
		"total_blk_count=%d\nfat_blk_count=%d\nrdir_blk=%d\ndata_blk=%d\ndata_blk_count=%d\nfat_free_ratio=%d/%d\nrdir_free_ratio=%d/%d",
		s.TotalBlocks, s.FatBlocks, s.RootDirBlock, s.DataBlock, s.DataBlockCount,
		fatFree, fatTotal, dirFree, dirTotal,
	)
}

// Info reports the volume's layout and current free-space ratios.
func (v *Volume) Info() (Stats, error) {
	if err := v.ensureMounted(); err != nil {
		return Stats{}, err
	}

	dirFree := 0
	for i := range v.dir {
		if v.dir[i].empty() {
			dirFree++
		}
	}

	return Stats{
		TotalBlocks:      v.super.TotalBlkCount,
		FatBlocks:        v.super.FatBlkCount,
		RootDirBlock:     v.super.RootDirBlk,
		DataBlock:        v.super.DataBlk,
		DataBlockCount:   v.super.DataBlkCount,
		FatFreeCount:     v.freeCount(),
		RootDirFreeCount: dirFree,
	}, nil
}
