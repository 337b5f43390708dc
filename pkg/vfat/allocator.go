package vfat

// The allocator owns the FAT: a flat array mapping data-block index to the
// next data-block index in its chain, or FatEOC. Entries are only ever
// modified by walk/extend/start/freeChain in this file (the I/O engine
// reads v.fat to follow links, and Mount/Unmount load and store it whole),
// so the chain-vs-cycle invariants in SPEC_FULL.md §8 only need to be
// reasoned about here.

// walk returns the FAT index reached after following k links from head, or
// FatEOC if the chain ends sooner.
func (v *Volume) walk(head uint16, k int) uint16 {
	cur := head
	for i := 0; i < k && cur != FatEOC; i++ {
		cur = v.fat[cur]
	}
	return cur
}

// firstFreeEntry returns the lowest-indexed free FAT entry in [1, len(fat)),
// or -1 if none is free. Index 0 is reserved and never considered.
func (v *Volume) firstFreeEntry() int {
	for i := 1; i < len(v.fat); i++ {
		if v.fat[i] == FatFree {
			return i
		}
	}
	return -1
}

// extend allocates a new block and appends it to the chain after prev,
// returning the new block's index.
func (v *Volume) extend(prev uint16) (uint16, error) {
	idx := v.firstFreeEntry()
	if idx < 0 {
		return 0, ErrNoSpace
	}
	v.fat[idx] = FatEOC
	v.fat[prev] = uint16(idx)
	return uint16(idx), nil
}

// start allocates the first block of a brand-new chain, for a file whose
// head is currently FatEOC.
func (v *Volume) start() (uint16, error) {
	idx := v.firstFreeEntry()
	if idx < 0 {
		return 0, ErrNoSpace
	}
	v.fat[idx] = FatEOC
	return uint16(idx), nil
}

// freeChain walks the chain starting at head, zeroing every entry it
// visits, noting each next index before the entry that points to it is
// overwritten.
func (v *Volume) freeChain(head uint16) {
	cur := head
	for cur != FatEOC {
		next := v.fat[cur]
		v.fat[cur] = FatFree
		cur = next
	}
}

// freeCount returns the number of free FAT entries in [1, data_blk_count).
func (v *Volume) freeCount() int {
	n := 0
	for i := 1; i < len(v.fat); i++ {
		if v.fat[i] == FatFree {
			n++
		}
	}
	return n
}
