// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package vfat implements a small FAT-style filesystem that lives inside a
// single regular host file. It is flat (single directory level), has no
// permissions or timestamps, and offers no concurrency of its own: callers
// that need concurrent access must serialize it externally.
package vfat

// Signature is the exact 8-byte magic stored in the superblock.
const Signature = "ECS150FS"

const (
	// BlockSize is the fixed size, in bytes, of every block on the virtual disk.
	BlockSize = 4096

	// MaxFileCount is the number of slots in the root directory.
	MaxFileCount = 128

	// MaxOpenCount is the number of simultaneously open handles.
	MaxOpenCount = 32

	// FilenameLen is the size, in bytes, of a root-directory name field,
	// including the terminating NUL.
	FilenameLen = 16

	// MaxNameLen is the longest name a caller may pass to Create, excluding
	// the terminating NUL.
	MaxNameLen = FilenameLen - 1

	// FatEntrySize is the on-disk size, in bytes, of one FAT entry.
	FatEntrySize = 2

	// FatEntriesPerBlock is the number of FAT entries packed into one block.
	FatEntriesPerBlock = BlockSize / FatEntrySize

	// DirEntrySize is the on-disk size, in bytes, of one root-directory slot.
	DirEntrySize = 32

	// MaxDataBlocks is the largest data-block count a volume may declare:
	// four FAT blocks times 2048 entries per block.
	MaxDataBlocks = 4 * FatEntriesPerBlock

	// MaxFatBlocks is the largest number of blocks the FAT itself may span.
	MaxFatBlocks = 4
)

// FatFree and FatEOC are the two FAT sentinel values; every other value is
// the index of the next data block in a chain.
const (
	FatFree uint16 = 0x0000
	FatEOC  uint16 = 0xFFFF
)
