package vfat_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ostafen/vfat/pkg/vfat"
)

func newImage(t *testing.T, blocks uint16) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "disk.img")
	require.NoError(t, vfat.FormatFile(path, blocks))
	return path
}

func TestFormat_LayoutMatchesWorkedExample(t *testing.T) {
	path := newImage(t, 8198)

	v, err := vfat.MountFile(path)
	require.NoError(t, err)
	defer v.Unmount()

	stats, err := v.Info()
	require.NoError(t, err)

	require.EqualValues(t, 8198, stats.TotalBlocks)
	require.EqualValues(t, 4, stats.FatBlocks)
	require.EqualValues(t, 5, stats.RootDirBlock)
	require.EqualValues(t, 6, stats.DataBlock)
	require.EqualValues(t, 8192, stats.DataBlockCount)

	free, total := stats.FatFreeRatio()
	require.Equal(t, 8191, free) // index 0 is reserved, never free
	require.Equal(t, 8192, total)

	dirFree, dirTotal := stats.RootDirFreeRatio()
	require.Equal(t, vfat.MaxFileCount, dirFree)
	require.Equal(t, vfat.MaxFileCount, dirTotal)
}

func TestFormat_RejectsSizesThatCannotBeLaidOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "disk.img")
	err := vfat.FormatFile(path, 1)
	require.Error(t, err)
}

func TestFormat_SmallestValidVolume(t *testing.T) {
	// 3 blocks: superblock + 1 FAT block + root dir leaves 0 data blocks,
	// which chooseLayout must reject since data must be > 0.
	path := filepath.Join(t.TempDir(), "tiny.img")
	err := vfat.FormatFile(path, 3)
	require.Error(t, err)

	path2 := filepath.Join(t.TempDir(), "tiny2.img")
	require.NoError(t, vfat.FormatFile(path2, 4))

	v, err := vfat.MountFile(path2)
	require.NoError(t, err)
	defer v.Unmount()

	stats, err := v.Info()
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.DataBlockCount)
}
