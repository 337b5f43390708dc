package vfat_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ostafen/vfat/pkg/vfat"
)

func mountNew(t *testing.T, blocks uint16) *vfat.Volume {
	t.Helper()
	path := newImage(t, blocks)
	v, err := vfat.MountFile(path)
	require.NoError(t, err)
	t.Cleanup(func() { v.Unmount() })
	return v
}

func TestCreate_RejectsDuplicateAndBadNames(t *testing.T) {
	v := mountNew(t, 16)

	require.NoError(t, v.Create("a.txt"))
	require.ErrorIs(t, v.Create("a.txt"), vfat.ErrExists)
	require.ErrorIs(t, v.Create(""), vfat.ErrBadName)

	longName := ""
	for i := 0; i < vfat.MaxNameLen+1; i++ {
		longName += "x"
	}
	require.ErrorIs(t, v.Create(longName), vfat.ErrBadName)
}

func TestCreate_FillsRootDirectory(t *testing.T) {
	v := mountNew(t, 16)

	for i := 0; i < vfat.MaxFileCount; i++ {
		require.NoError(t, v.Create(fmt.Sprintf("f%d", i)))
	}
	require.ErrorIs(t, v.Create("overflow"), vfat.ErrFull)
}

func TestDelete_FreesChainAndRejectsBusy(t *testing.T) {
	v := mountNew(t, 16)
	require.NoError(t, v.Create("a.txt"))

	fd, err := v.Open("a.txt")
	require.NoError(t, err)

	// 16 blocks -> data_blk_count=13, 12 usable; a 4097-byte write takes 2.
	_, err = v.Write(fd, make([]byte, vfat.BlockSize+1))
	require.NoError(t, err)
	stats, err := v.Info()
	require.NoError(t, err)
	require.Equal(t, 10, stats.FatFreeCount)

	require.ErrorIs(t, v.Delete("a.txt"), vfat.ErrBusy)

	require.NoError(t, v.Close(fd))
	require.NoError(t, v.Delete("a.txt"))

	stats, err = v.Info()
	require.NoError(t, err)
	require.Equal(t, 12, stats.FatFreeCount)

	_, err = v.Open("a.txt")
	require.True(t, errors.Is(err, vfat.ErrNotFound))
}

func TestList_ReflectsCreatesAndDeletes(t *testing.T) {
	v := mountNew(t, 16)

	entries, err := v.List()
	require.NoError(t, err)
	require.Empty(t, entries)

	require.NoError(t, v.Create("a.txt"))
	require.NoError(t, v.Create("b.txt"))

	entries, err = v.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.NoError(t, v.Delete("a.txt"))
	entries, err = v.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "b.txt", entries[0].Name)
}
