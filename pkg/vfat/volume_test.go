package vfat_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ostafen/vfat/pkg/vfat"
)

func TestMount_RejectsUnformattedImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.img")
	bd, err := vfat.CreateFileBlockDevice(path, 16) // zero-filled, never formatted
	require.NoError(t, err)
	defer bd.Close()

	_, err = vfat.Mount(bd)
	require.ErrorIs(t, err, vfat.ErrBadFormat)
}

func TestMount_SameDeviceTwiceFails(t *testing.T) {
	path := newImage(t, 16)

	bd, err := vfat.OpenFileBlockDevice(path, false)
	require.NoError(t, err)
	defer bd.Close()

	v, err := vfat.Mount(bd)
	require.NoError(t, err)
	defer v.Unmount()

	_, err = vfat.Mount(bd)
	require.ErrorIs(t, err, vfat.ErrAlreadyMounted)
}

func TestUnmount_FailsWhileHandlesOpen(t *testing.T) {
	v := mountNew(t, 16)
	require.NoError(t, v.Create("a.txt"))

	fd, err := v.Open("a.txt")
	require.NoError(t, err)

	require.ErrorIs(t, v.Unmount(), vfat.ErrBusy)

	require.NoError(t, v.Close(fd))
	require.NoError(t, v.Unmount())
}

func TestUnmount_PersistsState(t *testing.T) {
	path := newImage(t, 16)

	v, err := vfat.MountFile(path)
	require.NoError(t, err)
	require.NoError(t, v.Create("a.txt"))

	fd, err := v.Open("a.txt")
	require.NoError(t, err)
	_, err = v.Write(fd, []byte("persisted"))
	require.NoError(t, err)
	require.NoError(t, v.Close(fd))
	require.NoError(t, v.Unmount())

	v2, err := vfat.MountFile(path)
	require.NoError(t, err)
	defer v2.Unmount()

	entries, err := v2.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "a.txt", entries[0].Name)
	require.EqualValues(t, len("persisted"), entries[0].Size)

	fd2, err := v2.Open("a.txt")
	require.NoError(t, err)
	buf := make([]byte, len("persisted"))
	n, err := v2.Read(fd2, buf)
	require.NoError(t, err)
	require.Equal(t, "persisted", string(buf[:n]))
}

func TestOperations_FailOnUnmountedVolume(t *testing.T) {
	var v *vfat.Volume
	_, err := v.List()
	require.ErrorIs(t, err, vfat.ErrNotMounted)
}
