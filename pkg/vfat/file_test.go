package vfat_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ostafen/vfat/pkg/vfat"
)

func TestFile_ImplementsReadWriteSeeker(t *testing.T) {
	v := mountNew(t, 32)
	require.NoError(t, v.Create("a.txt"))

	f, err := v.OpenFile("a.txt")
	require.NoError(t, err)
	defer f.Close()

	n, err := f.Write([]byte("0123456789"))
	require.NoError(t, err)
	require.Equal(t, 10, n)

	off, err := f.Seek(0, io.SeekStart)
	require.NoError(t, err)
	require.EqualValues(t, 0, off)

	buf := make([]byte, 5)
	n, err = io.ReadFull(f, buf)
	require.NoError(t, err)
	require.Equal(t, "01234", string(buf[:n]))

	off, err = f.Seek(-2, io.SeekCurrent)
	require.NoError(t, err)
	require.EqualValues(t, 3, off)

	off, err = f.Seek(0, io.SeekEnd)
	require.NoError(t, err)
	require.EqualValues(t, 10, off)

	_, err = f.Seek(1, io.SeekEnd)
	require.ErrorIs(t, err, vfat.ErrBadOffset)
}

func TestFile_ReadReturnsEOF(t *testing.T) {
	v := mountNew(t, 32)
	require.NoError(t, v.Create("a.txt"))

	f, err := v.OpenFile("a.txt")
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Write([]byte("hi"))
	require.NoError(t, err)
	_, err = f.Seek(0, io.SeekStart)
	require.NoError(t, err)

	buf := make([]byte, 16)
	n, err := io.ReadFull(f, buf)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Equal(t, 2, n)
}
