package vfat_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ostafen/vfat/pkg/vfat"
)

func TestWriteRead_Roundtrip(t *testing.T) {
	v := mountNew(t, 32)
	require.NoError(t, v.Create("a.txt"))

	fd, err := v.Open("a.txt")
	require.NoError(t, err)

	payload := bytes.Repeat([]byte("vfat"), 3000) // spans several blocks
	n, err := v.Write(fd, payload)
	require.NoError(t, err)
	require.Equal(t, len(payload), n)

	size, err := v.Stat(fd)
	require.NoError(t, err)
	require.EqualValues(t, len(payload), size)

	require.NoError(t, v.Lseek(fd, 0))
	out := make([]byte, len(payload))
	n, err = v.Read(fd, out)
	require.NoError(t, err)
	require.Equal(t, len(payload), n)
	require.Equal(t, payload, out)

	require.NoError(t, v.Close(fd))
}

func TestRead_ShortAtEOF(t *testing.T) {
	v := mountNew(t, 32)
	require.NoError(t, v.Create("a.txt"))

	fd, err := v.Open("a.txt")
	require.NoError(t, err)

	n, err := v.Write(fd, []byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	require.NoError(t, v.Lseek(fd, 0))
	buf := make([]byte, 10)
	n, err = v.Read(fd, buf)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "hello", string(buf[:n]))

	require.NoError(t, v.Lseek(fd, 5))
	n, err = v.Read(fd, buf)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestLseek_PastSizeFails(t *testing.T) {
	v := mountNew(t, 32)
	require.NoError(t, v.Create("a.txt"))

	fd, err := v.Open("a.txt")
	require.NoError(t, err)

	_, err = v.Write(fd, []byte("hi"))
	require.NoError(t, err)

	require.NoError(t, v.Lseek(fd, 2)) // exactly at size: allowed
	require.ErrorIs(t, v.Lseek(fd, 3), vfat.ErrBadOffset)
}

func TestWrite_NilBufferIsBadBuf(t *testing.T) {
	v := mountNew(t, 32)
	require.NoError(t, v.Create("a.txt"))

	fd, err := v.Open("a.txt")
	require.NoError(t, err)

	_, err = v.Write(fd, nil)
	require.ErrorIs(t, err, vfat.ErrBadBuf)

	_, err = v.Read(fd, nil)
	require.ErrorIs(t, err, vfat.ErrBadBuf)
}

func TestWrite_EmptyBufferIsNotAnError(t *testing.T) {
	v := mountNew(t, 32)
	require.NoError(t, v.Create("a.txt"))

	fd, err := v.Open("a.txt")
	require.NoError(t, err)

	n, err := v.Write(fd, []byte{})
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestWrite_FillsFATAndReportsShortWrite(t *testing.T) {
	// 5 blocks -> chooseLayout picks fat_blk_count=1, data_blk_count=2.
	// Index 0 is reserved, so exactly one data block is actually usable.
	v := mountNew(t, 5)
	require.NoError(t, v.Create("a.txt"))

	fd, err := v.Open("a.txt")
	require.NoError(t, err)

	payload := bytes.Repeat([]byte("x"), vfat.BlockSize*2)
	n, err := v.Write(fd, payload)
	require.NoError(t, err)
	require.Equal(t, vfat.BlockSize, n)

	size, err := v.Stat(fd)
	require.NoError(t, err)
	require.EqualValues(t, vfat.BlockSize, size)
}

func TestOpen_IndependentOffsetsPerHandle(t *testing.T) {
	v := mountNew(t, 32)
	require.NoError(t, v.Create("a.txt"))

	fd1, err := v.Open("a.txt")
	require.NoError(t, err)
	_, err = v.Write(fd1, []byte("0123456789"))
	require.NoError(t, err)

	fd2, err := v.Open("a.txt")
	require.NoError(t, err)

	require.NoError(t, v.Lseek(fd1, 2))
	buf := make([]byte, 3)
	n, err := v.Read(fd1, buf)
	require.NoError(t, err)
	require.Equal(t, "234", string(buf[:n]))

	buf2 := make([]byte, 3)
	n, err = v.Read(fd2, buf2)
	require.NoError(t, err)
	require.Equal(t, "012", string(buf2[:n]))
}
