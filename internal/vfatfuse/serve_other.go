//go:build !linux
// +build !linux

package vfatfuse

import (
	"fmt"
	"runtime"

	"github.com/ostafen/vfat/pkg/vfat"
)

// Serve is unsupported outside linux: bazil.org/fuse's kernel driver is
// linux/darwin-only and this build only wires the linux cgo-free path,
// mirroring the teacher's own mount.go/mount_linux.go split.
func Serve(mountpoint string, vol *vfat.Volume) error {
	return fmt.Errorf("vfatfuse: mounting is not supported on %s", runtime.GOOS)
}
