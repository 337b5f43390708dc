package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ostafen/vfat/internal/logger"
	"github.com/ostafen/vfat/internal/vfatfuse"
	"github.com/ostafen/vfat/pkg/vfat"
)

// DefineMountCommand mounts a disk image as a real FUSE filesystem,
// serving it until the mountpoint is unmounted.
func DefineMountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mount <image> <mountpoint>",
		Short: "mount a disk image as a FUSE filesystem",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			image, mountpoint := args[0], args[1]
			log := logger.New(os.Stderr, logger.ParseLevel(logLevel))

			v, err := vfat.MountFile(image)
			if err != nil {
				return err
			}
			defer v.Unmount()

			log.Infof("serving %s at %s", image, mountpoint)
			return vfatfuse.Serve(mountpoint, v)
		},
	}
}
