package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ostafen/vfat/pkg/vfat"
)

// DefineInfoCommand mounts an image and prints its layout and free-space
// ratios. The image is opened read-write, and unmounting writes the root
// directory and FAT back unchanged.
func DefineInfoCommand() *cobra.Command {
	var useMmap bool

	c := &cobra.Command{
		Use:   "info <image>",
		Short: "print layout and free-space information about a disk image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v *vfat.Volume
			var err error
			if useMmap {
				v, err = vfat.MountMmapFile(args[0])
			} else {
				v, err = vfat.MountFile(args[0])
			}
			if err != nil {
				return err
			}
			defer v.Unmount()

			stats, err := v.Info()
			if err != nil {
				return err
			}
			fmt.Println(stats.String())
			return nil
		},
	}
	c.Flags().BoolVar(&useMmap, "mmap", false, "open the image through a memory-mapped block device instead of pread/pwrite")
	return c
}
