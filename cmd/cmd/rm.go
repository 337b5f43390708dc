package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ostafen/vfat/pkg/vfat"
)

// DefineRmCommand removes a file from a disk image, freeing its FAT chain.
func DefineRmCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <image> <name>",
		Short: "delete a file from a disk image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := vfat.MountFile(args[0])
			if err != nil {
				return err
			}
			defer v.Unmount()

			if err := v.Delete(args[1]); err != nil {
				return err
			}
			fmt.Printf("removed %s\n", args[1])
			return nil
		},
	}
}
