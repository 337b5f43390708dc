package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ostafen/vfat/pkg/vfat"
)

// DefineCreateCommand adds a new, empty file to a disk image.
func DefineCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <image> <name>",
		Short: "create an empty file on a disk image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := vfat.MountFile(args[0])
			if err != nil {
				return err
			}
			defer v.Unmount()

			if err := v.Create(args[1]); err != nil {
				return err
			}
			fmt.Printf("created %s\n", args[1])
			return nil
		},
	}
}
