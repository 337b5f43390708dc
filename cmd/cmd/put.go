package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ostafen/vfat/pkg/vfat"
)

// DefinePutCommand copies a host file onto a disk image. If Create fails
// for the destination name (for example because it already exists), the
// existing entry is deleted and created again empty before copying.
func DefinePutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "put <image> <name> <src>",
		Short: "copy a host file onto a disk image",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			image, name, src := args[0], args[1], args[2]

			v, err := vfat.MountFile(image)
			if err != nil {
				return err
			}
			defer v.Unmount()

			if v.Create(name) != nil {
				if err := v.Delete(name); err != nil {
					return fmt.Errorf("replacing %s: %w", name, err)
				}
				if err := v.Create(name); err != nil {
					return err
				}
			}

			f, err := v.OpenFile(name)
			if err != nil {
				return err
			}
			defer f.Close()

			in, err := os.Open(src)
			if err != nil {
				return err
			}
			defer in.Close()

			n, err := io.Copy(f, in)
			if err != nil {
				return err
			}
			fmt.Printf("wrote %d bytes to %s\n", n, name)
			return nil
		},
	}
}
