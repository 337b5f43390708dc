package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ostafen/vfat/pkg/vfat"
)

// DefineFormatCommand creates a new disk image and writes an empty
// superblock, FAT and root directory onto it.
func DefineFormatCommand() *cobra.Command {
	var blocks uint16

	c := &cobra.Command{
		Use:   "format <image> [--blocks N]",
		Short: "create and format a new disk image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := vfat.FormatFile(args[0], blocks); err != nil {
				return err
			}
			fmt.Printf("formatted %s (%d blocks)\n", args[0], blocks)
			return nil
		},
	}
	c.Flags().Uint16Var(&blocks, "blocks", 8198, "total block count of the new image")
	return c
}
