package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ostafen/vfat/pkg/util/format"
	"github.com/ostafen/vfat/pkg/vfat"
)

// DefineLsCommand lists every file on a disk image, along with its size.
func DefineLsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ls <image>",
		Short: "list files on a disk image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := vfat.MountFile(args[0])
			if err != nil {
				return err
			}
			defer v.Unmount()

			entries, err := v.List()
			if err != nil {
				return err
			}

			sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
			for _, e := range entries {
				fmt.Printf("%-15s %s\n", e.Name, format.FormatBytes(int64(e.Size)))
			}
			return nil
		},
	}
}
