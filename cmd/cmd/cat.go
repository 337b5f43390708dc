package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ostafen/vfat/pkg/reader"
	"github.com/ostafen/vfat/pkg/vfat"
)

// DefineCatCommand streams a file's contents to stdout, reading through a
// BufferedReadSeeker instead of issuing one vfat.Volume.Read per
// io.Copy-sized chunk.
func DefineCatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <image> <name>",
		Short: "print a file's contents",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := vfat.MountFile(args[0])
			if err != nil {
				return err
			}
			defer v.Unmount()

			f, err := v.OpenFile(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			br := reader.NewBufferedReadSeeker(f, vfat.BlockSize)
			_, err = io.Copy(os.Stdout, br)
			if err != nil && !errors.Is(err, io.EOF) {
				return err
			}
			return nil
		},
	}
}
