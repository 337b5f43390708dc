package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ostafen/vfat/internal/env"
)

var logLevel string

func Execute() error {
	rootCmd := &cobra.Command{
		Use:   env.AppName,
		Short: env.AppName + " - a small FAT-style single-directory filesystem",
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "log level: DEBUG, INFO, WARN, ERROR")

	rootCmd.AddCommand(DefineFormatCommand())
	rootCmd.AddCommand(DefineInfoCommand())
	rootCmd.AddCommand(DefineLsCommand())
	rootCmd.AddCommand(DefineCreateCommand())
	rootCmd.AddCommand(DefineRmCommand())
	rootCmd.AddCommand(DefineCatCommand())
	rootCmd.AddCommand(DefinePutCommand())
	rootCmd.AddCommand(DefineMountCommand())

	return rootCmd.Execute()
}
