package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/doctrans/internal/archive"
	"codeberg.org/snonux/doctrans/internal/cli"
	"codeberg.org/snonux/doctrans/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runCommand translates the configured tree. Per-file failures are reported
// by the processor and do not make the command fail.
func runCommand(cmd *cobra.Command) error {
	config := cli.BuildConfig()

	// Handle --archive flag
	if archiveFlag, _ := cmd.Flags().GetBool("archive"); archiveFlag {
		archivedPath, err := archive.ArchiveDestination(config.DestinationRoot)
		if err != nil {
			return fmt.Errorf("failed to archive destination: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Destination archived to: %s\n", archivedPath)
		return nil
	}

	table, err := cli.LoadTable()
	if err != nil {
		return err
	}

	proc := processor.NewProcessor(config, table, cmd.OutOrStdout(), cli.NewLogger())
	proc.ProcessTree()

	return nil
}
