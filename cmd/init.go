package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/timebox-tracker/internal/config"
	"github.com/Tiliavir/timebox-tracker/internal/storage"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty time tracker",
	Long: `Creates the data directory and an empty store, plus an annotated config
file in the tbt home directory. Never overwrites existing files.`,
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	writeConfigTemplate(cmd)

	store, closeStore, err := openStore()
	if err != nil {
		return storageFailure(err)
	}
	defer closeStore()

	err = store.Init()
	if errors.Is(err, storage.ErrAlreadyInitialized) {
		return err
	}
	if err != nil {
		return storageFailure(err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Initialized time tracker at %s\n", store.Path())
	return nil
}

// writeConfigTemplate creates the annotated config unless one exists.
// Failures are logged, not returned.
func writeConfigTemplate(cmd *cobra.Command) {
	path, err := config.FilePath()
	if err != nil {
		slog.Warn("could not locate config file", "error", err)
		return
	}
	written, err := config.WriteTemplate(path)
	if err != nil {
		slog.Warn("could not create config file", "path", path, "error", err)
		return
	}
	if written {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote config template to %s\n", path)
	}
}
