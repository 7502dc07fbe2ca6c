package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/track2success-dev/track2success/internal/config"
	"github.com/track2success-dev/track2success/internal/ledger"
)

func newInitCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new Track2Success project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(*dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(cmd, absDir)
		},
	}
}

func runInit(cmd *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}

	cfg := config.Default()

	if err := os.MkdirAll(filepath.Join(dir, cfg.Reports.Dir), 0o755); err != nil {
		return fmt.Errorf("creating reports directory: %w", err)
	}

	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write an empty ledger so the first list/report works without adds.
	f, err := os.Create(filepath.Join(dir, cfg.Ledger.File))
	if err != nil {
		return fmt.Errorf("creating ledger: %w", err)
	}
	defer f.Close()
	if err := ledger.WriteTransactions(f, nil); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}

	cmd.Printf("Initialized Track2Success project at %s\n", dir)
	return nil
}
