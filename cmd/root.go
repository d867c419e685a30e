// Package cmd wires the permit wizard together: config, logging, storage,
// the form controller, and the Bubble Tea program.
package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/quantumapps-dev/buildingpermitforpa/internal/config"
	"github.com/quantumapps-dev/buildingpermitforpa/internal/log"
	"github.com/quantumapps-dev/buildingpermitforpa/internal/store"
	"github.com/quantumapps-dev/buildingpermitforpa/internal/ui"
	"github.com/quantumapps-dev/buildingpermitforpa/internal/wizard"
)

var ephemeralFlag bool

var rootCmd = &cobra.Command{
	Use:   "permitwiz",
	Short: "Interactive building-permit application wizard",
	Long: `permitwiz walks you through a four-step building-permit application
for properties in Pennsylvania. Your progress is saved automatically;
quit at any time and pick up where you left off.`,
	RunE: runWizard,
}

func init() {
	rootCmd.Flags().BoolVar(&ephemeralFlag, "ephemeral", false,
		"keep all state in memory (no draft recovery, nothing written to disk)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runWizard(cmd *cobra.Command, args []string) error {
	cfg, cfgDir, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.LogFile != "" {
		if err := log.Init(cfg.LogFile, cfg.LogLevel); err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		defer log.Close()
	}

	var kv store.KV
	if ephemeralFlag || cfg.Ephemeral {
		kv = store.NewMemKV()
		log.Info(log.CatConfig, "running ephemeral, drafts will not survive this session")
	} else {
		path := cfg.StoreFile(cfgDir)
		kv = store.NewFileKV(path)
		log.Info(log.CatConfig, "store opened", "path", path)
	}

	controller := wizard.New(store.NewDraftStore(kv))
	program := tea.NewProgram(ui.NewApp(controller), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}
	return nil
}
