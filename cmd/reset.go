package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quantumapps-dev/buildingpermitforpa/internal/config"
	"github.com/quantumapps-dev/buildingpermitforpa/internal/store"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the saved application draft",
	Long:  `Removes the in-progress draft from the local store. Submitted applications are untouched.`,
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	cfg, cfgDir, err := config.Load()
	if err != nil {
		return err
	}

	drafts := store.NewDraftStore(store.NewFileKV(cfg.StoreFile(cfgDir)))
	if _, ok := drafts.LoadDraft(); !ok {
		fmt.Println("No saved draft to discard.")
		return nil
	}

	if !resetForce {
		fmt.Print("Discard the saved draft? [y/N] ")
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
			fmt.Println("Keeping the draft.")
			return nil
		}
	}

	if err := drafts.ClearDraft(); err != nil {
		return fmt.Errorf("discarding draft: %w", err)
	}
	fmt.Println("Draft discarded.")
	return nil
}
