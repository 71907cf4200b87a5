// Package cli wires configuration, repository detection, and the TUI
// together behind a cobra command.
package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/stashtui/stashtui/internal/app"
	"github.com/stashtui/stashtui/internal/config"
	"github.com/stashtui/stashtui/internal/debug"
	"github.com/stashtui/stashtui/internal/git"
)

func Execute() error {
	root := &cobra.Command{
		Use:          "stashtui",
		Short:        "Terminal UI for git stashes",
		Long:         "stashtui: browse, inspect, apply, and drop git stashes from the terminal.",
		RunE:         run,
		SilenceUsage: true,
	}

	root.Flags().StringP("repo", "r", "", "path to a repository (default: current dir)")
	root.Flags().BoolP("untracked", "u", false, "default the new-stash form to include untracked files")
	root.Flags().String("debug-log", "", "write a debug log to this file")

	return root.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	if path, _ := cmd.Flags().GetString("debug-log"); path != "" {
		if err := debug.Enable(path); err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
	} else if err := debug.EnableFromEnv(); err != nil {
		return fmt.Errorf("debug log (%s): %w", debug.EnvVar, err)
	}
	defer debug.Close()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	for _, warning := range cfg.Validate() {
		fmt.Fprintln(os.Stderr, "config:", warning)
	}
	if cmd.Flags().Changed("untracked") {
		untracked, _ := cmd.Flags().GetBool("untracked")
		cfg.Stash.IncludeUntracked = untracked
	}

	repoPath, _ := cmd.Flags().GetString("repo")
	repo, err := git.DetectRepo(repoPath)
	if err != nil {
		return err
	}

	lock, err := git.AcquireInstanceLock(repo.GitDir)
	if err != nil {
		return err
	}
	defer lock.Release()

	model, err := app.New(cfg, git.NewClient(repo.Root))
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
