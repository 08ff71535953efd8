package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/tasteplaces/tasteplaces/internal/tui"
	"go.uber.org/zap"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Start the interactive browser",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	_, sessions, err := newServices()
	if err != nil {
		return err
	}

	log.Info("starting browser", zap.String("data_file", dataFile))
	p := tea.NewProgram(tui.New(sessions, log), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
