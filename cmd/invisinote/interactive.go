package main

import (
	"fmt"
	"io"

	"invisinote/internal/gui"
	"invisinote/internal/tui"
	"invisinote/internal/tui/styles"
	"invisinote/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// newTUICmd represents the TUI command
func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the terminal navigator",
		Long:  `Start the terminal navigator. Press ? inside it for the key list.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Keep the screen clean; logs go to the log file only
			opts.configureLogging(io.Discard, opts.cfg.Settings.LogFile)
			styles.Apply(opts.cfg.Theme.Name)

			sess, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			w, err := opts.newWatcher()
			if err != nil {
				return fmt.Errorf("error starting folder watcher: %w", err)
			}
			defer stopWatcher(w)

			var modelOpts []tui.Option
			if w != nil {
				modelOpts = append(modelOpts, tui.WithWatcher(w))
			}
			p := tea.NewProgram(tui.New(sess, modelOpts...), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}
}

// newGUICmd creates the GUI command for the CLI
func newGUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Launch the graphical navigator",
		Long:  `Launch the desktop window with the same actions and keys as the terminal navigator.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !gui.IsGUIAvailable() {
				return fmt.Errorf("GUI not available in this build")
			}
			opts.configureLogging(io.Discard, opts.cfg.Settings.LogFile)

			sess, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			w, err := opts.newWatcher()
			if err != nil {
				return fmt.Errorf("error starting folder watcher: %w", err)
			}
			defer stopWatcher(w)

			app, err := gui.NewFactory(sess, w).Create()
			if err != nil {
				return fmt.Errorf("error launching GUI: %w", err)
			}
			app.Run()
			return nil
		},
	}
}

func stopWatcher(w *watch.Watcher) {
	if w != nil {
		w.Stop()
	}
}
