package main

import (
	"fmt"
	"strings"

	"invisinote/cmd/invisinote/cli"
	"invisinote/internal/cursor"
	"invisinote/internal/session"

	"github.com/spf13/cobra"
)

// loadFolder builds a session, selects the 1-based folder (0 keeps the first)
// and loads its notes.
func (o *rootOptions) loadFolder(cmd *cobra.Command, folder int) (*session.Session, error) {
	sess, err := o.newSession(cmd)
	if err != nil {
		return nil, err
	}
	if folder > 0 {
		if _, err := sess.Manager().SelectFolder(folder - 1); err != nil {
			return nil, err
		}
	}
	if out := sess.Load(); !out.OK() {
		return nil, printOutcome(cmd, out)
	}
	return sess, nil
}

// selectNote makes the named note active when args holds a name.
func selectNote(cmd *cobra.Command, sess *session.Session, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if out := sess.SelectNote(args[0]); !out.OK() {
		return printOutcome(cmd, out)
	}
	return nil
}

// newNotesCmd lists the notes of a folder
func newNotesCmd(opts *rootOptions) *cobra.Command {
	var folder int
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "List the notes in the active folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.loadFolder(cmd, folder)
			if err != nil {
				return err
			}
			active, _ := sess.Manager().ActiveFolder()
			out := cmd.OutOrStdout()
			all := sess.Manager().Notes()
			cli.PrintHeader(out, fmt.Sprintf("%s (%d notes)", active, len(all)))
			for i, note := range all {
				fmt.Fprintf(out, "%3d  %s\n", i+1, note.Name)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&folder, "folder", "f", 0, "1-based folder number (default first)")
	return cmd
}

// newReadCmd prints a whole note
func newReadCmd(opts *rootOptions) *cobra.Command {
	var folder int
	cmd := &cobra.Command{
		Use:   "read [note]",
		Short: "Print a note, the first one by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.loadFolder(cmd, folder)
			if err != nil {
				return err
			}
			if err := selectNote(cmd, sess, args); err != nil {
				return err
			}
			out := sess.ReadNote()
			if !out.OK() {
				return printOutcome(cmd, out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Text)
			return nil
		},
	}
	cmd.Flags().IntVarP(&folder, "folder", "f", 0, "1-based folder number (default first)")
	return cmd
}

// newLinesCmd prints numbered lines with optional word spans
func newLinesCmd(opts *rootOptions) *cobra.Command {
	var (
		folder int
		words  bool
	)
	cmd := &cobra.Command{
		Use:   "lines [note]",
		Short: "Print the numbered lines of a note",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.loadFolder(cmd, folder)
			if err != nil {
				return err
			}
			if err := selectNote(cmd, sess, args); err != nil {
				return err
			}
			if err := sess.Manager().LinesError(); err != nil {
				cli.PrintError(cmd.ErrOrStderr(), session.MsgReadFailed)
				return &reportedError{err: err}
			}

			out := cmd.OutOrStdout()
			note, _ := sess.Manager().CurrentNote()
			lines := sess.Cursor().Lines()
			cli.PrintHeader(out, fmt.Sprintf("%s (%d lines)", note.Name, len(lines)))
			for i, line := range lines {
				fmt.Fprintf(out, "%4d  %s\n", i+1, strings.TrimRight(line, "\r\n"))
				if !words {
					continue
				}
				for j, w := range cursor.Words(line) {
					cli.PrintMuted(out, fmt.Sprintf("      %d [%d,%d) %s", j+1, w.Start, w.End, w.Text(line)))
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&folder, "folder", "f", 0, "1-based folder number (default first)")
	cmd.Flags().BoolVarP(&words, "words", "w", false, "show word boundaries under each line")
	return cmd
}

// newPathsCmd shows where files live
func newPathsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print the config, folder list, notes and log paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			rows := [][2]string{
				{"config", opts.configPath()},
				{"folders file", opts.cfg.Directories.FoldersFile},
				{"default notes", opts.cfg.Directories.Default},
				{"log file", opts.cfg.Settings.LogFile},
			}
			for _, row := range rows {
				fmt.Fprintf(out, "%-14s %s\n", row[0]+":", row[1])
			}
			return nil
		},
	}
}
