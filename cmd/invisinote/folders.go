package main

import (
	"fmt"
	"strings"

	"invisinote/cmd/invisinote/cli"
	"invisinote/internal/session"

	"github.com/spf13/cobra"
)

// newFoldersCmd groups the folder list commands
func newFoldersCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folders",
		Short: "Show or change the note folder list",
	}
	cmd.AddCommand(newFoldersListCmd(opts))
	cmd.AddCommand(newFoldersSetCmd(opts))
	cmd.AddCommand(newFoldersRotateCmd(opts, "next", "Move to the next folder and load it", session.ActionNextFolder))
	cmd.AddCommand(newFoldersRotateCmd(opts, "prev", "Move to the previous folder and load it", session.ActionPrevFolder))
	return cmd
}

func newFoldersListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the note folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			mgr := sess.Manager()
			list := mgr.Folders()
			if len(list) == 0 {
				return printOutcome(cmd, sess.Dispatch(session.ActionLoad))
			}

			out := cmd.OutOrStdout()
			cli.PrintHeader(out, fmt.Sprintf("Note folders (%s)", opts.cfg.Directories.FoldersFile))
			for i, folder := range list {
				marker := " "
				if i == mgr.FolderIndex() {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %d  %s\n", marker, i+1, folder)
			}
			return nil
		},
	}
}

func newFoldersSetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set [folder...]",
		Short: "Replace the note folder list",
		Long: `Replace the note folder list with the given folders, or with one folder
per line read from stdin. Folders that do not exist are dropped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, "\n")
			if len(args) == 0 {
				var err error
				if text, err = readAll(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			sess, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			return printOutcome(cmd, sess.SetFolders(text))
		},
	}
}

func newFoldersRotateCmd(opts *rootOptions, use, short, action string) *cobra.Command {
	var from int
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			if from > 0 {
				if _, err := sess.Manager().SelectFolder(from - 1); err != nil {
					return err
				}
			}
			out := sess.Dispatch(action)
			if folder, ok := sess.Manager().ActiveFolder(); ok {
				cli.PrintMuted(cmd.OutOrStdout(), folder)
			}
			return printOutcome(cmd, out)
		},
	}
	cmd.Flags().IntVarP(&from, "from", "f", 0, "1-based folder number to rotate from (default first)")
	return cmd
}
