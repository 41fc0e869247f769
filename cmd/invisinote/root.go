package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"invisinote/cmd/invisinote/cli"
	"invisinote/internal/config"
	"invisinote/internal/folders"
	"invisinote/internal/log"
	"invisinote/internal/notes"
	"invisinote/internal/platform"
	"invisinote/internal/session"
	"invisinote/internal/watch"

	"github.com/spf13/cobra"
)

// rootOptions carries the persistent flags and the loaded config to every
// subcommand.
type rootOptions struct {
	cfgFile     string
	foldersFile string
	debug       bool
	noPersist   bool

	cfg *config.Config
}

// reportedError marks a failure whose message was already printed.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	if e.err == nil {
		return "command failed"
	}
	return e.err.Error()
}

func (e *reportedError) Unwrap() error { return e.err }

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "invisinote",
		Short: "Keyboard-first notes navigator",
		Long: `Invisinote reads plain-text notes from a list of folders and moves
through them note by note, line by line, word by word and character by
character, announcing where it lands.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		// No Run or RunE function here - default behavior should be to show help
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is <user config dir>/invisinote/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.foldersFile, "folders-file", "", "folder list file (overrides directories.folders_file)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.noPersist, "no-persist", false, "do not write folder list changes to disk")

	rootCmd.AddCommand(newTUICmd(opts))
	rootCmd.AddCommand(newGUICmd(opts))
	rootCmd.AddCommand(newFoldersCmd(opts))
	rootCmd.AddCommand(newNotesCmd(opts))
	rootCmd.AddCommand(newReadCmd(opts))
	rootCmd.AddCommand(newLinesCmd(opts))
	rootCmd.AddCommand(newPathsCmd(opts))

	return rootCmd
}

// load reads the config and sets up CLI logging on stderr.
func (o *rootOptions) load(cmd *cobra.Command) error {
	var err error
	if o.cfgFile != "" {
		o.cfg, err = config.LoadConfigFile(o.cfgFile)
	} else {
		o.cfg, err = config.LoadConfig()
	}
	if err != nil {
		cli.PrintWarning(cmd.ErrOrStderr(), fmt.Sprintf("%v; using default settings", err))
		o.cfg = config.New()
	}
	if o.foldersFile != "" {
		o.cfg.Directories.FoldersFile = o.foldersFile
	}
	if o.debug {
		o.cfg.Settings.Debug = true
	}

	cli.SetTheme(o.cfg.Theme.Name)
	o.configureLogging(cmd.ErrOrStderr(), "")
	return nil
}

// configureLogging sends logs to out, plus file when set. Without --debug
// only warnings and errors are written.
func (o *rootOptions) configureLogging(out io.Writer, file string) {
	level := "warn"
	if o.cfg.Settings.Debug {
		level = "debug"
	}
	logOpts := []log.Option{log.WithOutput(out), log.WithLevel(level)}
	if file != "" {
		logOpts = append(logOpts, log.WithFile(file))
	}
	log.Configure(logOpts...)
	log.SetDebug(o.cfg.Settings.Debug)
}

func (o *rootOptions) matcher() (*notes.Matcher, error) {
	return notes.NewMatcher(o.cfg.Notes.Extension, o.cfg.Notes.Ignore)
}

// store returns the folder list store. With --no-persist the saved list is
// read once and later changes stay in memory.
func (o *rootOptions) store() (folders.Store, error) {
	fileStore := folders.NewFileStore(o.cfg.Directories.FoldersFile, o.cfg.Directories.Default)
	if !o.noPersist {
		return fileStore, nil
	}
	paths, err := fileStore.Load()
	return folders.NewMemoryStore(paths...), err
}

// newSession wires the store, matcher and platform sinks into a session. A
// damaged folder list is reported and replaced by the default folder.
func (o *rootOptions) newSession(cmd *cobra.Command) (*session.Session, error) {
	matcher, err := o.matcher()
	if err != nil {
		return nil, err
	}
	store, err := o.store()
	if err != nil {
		cli.PrintWarning(cmd.ErrOrStderr(), err.Error())
	}
	mgr, err := notes.NewManager(store, notes.WithMatcher(matcher))
	if err != nil && !o.noPersist {
		cli.PrintWarning(cmd.ErrOrStderr(), err.Error())
	}
	return session.New(mgr,
		session.WithClipboard(platform.NewClipboard()),
		session.WithOpener(platform.NewOpener()),
	), nil
}

// newWatcher starts a folder watcher when watching is enabled; otherwise it
// returns nil.
func (o *rootOptions) newWatcher() (*watch.Watcher, error) {
	if !o.cfg.Watch.Enabled {
		return nil, nil
	}
	matcher, err := o.matcher()
	if err != nil {
		return nil, err
	}
	w, err := watch.New(
		watch.WithMatcher(matcher.Match),
		watch.WithDebounce(time.Duration(o.cfg.Watch.DebounceMS)*time.Millisecond),
	)
	if err != nil {
		return nil, err
	}
	if err := w.Start(); err != nil {
		w.Stop()
		return nil, err
	}
	return w, nil
}

// printOutcome writes out in the success or error style and turns a failed
// outcome into an already-reported error.
func printOutcome(cmd *cobra.Command, out session.Outcome) error {
	if out.OK() {
		cli.PrintSuccess(cmd.OutOrStdout(), out.Text)
		return nil
	}
	cli.PrintError(cmd.ErrOrStderr(), out.Text)
	return &reportedError{err: out.Err}
}

// configPath is the config file in use.
func (o *rootOptions) configPath() string {
	if o.cfgFile != "" {
		return o.cfgFile
	}
	paths, err := config.DefaultPaths()
	if err != nil {
		return ""
	}
	return paths.ConfigPath
}

func readAll(r io.Reader) (string, error) {
	if f, ok := r.(*os.File); ok {
		if info, err := f.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
			return "", fmt.Errorf("no folders given; pass them as arguments or pipe them on stdin")
		}
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}
	return string(data), nil
}
