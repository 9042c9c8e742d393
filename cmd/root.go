// Package cmd provides the command-line interface for ccswitch.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/huangdijia/ccswitch/internal/apperr"
	"github.com/huangdijia/ccswitch/internal/config"
	"github.com/huangdijia/ccswitch/internal/output"
	"github.com/huangdijia/ccswitch/internal/profiles"
	"github.com/huangdijia/ccswitch/internal/settings"
	"github.com/huangdijia/ccswitch/internal/termui"
	"github.com/huangdijia/ccswitch/internal/version"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// App carries the collaborators every command needs. Tests swap in a memory
// filesystem, buffer streams and a scripted picker.
type App struct {
	Fs      afero.Fs
	Home    string
	Streams *termui.IOStreams
	Pick    func(ctx context.Context, names []string, defaultName string) (string, error)

	cfg *config.Config
}

// NewApp wires the OS filesystem and terminal streams.
func NewApp(home string) *App {
	app := &App{
		Fs:      afero.NewOsFs(),
		Home:    home,
		Streams: termui.NewIOStreams(),
	}
	app.Pick = func(ctx context.Context, names []string, defaultName string) (string, error) {
		return termui.Pick(ctx, app.Streams, "Select profile:", names, defaultName)
	}
	return app
}

// Execute builds the root command and runs it. This is called by main.go.
func Execute(ctx context.Context) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get user home directory: %w", err)
	}
	return NewRootCmd(NewApp(home)).ExecuteContext(ctx)
}

// NewRootCmd creates and returns the root command for ccswitch
func NewRootCmd(app *App) *cobra.Command {
	app.cfg = config.New(app.Home)

	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "ccswitch",
		Short: "Manage and switch between Claude Code API profiles",
		Long: `ccswitch keeps several Claude Code API configurations (profiles) in one file
and switches between them by rewriting the env and model fields of Claude's settings.json.
Other settings in that file are left untouched.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.String(),
	}
	rootCmd.SetIn(app.Streams.In)
	rootCmd.SetOut(app.Streams.Out)
	rootCmd.SetErr(app.Streams.ErrOut)

	// Add persistent flags
	flags := rootCmd.PersistentFlags()
	flags.StringP("profiles", "p", config.DefaultProfilesPath(app.Home), "path to the profiles file (env: CCSWITCH_PROFILES)")
	flags.StringP("settings", "s", "", "path to Claude's settings.json (env: CCSWITCH_SETTINGS, default: settingsPath from the profiles file, then ~/.claude/settings.json)")
	flags.String("log-level", "warn", "log level: debug, info, warn, error (env: CCSWITCH_LOG_LEVEL)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	for key, name := range map[string]string{
		config.KeyProfiles: "profiles",
		config.KeySettings: "settings",
		config.KeyLogLevel: "log-level",
	} {
		if err := app.cfg.BindFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	// Add subcommands
	rootCmd.AddCommand(newInitCmd(app))
	rootCmd.AddCommand(newListCmd(app))
	rootCmd.AddCommand(newShowCmd(app))
	rootCmd.AddCommand(newUseCmd(app))
	rootCmd.AddCommand(newResetCmd(app))

	// PersistentPreRun handles logging initialization
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		app.initLogging(verbose)
		return nil
	}

	return rootCmd
}

func (a *App) initLogging(verbose bool) {
	level := a.cfg.LogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(a.Streams.ErrOut, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func (a *App) printer() *output.Printer {
	styles := output.NoColorStyles()
	if a.Streams.ColorEnabled() {
		styles = output.DefaultStyles()
	}
	return output.NewPrinter(a.Streams.Out, styles)
}

func (a *App) loadProfiles() (*profiles.Store, error) {
	return profiles.Load(a.Fs, a.cfg.ProfilesPath())
}

// loadProfilesOptional is loadProfiles for commands that can run without a
// profiles file. A missing file yields a nil store.
func (a *App) loadProfilesOptional() (*profiles.Store, error) {
	store, err := a.loadProfiles()
	if errors.Is(err, apperr.ErrNotFound) {
		slog.Debug("no profiles file", "path", a.cfg.ProfilesPath())
		return nil, nil
	}
	return store, err
}

// loadSettings opens the settings document, honoring the store's settingsPath when store is non-nil.
func (a *App) loadSettings(store *profiles.Store) (*settings.Document, error) {
	var fromProfiles string
	if store != nil {
		fromProfiles, _ = store.SettingsPath()
	}
	return settings.Load(a.Fs, a.cfg.ResolveSettingsPath(fromProfiles), a.Home)
}
