package cmd

import (
	"context"
	"errors"

	"github.com/huangdijia/ccswitch/internal/activation"
	"github.com/huangdijia/ccswitch/internal/config"
	"github.com/huangdijia/ccswitch/internal/termui"
	"github.com/spf13/cobra"
)

func newUseCmd(app *App) *cobra.Command {
	useCmd := &cobra.Command{
		Use:     "use [profile]",
		Aliases: []string{"set", "switch"},
		Short:   "Switch the active Claude API profile",
		Long: `Write a profile's variables into the env field of Claude's settings.json and
set its model field from ANTHROPIC_MODEL.

The profile is taken from the argument, then --profile (or CCSWITCH_PROFILE).
Without either, an interactive picker is shown on a terminal; otherwise the
default profile from the profiles file is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUse(cmd.Context(), app, args)
		},
	}

	useCmd.Flags().String("profile", "", "profile to activate (env: CCSWITCH_PROFILE)")
	if err := app.cfg.BindFlag(config.KeyProfile, useCmd.Flags().Lookup("profile")); err != nil {
		panic(err)
	}

	return useCmd
}

func runUse(ctx context.Context, app *App, args []string) error {
	store, err := app.loadProfiles()
	if err != nil {
		return err
	}

	req := activation.Request{Selector: app.cfg.Profile()}
	if len(args) > 0 {
		req.Arg = args[0]
	}
	if req.Arg == "" && req.Selector == "" && app.Pick != nil && app.Streams.IsInteractive() {
		req.Pick = func(names []string, defaultName string) (string, error) {
			return app.Pick(ctx, names, defaultName)
		}
	}

	name, err := activation.Resolve(store, req)
	if err != nil {
		if errors.Is(err, termui.ErrCanceled) {
			app.printer().Println("Canceled.")
			return nil
		}
		return err
	}

	doc, err := app.loadSettings(store)
	if err != nil {
		return err
	}

	env := store.Get(name)
	if err := activation.Apply(doc, env); err != nil {
		return err
	}

	p := app.printer()
	p.Success("Successfully switched to profile: %s", name)
	p.ProfileDetails(env)
	return nil
}
