package cmd

import (
	"github.com/huangdijia/ccswitch/internal/apperr"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var current bool

	showCmd := &cobra.Command{
		Use:   "show [profile]",
		Short: "Show a profile or the current Claude settings",
		Long: `Show the variables of a profile with secrets masked.
Without a profile name, or with --current, show the env and model currently in Claude's settings.json.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if current || len(args) == 0 {
				return showCurrent(app)
			}
			return showProfile(app, args[0])
		},
	}

	showCmd.Flags().BoolVarP(&current, "current", "c", false, "show current Claude settings instead of a profile")

	return showCmd
}

func showCurrent(app *App) error {
	store, err := app.loadProfilesOptional()
	if err != nil {
		return err
	}
	doc, err := app.loadSettings(store)
	if err != nil {
		return err
	}
	env, err := doc.Env()
	if err != nil {
		return err
	}

	p := app.printer()
	p.Heading("Current Claude Settings:")
	p.Printf("  Settings file: %s\n\n", doc.Path())

	if model, ok := doc.Model(); ok && model != "" {
		p.Printf("  Model: %s\n", model)
	} else {
		p.Println("  Model: (default)")
	}

	if len(env) > 0 {
		p.Println()
		p.Heading("Environment Variables:")
		p.EnvValues(env)
	}
	return nil
}

func showProfile(app *App, name string) error {
	store, err := app.loadProfiles()
	if err != nil {
		return err
	}
	if !store.Has(name) {
		return apperr.ProfileNotFound(name, store.Names())
	}

	p := app.printer()
	p.Heading("Profile: " + name)
	if name == store.Default() {
		p.Dim("  (default profile)")
	}
	if desc := store.Description(name); desc != "" {
		p.Printf("  Description: %s\n", desc)
	}

	p.Println()
	p.Heading("Configuration:")
	if vars := store.Get(name); len(vars) > 0 {
		p.Variables(vars)
	} else {
		p.Println("  (no custom configuration)")
	}

	if path, ok := store.SettingsPath(); ok {
		p.Println()
		p.Dim("  Settings file: " + path)
	}
	return nil
}
