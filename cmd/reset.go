package cmd

import (
	"log/slog"

	"github.com/huangdijia/ccswitch/internal/activation"
	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the profile from Claude's settings",
		Long:  `Empty the env field and remove the model field of Claude's settings.json. Other fields are kept.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The profiles file only contributes settingsPath here, so any
			// problem loading it falls back to the default location.
			store, err := app.loadProfilesOptional()
			if err != nil {
				slog.Warn("ignoring unreadable profiles file", "error", err)
				store = nil
			}

			doc, err := app.loadSettings(store)
			if err != nil {
				return err
			}
			if err := activation.Reset(doc); err != nil {
				return err
			}

			app.printer().Success("Settings have been reset to default")
			return nil
		},
	}
}
