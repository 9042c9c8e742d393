package cmd

import (
	"path/filepath"

	"github.com/huangdijia/ccswitch/internal/config"
	"github.com/spf13/cobra"
)

func newInitCmd(app *App) *cobra.Command {
	var (
		force bool
		full  bool
	)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a profiles file from the built-in template",
		Long: `Create the profiles file (default ~/.ccswitch/ccs.json) from a built-in template.
Use --full for a template with several Anthropic-compatible providers.
An existing file is only replaced with --force.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := config.WriteTemplate(app.Fs, app.cfg.ProfilesPath(), force, full)
			if err != nil {
				return err
			}

			p := app.printer()
			if result.CreatedDir {
				p.Printf("Created directory: %s\n", filepath.Dir(result.Path))
			}
			kind := "default"
			if result.Full {
				kind = "full"
			}
			p.Success("%s configuration file created successfully: %s", kind, result.Path)
			return nil
		},
	}

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing profiles file")
	initCmd.Flags().BoolVar(&full, "full", false, "use the template with all known providers")

	return initCmd
}
