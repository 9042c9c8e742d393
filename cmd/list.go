package cmd

import (
	"github.com/huangdijia/ccswitch/internal/output"
	"github.com/huangdijia/ccswitch/internal/profiles"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "profiles"},
		Short:   "List all profiles",
		Long:    `List every profile in the profiles file. The default profile is marked.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.loadProfiles()
			if err != nil {
				return err
			}

			p := app.printer()
			if store.Len() == 0 {
				p.Println("No profiles configured.")
				return nil
			}

			rows := make([]output.ProfileRow, 0, store.Len())
			for _, name := range store.Names() {
				vars := store.Raw(name)
				rows = append(rows, output.ProfileRow{
					Name:        name,
					Description: store.Description(name),
					URL:         vars[profiles.BaseURLKey],
					Model:       vars[profiles.ModelKey],
					Default:     name == store.Default(),
				})
			}

			p.Heading("Available Claude API Profiles:")
			p.ProfileTable(rows)
			p.Printf("Total profiles: %d\n", store.Len())
			return nil
		},
	}
}
