package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/honeycomb/pkg/preset"
)

// presetCommand creates the preset command group.
func (c *CLI) presetCommand() *cobra.Command {
	var mongoURI string

	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Save and recall named settings",
		Long: `Save and recall named settings.

Presets are stored as JSON files in $XDG_DATA_HOME/honeycomb/presets unless
--mongo points at a MongoDB server.`,
	}
	cmd.PersistentFlags().StringVar(&mongoURI, "mongo", "", "MongoDB URI (default: local preset files)")

	open := func(ctx context.Context) (preset.Store, error) {
		return c.openPresetStore(ctx, mongoURI)
	}

	cmd.AddCommand(c.presetSaveCommand(open))
	cmd.AddCommand(c.presetListCommand(open))
	cmd.AddCommand(c.presetShowCommand(open))
	cmd.AddCommand(c.presetApplyCommand(open))
	cmd.AddCommand(c.presetDeleteCommand(open))

	return cmd
}

type storeOpener func(ctx context.Context) (preset.Store, error)

func (c *CLI) openPresetStore(ctx context.Context, mongoURI string) (preset.Store, error) {
	if mongoURI != "" {
		return preset.NewMongoStore(ctx, mongoURI, preset.DefaultDatabase)
	}
	dir, err := preset.DefaultDir()
	if err != nil {
		return nil, err
	}
	return preset.NewFileStore(dir)
}

// presetSaveCommand stores the current settings, with flag overrides, under a name.
func (c *CLI) presetSaveCommand(open storeOpener) *cobra.Command {
	var (
		lf layoutFlags
		rf renderFlags
	)
	cmd := &cobra.Command{
		Use:   "save [name]",
		Short: "Save the current settings as a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadSettings()
			if err != nil {
				return err
			}
			lf.apply(cmd, &s)
			rf.apply(cmd, &s)

			p, err := preset.New(args[0], s)
			if err != nil {
				return err
			}

			store, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Save(cmd.Context(), p); err != nil {
				return fmt.Errorf("save preset: %w", err)
			}
			c.ui.success("Saved preset %s", StyleHighlight.Render(p.Name))
			c.ui.detail("ID: %s", p.ID)
			return nil
		},
	}
	lf.register(cmd)
	rf.register(cmd)
	return cmd
}

func (c *CLI) presetListCommand(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			presets, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(presets) == 0 {
				c.ui.info("No presets saved")
				return nil
			}
			for _, p := range presets {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n",
					StyleDim.Render(p.ID.String()),
					StyleValue.Render(p.Name),
					StyleDim.Render(p.CreatedAt.Local().Format("2006-01-02 15:04")))
			}
			return nil
		},
	}
}

func (c *CLI) presetShowCommand(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "show [name|id]",
		Short: "Show a preset's settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			p, err := preset.Resolve(cmd.Context(), store, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), StyleTitle.Render(p.Name))
			c.ui.field("ID", p.ID.String())
			c.ui.field("Created", p.CreatedAt.Local().Format("2006-01-02 15:04:05"))
			c.ui.blank()
			return p.Settings.Encode(cmd.OutOrStdout())
		},
	}
}

// presetApplyCommand writes a preset into the settings file.
func (c *CLI) presetApplyCommand(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "apply [name|id]",
		Short: "Write a preset to the settings file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			p, err := preset.Resolve(cmd.Context(), store, args[0])
			if err != nil {
				return err
			}
			path, err := c.settingsPath()
			if err != nil {
				return err
			}
			if err := p.Settings.Save(path); err != nil {
				return err
			}
			c.ui.success("Applied preset %s", StyleHighlight.Render(p.Name))
			c.ui.file(path)
			return nil
		},
	}
}

func (c *CLI) presetDeleteCommand(open storeOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name|id]",
		Short: "Delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			p, err := preset.Resolve(cmd.Context(), store, args[0])
			if err != nil {
				return err
			}
			if err := store.Delete(cmd.Context(), p.ID); err != nil {
				return err
			}
			c.ui.success("Deleted preset %s", p.Name)
			return nil
		},
	}
}
