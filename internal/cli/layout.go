package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/honeycomb/pkg/hexgrid"
	"github.com/matzehuels/honeycomb/pkg/pipeline"
	"github.com/matzehuels/honeycomb/pkg/settings"
)

// layoutCommand creates the layout command for computing honeycomb layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		refresh bool
		flags   layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compute a honeycomb layout",
		Long: `Compute a honeycomb layout for the configured viewport and grid.

The layout command tiles the viewport with hexagons, assigns each hexagon to
a layer and writes the result as layout.json. The file can be rendered to
SVG/PNG/PDF with the 'visualize' command.

Grid and viewport values come from the settings file; flags override them.
Results are cached locally for faster subsequent runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadSettings()
			if err != nil {
				return err
			}
			flags.apply(cmd, &s)
			return c.runLayout(cmd.Context(), s, output, noCache, refresh)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", defaultLayoutFile, "output file (- for stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if cached")
	flags.register(cmd)

	return cmd
}

// runLayout computes the layout and writes output.
func (c *CLI) runLayout(ctx context.Context, s settings.Settings, output string, noCache, refresh bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	logger := loggerFromContext(ctx)
	opts := pipeline.OptionsFromSettings(s)
	opts.Refresh = refresh
	opts.Logger = logger

	prog := newStep(logger)
	l, cacheHit, err := runner.GenerateLayoutWithCacheInfo(ctx, opts)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	prog.done("layout computed", "cells", len(l.Cells), "layers", l.LayerCount(), "cached", cacheHit)

	out, err := openOutput(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	err = hexgrid.WriteLayout(l, out)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}
	if output == "-" {
		return nil
	}

	summary := summarizeLayout(l, cacheHit)
	if pal, err := s.Render.Palette(); err == nil {
		summary.Palette = &pal
	}

	c.ui.success("Layout complete")
	c.ui.file(output)
	c.ui.summary(summary)
	c.ui.blank()
	c.ui.nextStep("Render", appName+" visualize "+output)

	return nil
}
