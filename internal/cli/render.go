package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/honeycomb/pkg/pipeline"
	"github.com/matzehuels/honeycomb/pkg/settings"
)

// renderCommand creates the render command, which runs layout and visualize
// in one step.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
		refresh    bool
		lf         layoutFlags
		rf         renderFlags
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Compute a layout and render it",
		Long: `Compute a honeycomb layout and render it to SVG, PNG, PDF or JSON.

This is equivalent to running 'layout' followed by 'visualize'. Both stages
are cached locally.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			s, err := c.loadSettings()
			if err != nil {
				return err
			}
			lf.apply(cmd, &s)
			rf.apply(cmd, &s)
			return c.runRender(cmd.Context(), s, formats, output, noCache, refresh)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (default: honeycomb)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if cached")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	lf.register(cmd)
	rf.register(cmd)

	return cmd
}

// runRender executes the full pipeline and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, s settings.Settings, formats []string, output string, noCache, refresh bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.OptionsFromSettings(s)
	opts.Formats = formats
	opts.Refresh = refresh
	opts.Logger = loggerFromContext(ctx)

	prog := newStep(opts.Logger)
	spinner := newSpinnerWithContext(ctx, "Rendering honeycomb...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	prog.done("honeycomb rendered", "formats", formats, "cells", result.Stats.CellCount, "cached", result.CacheInfo.RenderHit)

	if err := c.writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   formats,
		input:     appName,
		output:    output,
		cacheHit:  result.CacheInfo.RenderHit,
	}); err != nil {
		return err
	}

	c.ui.summary(summarizeStats(result.Stats, result.CacheInfo.LayoutHit))
	return nil
}
