package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/honeycomb/internal/server"
	"github.com/matzehuels/honeycomb/pkg/cache"
	"github.com/matzehuels/honeycomb/pkg/observability"
	"github.com/matzehuels/honeycomb/pkg/pipeline"
	"github.com/matzehuels/honeycomb/pkg/preset"
)

// serveOpts holds the flags of the serve command.
type serveOpts struct {
	addr          string
	redisURL      string
	mongoURI      string
	mongoDatabase string
	noCache       bool
}

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve layouts and artwork over HTTP",
		Long: `Serve layouts and artwork over HTTP.

By default layouts and artifacts are cached in the local cache directory and
presets are kept in memory. Use --redis to share the cache between instances
and --mongo to persist presets.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis", "", "Redis URL for the shared cache (e.g. redis://localhost:6379/0)")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo", "", "MongoDB URI for preset storage")
	cmd.Flags().StringVar(&opts.mongoDatabase, "mongo-db", preset.DefaultDatabase, "MongoDB database name")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe wires the cache and preset store and blocks until ctx is done.
func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	if c.verbose {
		hooks := observability.NewLogHooks(c.Logger)
		observability.SetPipelineHooks(hooks)
		observability.SetCacheHooks(hooks)
		observability.SetHTTPHooks(hooks)
		defer observability.Reset()
	}

	prog := newMilestone(c.Logger)

	cc, err := c.serveCache(ctx, opts)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(cc, nil, c.Logger)
	defer runner.Close()

	store, err := c.serveStore(ctx, opts)
	if err != nil {
		return err
	}
	defer store.Close()

	prog.done("backends ready")
	c.ui.info("Listening on %s", StyleLink.Render(displayAddr(opts.addr)))

	return server.New(runner, store, c.Logger).Run(ctx, opts.addr)
}

func (c *CLI) serveCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redisURL == "" {
		return newCache(false)
	}
	rc, err := cache.NewRedisCache(ctx, opts.redisURL)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	c.Logger.Info("using redis cache")
	return rc, nil
}

func (c *CLI) serveStore(ctx context.Context, opts serveOpts) (preset.Store, error) {
	if opts.mongoURI == "" {
		c.ui.warning("Presets are kept in memory; use --mongo to persist them")
		return preset.NewMemoryStore(), nil
	}
	ms, err := preset.NewMongoStore(ctx, opts.mongoURI, opts.mongoDatabase)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	c.Logger.Info("using mongo preset store", "database", opts.mongoDatabase)
	return ms, nil
}

// displayAddr turns a listen address into a clickable URL.
func displayAddr(addr string) string {
	if addr != "" && addr[0] == ':' {
		addr = "localhost" + addr
	}
	return "http://" + addr
}
