package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/palmcrest/showcase/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "showcase: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "showcase",
		Short: "Terminal carousel of featured property listings",
		Long: `showcase cycles through featured listings a few cards at a time.
Listings come from a feed URL, a YAML catalog or the built-in sample, in that
order of preference.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	f := root.Flags()
	f.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/showcase/config.toml)")
	f.StringVar(&opts.ListingsPath, "listings", "", "YAML listings catalog")
	f.StringVar(&opts.FeedURL, "feed", "", "listings feed base URL; wins over the catalog")
	f.IntVar(&opts.WindowSize, "window", 0, "listings per slide (1-8)")
	f.DurationVar(&opts.Interval, "interval", 0, "auto-advance interval, e.g. 3s")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(newInspectCmd())
	return root
}
