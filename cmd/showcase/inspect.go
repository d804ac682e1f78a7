package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/palmcrest/showcase/internal/carousel"
	"github.com/palmcrest/showcase/internal/config"
	"github.com/palmcrest/showcase/internal/listing"
)

func newInspectCmd() *cobra.Command {
	var (
		window   int
		featured bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print how a catalog splits into slides",
		Long: `Loads a YAML catalog, or the built-in sample when no file is given, and
prints the slides and dots the carousel would show, including the wrap slide.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, source, err := loadCatalog(args)
			if err != nil {
				return err
			}
			if featured {
				items = listing.FilterFeatured(items)
			}
			writeInspect(cmd.OutOrStdout(), source, items, config.ClampWindow(window))
			return nil
		},
	}

	cmd.Flags().IntVarP(&window, "window", "w", carousel.DefaultWindowSize, "listings per slide (1-8)")
	cmd.Flags().BoolVar(&featured, "featured", false, "only featured listings")
	return cmd
}

func loadCatalog(args []string) ([]listing.Listing, string, error) {
	if len(args) == 0 {
		return listing.Sample(), "sample", nil
	}
	path, err := config.ExpandPath(args[0])
	if err != nil {
		return nil, "", err
	}
	items, err := listing.LoadFile(path)
	if err != nil {
		return nil, "", err
	}
	return items, path, nil
}

func writeInspect(w io.Writer, source string, items []listing.Listing, window int) {
	st := carousel.NewState(items, window)
	total := st.TotalSlides()

	fmt.Fprintf(w, "catalog  %s (%d listings)\n", source, len(items))
	fmt.Fprintf(w, "window   %d\n", st.WindowSize())
	fmt.Fprintf(w, "slides   %d\n", total)
	fmt.Fprintf(w, "dots     %d\n", st.DotCount())
	if total == 0 {
		return
	}

	fmt.Fprintln(w)
	for i := 0; i <= total; i++ {
		label, slide := fmt.Sprintf("slide %d", i+1), st.WindowAt(i)
		if i == total {
			// The wrap slide renders slide zero until the reset lands.
			label, slide = "wrap", st.WindowAt(0)
		}
		titles := make([]string, 0, len(slide))
		for _, item := range slide {
			titles = append(titles, item.Title)
		}
		dot := carousel.ActiveDot(i, len(items), st.WindowSize()) + 1
		fmt.Fprintf(w, "%-9s dot %d  %s\n", label, dot, strings.Join(titles, " | "))
	}
}
