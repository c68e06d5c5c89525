package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/curio-ui/curio/internal/router"
)

type routesOptions struct {
	jsonOutput bool
}

func newRoutesCmd() *cobra.Command {
	opts := &routesOptions{}

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List the catalog destinations",
		Long:  `List every destination the showcase can navigate to. These are the names the start_route configuration key accepts.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoutes(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type routeListing struct {
	Route string `json:"route"`
	Title string `json:"title"`
}

func runRoutes(cmd *cobra.Command, opts *routesOptions) error {
	listings := make([]routeListing, 0, len(router.Routes()))
	for _, route := range router.Routes() {
		listings = append(listings, routeListing{
			Route: route.String(),
			Title: route.Title(),
		})
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(listings)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ROUTE\tTITLE")
	for _, listing := range listings {
		fmt.Fprintf(w, "%s\t%s\n", listing.Route, listing.Title)
	}
	return w.Flush()
}
