package main

import (
	"fmt"

	"github.com/go-chi/docgen"
	"github.com/spf13/cobra"

	"github.com/joestump/news-api/internal/api"
)

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the router's routes as markdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), docgen.MarkdownRoutesDoc(api.NewRouter(api.Deps{}), docgen.MarkdownOpts{
				Intro: "Routes served by news-api.",
			}))
			return nil
		},
	}
}
