package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/railway/builder"
	"github.com/katalvlaran/railway/core"
)

var flagExportYAML bool

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List the cities of the network and their routes",
	Long: `Lists every city with its outgoing routes in short notation. With --yaml
the network is written as a document that --network can load back.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return timed(cmd, func() error {
			if flagExportYAML {
				return builder.NetworkOf(sess.name, sess.graph).Encode(cmd.OutOrStdout())
			}
			return runCities(cmd.OutOrStdout(), sess.graph, sess.styles)
		})
	},
}

func init() {
	citiesCmd.Flags().BoolVar(&flagExportYAML, "yaml", false, "write the network as a YAML document")
	rootCmd.AddCommand(citiesCmd)
}

func runCities(w io.Writer, g *core.Graph, st styles) error {
	for _, c := range g.Cities() {
		routes := c.Routes()
		tokens := make([]string, len(routes))
		for i, r := range routes {
			tokens[i] = builder.FormatRoute(r)
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", st.Label.Render(c.Name()), st.Dim.Render(strings.Join(tokens, " "))); err != nil {
			return err
		}
	}

	return nil
}
