package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-mapgen/internal/orchestrators/mapgen"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available generators",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	svc, cleanup, err := newService(cmd.Context(), storeNone)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.ListGenerators(cmd.Context(), &mapgen.ListGeneratorsInput{})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, d := range out.Generators {
		fmt.Fprintf(w, "%s\t%s\n", d.Name, d.Description)
	}
	return w.Flush()
}
