package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List registered models and their pricing",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, registry, err := setup()
		if err != nil {
			return err
		}

		ids := registry.IDs()
		sort.Strings(ids)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MODEL\tPROVIDER\tIN $/M\tOUT $/M\tTEMP")
		for _, id := range ids {
			d, err := registry.Resolve(id)
			if err != nil {
				return err
			}
			temp := "yes"
			if !d.TemperatureEnabled {
				temp = "no"
			}
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%s\n", d.ID, d.Provider, d.InputPerMillion, d.OutputPerMillion, temp)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
