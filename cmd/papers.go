package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/erwaqarmalik/studio-sheet/internal/geometry"
)

var papersCmd = &cobra.Command{
	Use:   "papers",
	Short: "List the supported paper sizes",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tWIDTH\tHEIGHT\tDEFAULT")
		fmt.Fprintln(w, "--\t-----\t------\t-------")
		for _, p := range geometry.PaperSizes() {
			def := ""
			if p.ID == geometry.DefaultPaperID() {
				def = "*"
			}
			fmt.Fprintf(w, "%s\t%.2f cm\t%.2f cm\t%s\n", p.ID, p.WidthCm, p.HeightCm, def)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(papersCmd)
}
