package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/erwaqarmalik/studio-sheet/internal/photo"
)

var sizesCmd = &cobra.Command{
	Use:   "sizes",
	Short: "List the photo size presets",
	Long: `List the named photo size presets accepted by 'generate --size'.
Custom dimensions between 1 and 20 cm can be given with --width and
--height instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSIZE\tCATEGORY\tLABEL\tDEFAULT")
		fmt.Fprintln(w, "--\t----\t--------\t-----\t-------")
		for _, p := range photo.Presets() {
			def := ""
			if p.ID == photo.DefaultPresetID() {
				def = "*"
			}
			fmt.Fprintf(w, "%s\t%.2f×%.2f cm\t%s\t%s\t%s\n", p.ID, p.WidthCm, p.HeightCm, p.Category, p.Label, def)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(sizesCmd)
}
