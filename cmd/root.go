package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studio-sheet",
	Short: "Generate printable photo sheets",
	Long: `Studio Sheet tiles cropped photographs onto printable sheets (PDF or
JPEG) with configurable paper size, margins, gaps, copy counts and
cut-line guides. Background removal and recompositing onto a solid
color is available through an external removal service.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
