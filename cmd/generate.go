package cmd

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/erwaqarmalik/studio-sheet/internal/config"
	"github.com/erwaqarmalik/studio-sheet/internal/geometry"
	"github.com/erwaqarmalik/studio-sheet/internal/layout"
	"github.com/erwaqarmalik/studio-sheet/internal/photo"
	"github.com/erwaqarmalik/studio-sheet/internal/removal"
	"github.com/erwaqarmalik/studio-sheet/internal/sheet"
)

// Sheet defaults applied when a flag is omitted or out of range.
const (
	defaultMarginCm = 0.5
	defaultGapCm    = 0.3

	maxMarginCm = 5.0
	maxGapCm    = 5.0
)

var generateCmd = &cobra.Command{
	Use:   "generate [image...]",
	Short: "Generate a printable photo sheet from one or more images",
	Long: `Crop the given images to the requested physical size, tile the copies
onto sheets of paper and write the result as a single PDF or one JPEG
per page.

Example:
  studio-sheet generate --copies 6 photo.jpg
  studio-sheet generate --size us_visa --format jpeg --cut-lines crosshair a.jpg b.jpg
  studio-sheet generate --width 4 --height 6 --remove-bg --bg-color FFFFFF photo.png`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("paper", geometry.DefaultPaperID(), "Paper size (see 'studio-sheet papers')")
	generateCmd.Flags().String("orientation", geometry.OrientationPortrait, "Paper orientation: portrait or landscape")
	generateCmd.Flags().Float64("margin", defaultMarginCm, "Page margin in cm (0-5)")
	generateCmd.Flags().Float64("col-gap", defaultGapCm, "Horizontal gap between photos in cm (0-5)")
	generateCmd.Flags().Float64("row-gap", defaultGapCm, "Vertical gap between photos in cm (0-5)")
	generateCmd.Flags().String("cut-lines", "full", "Cut guides: full, crosshair or none")
	generateCmd.Flags().String("format", "pdf", "Output format: pdf or jpeg")
	generateCmd.Flags().String("size", photo.DefaultPresetID(), "Photo size preset (see 'studio-sheet sizes')")
	generateCmd.Flags().Float64("width", 0, "Custom photo width in cm (1-20, overrides --size with --height)")
	generateCmd.Flags().Float64("height", 0, "Custom photo height in cm (1-20, overrides --size with --width)")
	generateCmd.Flags().Int("copies", photo.DefaultCopies, "Copies of each photo (1-100)")
	generateCmd.Flags().Bool("remove-bg", false, "Remove photo backgrounds via the removal service")
	generateCmd.Flags().String("bg-color", "FFFFFF", "Background color as RRGGBB, used with --remove-bg")
	generateCmd.Flags().String("removal-url", "", "Background removal service URL (default $REMOVAL_SERVICE_URL)")
	generateCmd.Flags().String("output", "output", "Directory for generated sheets")
	generateCmd.Flags().String("session", "", "Session identifier for the output subdirectory (default: random)")
	generateCmd.Flags().Bool("quiet", false, "Suppress the progress bar")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	widthCm, heightCm, err := resolvePhotoSize(cmd)
	if err != nil {
		return err
	}

	copies := mustGetInt(cmd, "copies")
	if copies < photo.MinCopies || copies > photo.MaxCopies {
		fmt.Fprintf(os.Stderr, "Warning: copies %d out of range (%d-%d), using %d\n",
			copies, photo.MinCopies, photo.MaxCopies, photo.DefaultCopies)
		copies = photo.DefaultCopies
	}

	params := layout.Parameters{
		PaperSize:   mustGetString(cmd, "paper"),
		Orientation: mustGetString(cmd, "orientation"),
		MarginCm:    clampedCm(cmd, "margin", maxMarginCm, defaultMarginCm),
		ColGapCm:    clampedCm(cmd, "col-gap", maxGapCm, defaultGapCm),
		RowGapCm:    clampedCm(cmd, "row-gap", maxGapCm, defaultGapCm),
	}

	switch style := mustGetString(cmd, "cut-lines"); style {
	case "full":
		params.CutLines = true
		params.CutLineStyle = layout.CutLineFull
	case "crosshair":
		params.CutLines = true
		params.CutLineStyle = layout.CutLineCrosshair
	case "none":
	default:
		return fmt.Errorf("unknown cut-line style %q (use full, crosshair or none)", style)
	}

	var format sheet.Format
	switch f := mustGetString(cmd, "format"); f {
	case "pdf":
		format = sheet.FormatPDF
	case "jpeg", "jpg":
		format = sheet.FormatJPEG
	default:
		return fmt.Errorf("unknown output format %q (use pdf or jpeg)", f)
	}

	specs := make([]*photo.Spec, len(args))
	for i, path := range args {
		specs[i] = &photo.Spec{
			Source:   path,
			WidthCm:  widthCm,
			HeightCm: heightCm,
			Copies:   copies,
		}
	}

	removeBg := mustGetBool(cmd, "remove-bg")
	var remover sheet.Remover
	if removeBg {
		url := mustGetString(cmd, "removal-url")
		if url == "" {
			url = cfg.Removal.URL
		}
		remover = removal.NewClient(url)
	}

	outputDir := cfg.Output.Dir
	if cmd.Flags().Changed("output") {
		outputDir = mustGetString(cmd, "output")
	}

	req := sheet.Request{
		Photos:           specs,
		Layout:           params,
		Format:           format,
		RemoveBackground: removeBg,
		BackgroundColor:  mustGetString(cmd, "bg-color"),
		OutputDir:        outputDir,
		SessionID:        mustGetString(cmd, "session"),
	}

	if !mustGetBool(cmd, "quiet") {
		bar := progressbar.NewOptions(len(specs),
			progressbar.OptionSetDescription("Preparing photos"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("photos"),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
		req.OnPhoto = func(report sheet.PhotoReport, current, total int) {
			bar.Add(1)
		}
	}

	result, err := sheet.New(remover).Generate(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("failed to generate sheet: %w", err)
	}

	fmt.Println()
	for _, report := range result.Photos {
		switch {
		case report.Message != "":
			fmt.Printf("  SKIPPED %s: %s\n", report.Source, report.Message)
		case report.BackgroundRemoved:
			fmt.Printf("  OK      %s (background replaced)\n", report.Source)
		default:
			fmt.Printf("  OK      %s\n", report.Source)
		}
	}

	fmt.Printf("\nGenerated %d page(s), session %s:\n", result.Pages, result.SessionID)
	for _, path := range result.OutputPaths {
		fmt.Printf("  %s\n", path)
	}

	return nil
}

// resolvePhotoSize picks the preset unless both custom dimensions are
// given. Custom values outside the allowed range are clamped.
func resolvePhotoSize(cmd *cobra.Command) (widthCm, heightCm float64, err error) {
	width := mustGetFloat64(cmd, "width")
	height := mustGetFloat64(cmd, "height")

	if width > 0 || height > 0 {
		if width <= 0 || height <= 0 {
			return 0, 0, fmt.Errorf("custom sizes need both --width and --height")
		}
		return clampSize(width, "width"), clampSize(height, "height"), nil
	}

	id := mustGetString(cmd, "size")
	preset, ok := photo.LookupPreset(id)
	if !ok {
		return 0, 0, fmt.Errorf("unknown size preset %q (see 'studio-sheet sizes')", id)
	}
	return preset.WidthCm, preset.HeightCm, nil
}

func clampSize(value float64, name string) float64 {
	if value < photo.MinSizeCm {
		fmt.Fprintf(os.Stderr, "Warning: %s %.2f cm below minimum, using %.0f cm\n", name, value, photo.MinSizeCm)
		return photo.MinSizeCm
	}
	if value > photo.MaxSizeCm {
		fmt.Fprintf(os.Stderr, "Warning: %s %.2f cm above maximum, using %.0f cm\n", name, value, photo.MaxSizeCm)
		return photo.MaxSizeCm
	}
	return value
}

// clampedCm reads a cm flag and falls back to its default outside 0..max.
func clampedCm(cmd *cobra.Command, name string, max, fallback float64) float64 {
	value := mustGetFloat64(cmd, name)
	if value < 0 || value > max {
		fmt.Fprintf(os.Stderr, "Warning: %s %.2f cm out of range (0-%.0f), using %.1f cm\n", name, value, max, fallback)
		return fallback
	}
	return value
}
