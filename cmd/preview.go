package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kmacinski/veil/internal/app"
)

var (
	previewWidth  int
	previewHeight int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print one frame with every window shown",
	Long:  "Render all configured windows fully opaque, without registering them or touching saved state.",
	RunE:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().IntVar(&previewWidth, "width", 100, "Frame width in cells")
	previewCmd.Flags().IntVar(&previewHeight, "height", 30, "Frame height in rows")
}

func runPreview(cmd *cobra.Command, args []string) error {
	if previewWidth <= 0 || previewHeight <= 0 {
		return fmt.Errorf("width and height must be positive")
	}
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	out, err := app.Preview(cfg, previewWidth, previewHeight)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
