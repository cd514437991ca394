package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/balkashynov/contrast/internal/color"
	"github.com/balkashynov/contrast/internal/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check <text-color> <background-color>",
	Short: "Check the contrast of a text color on a background color",
	Long: `Compute the WCAG contrast ratio of two colors and whether it passes.

Colors may be written as hex, rgb or hsl:
  #1e90ff   1e90ff   rgb(30, 144, 255)   30, 144, 255   hsl(210, 100%, 55.9%)

Examples:
  contrast check "#777777" "#ffffff"
  contrast check "rgb(0, 0, 0)" "hsl(60, 100%, 50%)" --size normal
  contrast check 333333 eeeeee --json --strict`,
	Args: cobra.ExactArgs(2),
	RunE: withApp(runCheck),
}

// checkReport is the --json output of check
type checkReport struct {
	Text       string  `json:"text"`
	Background string  `json:"background"`
	Size       string  `json:"size"`
	Ratio      float64 `json:"ratio"`
	Threshold  float64 `json:"threshold"`
	Accessible bool    `json:"accessible"`
}

func runCheck(cmd *cobra.Command, args []string, a *app) error {
	text, _, err := parser.ParseAny(args[0])
	if err != nil {
		return fmt.Errorf("text color: %w", err)
	}
	background, _, err := parser.ParseAny(args[1])
	if err != nil {
		return fmt.Errorf("background color: %w", err)
	}

	size := a.cfg.TextSize()
	if cmd.Flags().Changed("size") {
		flagSize, _ := cmd.Flags().GetString("size")
		if size, err = color.ParseTextSize(flagSize); err != nil {
			return err
		}
	}

	result := color.Calculate(text, background, size)
	a.log.Info("contrast checked",
		zap.String("text", text.Hex()),
		zap.String("background", background.Hex()),
		zap.Stringer("size", size),
		zap.Float64("ratio", result.Ratio),
		zap.Bool("accessible", result.IsAccessible))

	report := checkReport{
		Text:       text.Hex(),
		Background: background.Hex(),
		Size:       size.String(),
		Ratio:      result.Ratio,
		Threshold:  size.Threshold(),
		Accessible: result.IsAccessible,
	}

	out := cmd.OutOrStdout()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		verdict := "❌ Not Accessible!"
		if result.IsAccessible {
			verdict = "✅ Accessible!"
		}
		fmt.Fprintf(out, "Text:           %s\n", report.Text)
		fmt.Fprintf(out, "Background:     %s\n", report.Background)
		fmt.Fprintf(out, "Contrast Ratio: %s\n", parser.FormatRatio(result.Ratio))
		fmt.Fprintf(out, "%s (%s text needs %s)\n", verdict, size, parser.FormatRatio(size.Threshold()))
	}

	if strict, _ := cmd.Flags().GetBool("strict"); strict && !result.IsAccessible {
		return fmt.Errorf("contrast ratio %s is below %s for %s text",
			parser.FormatRatio(result.Ratio), parser.FormatRatio(size.Threshold()), size)
	}
	return nil
}

func addCheckFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("size", "s", "", "Text size: large or normal (default from config, else large)")
	cmd.Flags().Bool("json", false, "JSON output")
	cmd.Flags().Bool("strict", false, "Exit with an error when the pair is not accessible")
}

func init() {
	addCheckFlags(checkCmd)
}
