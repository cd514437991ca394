package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/balkashynov/contrast/internal/color"
	"github.com/balkashynov/contrast/internal/parser"
)

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Convert a color between hex, rgb and hsl",
	Long: `Print a color in other notations.

Examples:
  contrast convert "#ff8000"
  contrast convert "rgb(255, 128, 0)" --to hsl`,
	Args: cobra.ExactArgs(1),
	RunE: withApp(runConvert),
}

func runConvert(cmd *cobra.Command, args []string, a *app) error {
	rgb, from, err := parser.ParseAny(args[0])
	if err != nil {
		return err
	}

	to, _ := cmd.Flags().GetString("to")
	out := cmd.OutOrStdout()
	a.log.Debug("converting color", zap.String("input", args[0]), zap.Stringer("from", from), zap.String("to", to))

	if strings.EqualFold(to, "all") {
		for _, f := range parser.Formats {
			fmt.Fprintf(out, "%-10s %s\n", f.String()+":", parser.FormatColor(rgb, f))
		}
		fmt.Fprintf(out, "%-10s %.4f\n", "Luminance:", color.Luminance(rgb))
		return nil
	}

	format, err := parser.ParseFormat(to)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, parser.FormatColor(rgb, format))
	return nil
}

func addConvertFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("to", "t", "all", "Target format: hex, rgb, hsl or all")
}

func init() {
	addConvertFlags(convertCmd)
}
