package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for contrast",
	Long:  `Display detailed help for all contrast commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), customHelp)
	},
}

const customHelp = `
contrast - Text Contrast Accessibility checker

The WCAG 2.0 standard requires a contrast ratio of 4.5:1 for normal text
and 3:1 for large text. contrast computes the ratio of a text color on a
background color and tells you whether it is enough.

COLORS:

  Hex     #1e90ff  or  1e90ff
  RGB     rgb(30, 144, 255)  or  30, 144, 255
  HSL     hsl(210, 100%, 55.9%)  or  210, 100%, 55.9%

COMMANDS:

  (no command)            Open the interactive checker
  ui                      Open the interactive checker
    --text                Initial text color
    --background          Initial background color
    -s, --size            large|normal

    Keys:
      Tab/↑/↓       Switch between text and background
      Enter         Apply the typed color
      Ctrl+F        Cycle display format Hex → RGB → HSL
      Ctrl+T        Toggle large/normal text
      Ctrl+X        Swap text and background
      Esc           Quit

  check <text> <bg>       Print the contrast ratio and verdict
    -s, --size            large|normal
    --json                JSON output
    --strict              Exit 1 when not accessible

    Example:
      contrast check "#767676" "#ffffff" --size normal

  convert <color>         Print a color as hex, rgb and hsl
    -t, --to              hex|rgb|hsl|all

  version                 Show version information
  help                    Show this help

GLOBAL FLAGS:

  --config                Config file (default ~/.contrast/config.yaml)
  --log-level             debug|info|warn|error

`
