package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/balkashynov/contrast/internal/color"
	"github.com/balkashynov/contrast/internal/models"
	"github.com/balkashynov/contrast/internal/parser"
	"github.com/balkashynov/contrast/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive contrast checker",
	Long: `Open the interactive checker. Colors and text size start from the config
file and can be overridden with flags.

Examples:
  contrast ui
  contrast ui --text "#767676" --background "#ffffff" --size normal`,
	Args: cobra.NoArgs,
	RunE: withApp(runUI),
}

func addUIFlags(cmd *cobra.Command) {
	cmd.Flags().String("text", "", "Initial text color")
	cmd.Flags().String("background", "", "Initial background color")
	cmd.Flags().StringP("size", "s", "", "Initial text size: large or normal")
}

// newSession builds the starting session from config, then flags
func newSession(cmd *cobra.Command, a *app) (*models.Session, error) {
	text, background, err := a.cfg.Colors()
	if err != nil {
		return nil, err
	}
	size := a.cfg.TextSize()
	textFormat, backgroundFormat := a.cfg.Formats()

	if v, _ := cmd.Flags().GetString("text"); v != "" {
		if text, textFormat, err = parser.ParseAny(v); err != nil {
			return nil, err
		}
	}
	if v, _ := cmd.Flags().GetString("background"); v != "" {
		if background, backgroundFormat, err = parser.ParseAny(v); err != nil {
			return nil, err
		}
	}
	if v, _ := cmd.Flags().GetString("size"); v != "" {
		if size, err = color.ParseTextSize(v); err != nil {
			return nil, err
		}
	}

	session := models.NewSession(text, background, size)
	session.SetFormat(models.Text, textFormat)
	session.SetFormat(models.Background, backgroundFormat)
	return session, nil
}

func runUI(cmd *cobra.Command, args []string, a *app) error {
	session, err := newSession(cmd, a)
	if err != nil {
		return err
	}

	a.log.Info("interactive checker opened",
		zap.String("text", session.Color(models.Text).Hex()),
		zap.String("background", session.Color(models.Background).Hex()),
		zap.Stringer("size", session.Size()))

	return tui.RunCheckTUI(session, tui.Options{
		Shimmer: tui.ShimmerConfigFrom(a.cfg.Animations),
		Log:     a.log,
	})
}

func init() {
	addUIFlags(uiCmd)
}
