package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/contrast/internal/color"
	"github.com/balkashynov/contrast/internal/models"
	"github.com/balkashynov/contrast/internal/parser"
)

// useTestConfig points the commands at a config in a temp dir with logging kept there too
func useTestConfig(t *testing.T, extra string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "log:\n  level: debug\n  output_path: " + filepath.Join(dir, "contrast.log") + "\n" + extra
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	configPath = path
	t.Cleanup(func() { configPath = "" })
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	return out.String(), err
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "check", Args: cobra.ExactArgs(2), RunE: withApp(runCheck)}
	addCheckFlags(cmd)
	return cmd
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "convert", Args: cobra.ExactArgs(1), RunE: withApp(runConvert)}
	addConvertFlags(cmd)
	return cmd
}

func TestCheck_PlainOutput(t *testing.T) {
	useTestConfig(t, "")

	out, err := run(t, newCheckCmd(), "#000000", "rgb(255, 255, 255)", "--size", "normal")
	require.NoError(t, err)
	assert.Contains(t, out, "Text:           #000000")
	assert.Contains(t, out, "Background:     #ffffff")
	assert.Contains(t, out, "Contrast Ratio: 21")
	assert.Contains(t, out, "✅ Accessible! (normal text needs 4.5)")
}

func TestCheck_JSONOutput(t *testing.T) {
	useTestConfig(t, "")

	out, err := run(t, newCheckCmd(), "808080", "#ffffff", "--size", "normal", "--json")
	require.NoError(t, err)

	var report checkReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "#808080", report.Text)
	assert.Equal(t, "normal", report.Size)
	assert.Equal(t, 4.5, report.Threshold)
	assert.InDelta(t, 3.95, report.Ratio, 0.01)
	assert.False(t, report.Accessible)
}

func TestCheck_SizeFromConfig(t *testing.T) {
	useTestConfig(t, "size: normal\n")

	out, err := run(t, newCheckCmd(), "#808080", "#ffffff")
	require.NoError(t, err)
	assert.Contains(t, out, "Not Accessible! (normal text needs 4.5)")

	out, err = run(t, newCheckCmd(), "#808080", "#ffffff", "-s", "large")
	require.NoError(t, err)
	assert.Contains(t, out, "Accessible! (large text needs 3)")
}

func TestCheck_Strict(t *testing.T) {
	useTestConfig(t, "")

	_, err := run(t, newCheckCmd(), "#808080", "#ffffff", "--size", "normal", "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below 4.5 for normal text")

	_, err = run(t, newCheckCmd(), "#000000", "#ffffff", "--size", "normal", "--strict")
	assert.NoError(t, err)
}

func TestCheck_Errors(t *testing.T) {
	useTestConfig(t, "")

	_, err := run(t, newCheckCmd(), "#12", "#ffffff")
	assert.True(t, errors.Is(err, color.ErrMalformedColor))
	assert.Contains(t, err.Error(), "text color")

	_, err = run(t, newCheckCmd(), "#000000", "rgb(300, 0, 0)")
	assert.True(t, errors.Is(err, color.ErrMalformedColor))
	assert.Contains(t, err.Error(), "background color")

	_, err = run(t, newCheckCmd(), "#000000", "#ffffff", "--size", "huge")
	assert.True(t, errors.Is(err, color.ErrUnknownTextSize))

	_, err = run(t, newCheckCmd(), "#000000")
	assert.Error(t, err)
}

func TestCheck_BadConfig(t *testing.T) {
	useTestConfig(t, "size: enormous\n")

	_, err := run(t, newCheckCmd(), "#000000", "#ffffff")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestConvert(t *testing.T) {
	useTestConfig(t, "")

	out, err := run(t, newConvertCmd(), "#ff0000")
	require.NoError(t, err)
	assert.Contains(t, out, "Hex:       #ff0000")
	assert.Contains(t, out, "RGB:       rgb(255, 0, 0)")
	assert.Contains(t, out, "HSL:       hsl(0, 100%, 50.0%)")
	assert.Contains(t, out, "Luminance: 0.2126")

	out, err = run(t, newConvertCmd(), "rgb(0, 128, 128)", "--to", "hex")
	require.NoError(t, err)
	assert.Equal(t, "#008080\n", out)

	_, err = run(t, newConvertCmd(), "#ff0000", "--to", "cmyk")
	assert.Error(t, err)

	_, err = run(t, newConvertCmd(), "bogus")
	assert.True(t, errors.Is(err, color.ErrMalformedColor))
}

func TestNewSession_FlagsOverrideConfig(t *testing.T) {
	useTestConfig(t, "text: \"#111111\"\nbackground_format: rgb\n")
	a, err := setup()
	require.NoError(t, err)

	cmd := &cobra.Command{Use: "ui"}
	addUIFlags(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--background", "hsl(0, 0%, 100%)", "--size", "normal"}))

	session, err := newSession(cmd, a)
	require.NoError(t, err)
	assert.Equal(t, color.RGB{R: 17, G: 17, B: 17}, session.Color(models.Text))
	assert.Equal(t, color.White, session.Color(models.Background))
	assert.Equal(t, parser.FormatHSL, session.Format(models.Background), "typed notation wins over config")
	assert.Equal(t, parser.FormatHex, session.Format(models.Text))
	assert.Equal(t, color.Normal, session.Size())

	require.NoError(t, cmd.Flags().Set("text", "nope"))
	_, err = newSession(cmd, a)
	assert.Error(t, err)
}

func TestVersionAndHelp(t *testing.T) {
	SetVersion("1.2.3", "abc", "today")
	t.Cleanup(func() { SetVersion("dev", "none", "unknown") })

	// subcommands are run directly so cobra does not route back through the root
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "contrast 1.2.3 (commit abc, built today)\n", out.String())

	out.Reset()
	helpCmd.SetOut(&out)
	helpCmd.Run(helpCmd, nil)
	assert.Contains(t, out.String(), "4.5:1 for normal")
	assert.Contains(t, out.String(), "convert <color>")
}
