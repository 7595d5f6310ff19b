package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"parintest/corpus"
	"parintest/runner"
	"parintest/transform"
	"parintest/types"
)

var (
	runMode         string
	runTransformer  string
	engineCmd       []string
	engineTimeoutMs int
	crossMode       bool
	previewScope    bool
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runMode, "mode", "indent", "transformation mode (indent or paren)")
	runCmd.Flags().StringVar(&runTransformer, "transformer", "subprocess", "transformer type (subprocess or null)")
	runCmd.Flags().StringSliceVar(&engineCmd, "engine-cmd", nil, "engine command argv for the subprocess transformer")
	runCmd.Flags().IntVar(&engineTimeoutMs, "engine-timeout", 0, "per-call engine timeout in milliseconds (0 = none)")
	runCmd.Flags().BoolVar(&crossMode, "cross-mode", false, "check that the other mode preserves each result")
	runCmd.Flags().BoolVar(&previewScope, "preview-cursor-scope", false, "pass previewCursorScope to the engine")
}

var runCmd = &cobra.Command{
	Use:   "run [fixture files]",
	Short: "Decode fixtures and check the engine against them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := types.Mode(runMode)
		if mode != types.ModeIndent && mode != types.ModeParen {
			return fmt.Errorf("invalid mode: %s", runMode)
		}

		tr, err := transform.New(types.TransformerType(runTransformer), &types.TransformerConfig{
			Command:   engineCmd,
			TimeoutMs: engineTimeoutMs,
		})
		if err != nil {
			return err
		}

		r := runner.New(tr, runner.Config{
			Mode:               mode,
			CrossMode:          crossMode,
			PreviewCursorScope: previewScope,
		}, logger)

		for _, path := range args {
			fixtures, err := corpus.Load(path)
			if err != nil {
				return err
			}
			logger.Info("running fixtures", "file", path, "count", len(fixtures))
			r.RunAll(cmd.Context(), fixtures)
		}

		if r.Failures > 0 {
			fmt.Println(failStyle.Render(fmt.Sprintf("FAIL: %d failures across %d fixtures", r.Failures, r.Runs)))
			os.Exit(1)
		}
		fmt.Println(passStyle.Render(fmt.Sprintf("PASS: %d fixtures", r.Runs)))
		return nil
	},
}
