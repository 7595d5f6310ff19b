package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"parintest/corpus"
	"parintest/fixture"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [fixture files]",
	Short: "Validate fixture annotations without running an engine",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		total, malformed := 0, 0
		for _, path := range args {
			fixtures, err := corpus.Load(path)
			if err != nil {
				return err
			}
			for i := range fixtures {
				total++
				if _, err := fixture.Decode(fixtures[i].In.Text); err != nil {
					malformed++
					logger.Error("malformed fixture", "file", path,
						"fileLineNo", fixtures[i].In.FileLineNo, "reason", err.Error())
				}
			}
		}

		if malformed > 0 {
			fmt.Println(failStyle.Render(fmt.Sprintf("FAIL: %d of %d fixtures malformed", malformed, total)))
			os.Exit(1)
		}
		fmt.Println(passStyle.Render(fmt.Sprintf("OK: %d fixtures well-formed", total)))
		return nil
	},
}
