package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oppia/explord/internal/exploration"
)

var validateCmd = &cobra.Command{
	Use:   "validate <lesson.json>",
	Short: "Check a lesson file against the lesson schema and graph rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		exp, err := exploration.Decode(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		fmt.Printf("ok: %s v%d %q, %d states, starts at %q\n",
			exp.ID, exp.Version, exp.Title, len(exp.States), exp.InitStateName)
		return nil
	},
}
