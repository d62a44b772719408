package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/rubric"
)

func newRubricCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rubric",
		Short: "Print the scoring rubric as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := rubric.Default().YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
