package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the planned execution order for the wired resolvers",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := buildPipeline()
		if err != nil {
			return err
		}
		plan, err := p.InspectPlan()
		if err != nil {
			return err
		}
		fmt.Println("line steps:")
		for _, id := range plan.LineSteps {
			fmt.Printf("  %s\n", id)
		}
		fmt.Println("document steps:")
		for _, id := range plan.DocSteps {
			fmt.Printf("  %s\n", id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
