package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vippsas/layeredspan/attrstore"
	"github.com/vippsas/layeredspan/doc"
	"github.com/vippsas/layeredspan/examples"
	"github.com/vippsas/layeredspan/resolverlib"
	"github.com/vippsas/layeredspan/scope"
)

var runCmd = &cobra.Command{
	Use:   "run <textfile>",
	Short: "Run the wired resolvers over a text file and print the populated attributes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("need to specify argument <textfile>")
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		p, err := buildPipeline()
		if err != nil {
			return err
		}

		d, diag, err := p.RunOnText(resolverlib.DefaultTokenizer, string(raw))
		if err != nil {
			return err
		}

		modalType := attrstore.TypeOf[examples.Modal]()
		for i, ln := range d.Lines() {
			fmt.Printf("=== line %d: %q ===\n", i, ln.Text())
			resolverlib.Render(os.Stdout, ln, modalType)
		}

		for _, occ := range doc.QueryDoc[scope.Operator](d) {
			fmt.Printf("scope operator %s trigger=%s\n", occ.Value.Dimension, occ.Span)
		}

		if diag != nil && len(diag.Warnings) > 0 {
			fmt.Println("--- diagnostics ---")
			fmt.Println(diag.Error())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
