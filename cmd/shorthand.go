package cmd

import (
	"fmt"

	"github.com/jsphweid/harmonics/chord"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(shorthandCmd)
}

var shorthandCmd = &cobra.Command{
	Use:   "shorthand",
	Short: "Lists chord shorthands",
	Long:  `Lists every chord shorthand with its description`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, sh := range chord.Shorthands() {
			desc, _ := chord.Meaning(sh)
			if sh == "" {
				sh = `""`
			}
			fmt.Fprintf(out, "%v\t%v\n", sh, desc)
		}
	},
}
