package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var sevenths bool

func init() {
	keyCmd.Flags().BoolVar(&sevenths, "sevenths", false, "list seventh chords instead of triads")
	rootCmd.AddCommand(keyCmd)
}

var keyCmd = &cobra.Command{
	Use:   "key <key> [numeral]",
	Short: "Lists the diatonic chords of a key",
	Long: `Lists the triads (or with --sevenths the seventh chords) on every
degree of a key such as "Eb" or "F#m". With a roman numeral such as "V7" or
"ii", prints only that chord.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b := newBuilder()
		out := cmd.OutOrStdout()

		if len(args) == 2 {
			c, err := b.Numeral(args[1], args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(out, strings.Join(c, " "))
			return nil
		}

		list := b.Triads
		if sevenths {
			list = b.Sevenths
		}
		chords, err := list(args[0])
		if err != nil {
			return err
		}
		logger.Debug("Listed key", zap.String("key", args[0]), zap.Bool("sevenths", sevenths))
		for _, c := range chords {
			fmt.Fprintln(out, strings.Join(c, " "))
		}
		return nil
	},
}
