package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/harmonics/chord"
	"github.com/jsphweid/harmonics/midi"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	showMidi bool
	octave   int
)

func init() {
	buildCmd.Flags().BoolVar(&showMidi, "midi", false, "also print MIDI key numbers and note on messages")
	buildCmd.Flags().IntVar(&octave, "octave", 0, "octave of the root for --midi (default from HARMONICS_OCTAVE)")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build <symbol> | build <root> <shorthand>",
	Short: "Builds a chord",
	Long: `Builds a chord from a symbol such as "Bbm7" or from a root and a
shorthand such as "Bb m7". Run "harmonics shorthand" for every shorthand.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var c chord.Chord
		var err error
		if len(args) == 2 {
			c, err = chord.Build(args[0], args[1])
		} else {
			c, err = chord.FromSymbol(args[0])
		}
		if err != nil {
			return err
		}
		logger.Debug("Built chord", zap.Strings("args", args), zap.Strings("notes", c))

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, strings.Join(c, " "))
		if !showMidi {
			return nil
		}

		o := cfg.Octave
		if cmd.Flags().Changed("octave") {
			o = octave
		}
		keys, err := midi.Keys(c, o)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, midi.ChordKey(keys))
		for _, msg := range midi.Hex(midi.NoteOns(keys, cfg.Channel, cfg.Velocity)) {
			fmt.Fprintln(out, msg)
		}
		return nil
	},
}
