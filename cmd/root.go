package cmd

import (
	"fmt"

	"github.com/jsphweid/harmonics/chord"
	"github.com/jsphweid/harmonics/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	fixVII7 bool

	cfg    constants.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "harmonics",
	Short: "Chord and harmony calculator",
	Long: `Builds chords from a root and a chord shorthand, lists the diatonic
triads and sevenths of a key and resolves roman numerals.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = constants.LoadConfig()
		if err != nil {
			return err
		}

		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&fixVII7, "fix-vii7", false, "resolve vii7 to the subtonic seventh instead of the triad")
}

func newBuilder() *chord.Builder {
	if fixVII7 || cfg.FixVII7 {
		return chord.NewBuilder(chord.WithSeventhNumeralFix())
	}
	return chord.NewBuilder()
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
