package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool
	cfgPath string

	// Query flags, shared by the four query commands
	showStats bool
	watchMode bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "figsearch",
	Short: "Find geometric patterns in text-encoded bitmaps",
	Long: `figsearch analyzes bitmap images for specific geometric patterns.

The bitmap format is textual: two whitespace-separated unsigned
integers, height then width, followed by exactly height*width pixels,
each '0' (empty) or '1' (filled), with whitespace freely interspersed.

COMMANDS:
    test      Validates the bitmap file and prints "Valid".
    hline     Finds the longest horizontal line of filled pixels.
    vline     Finds the longest vertical line of filled pixels.
    square    Finds the largest square whose border is fully filled.
    view      Opens an interactive viewer with the results highlighted.

hline, vline and square implicitly validate the file. Successful shape
queries print "row1 col1 row2 col2"; a bitmap without the requested
shape prints "Not found".`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The viewer owns the terminal; logs would tear its UI.
		if cmd.Name() == "view" {
			logger = zap.NewNop()
			return nil
		}

		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file (default: ./figsearch.yaml when present)")

	// Query flags
	for _, c := range []*cobra.Command{testCmd, hlineCmd, vlineCmd, squareCmd} {
		c.Flags().BoolVar(&showStats, "stats", false, "Print scan statistics to stderr")
		c.Flags().BoolVar(&watchMode, "watch", false, "Re-run the query whenever the file changes")
	}

	// Add commands to root
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(hlineCmd)
	rootCmd.AddCommand(vlineCmd)
	rootCmd.AddCommand(squareCmd)
	rootCmd.AddCommand(viewCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
