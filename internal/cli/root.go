package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/lucrnz/humanms"
	"github.com/lucrnz/humanms/internal/logging"
	"github.com/lucrnz/humanms/internal/version"
)

var (
	long      bool
	maxLength int
	pretty    bool
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "humanms [flags] VALUE...",
	Short: "Convert between human-readable durations and milliseconds",
	Long: `humanms

Converts duration strings like "2 hours" or "1.5h" into millisecond
counts, and millisecond counts back into readable durations. Each
argument is converted independently: numeric arguments are formatted,
everything else is parsed.
`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    run,
	Version: version.Print(),
}

func init() {
	rootCmd.Flags().BoolVarP(&long, "long", "l", false, "Spell out the unit when formatting (\"1 hour\" instead of \"1h\")")
	rootCmd.Flags().IntVar(&maxLength, "max-length", humanms.DefaultMaxLength, "Maximum accepted length for duration strings")
	rootCmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Group digits of millisecond results (e.g. 31,557,600,000)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")

	// Silence usage output for runtime errors, but show it for flag errors
	// SilenceErrors is true so we can control error output format in main()
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	// Show usage only when there's a flag parsing error
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		_ = cmd.Usage()
		return err
	})
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(logLevel, logFormat)
	if err != nil {
		return err
	}

	if maxLength <= 0 {
		return fmt.Errorf("--max-length must be positive, got %d", maxLength)
	}

	opts := humanms.Options{MaxLength: maxLength, Long: long}
	for _, arg := range args {
		out, err := convertArg(arg, opts)
		if err != nil {
			return fmt.Errorf("cannot convert %q: %w", arg, err)
		}
		logger.Debug("converted", "input", arg, "output", out)
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}

// convertArg dispatches a single command-line argument. Arguments
// always arrive as strings, so numeric-looking ones are promoted to
// float64 first; the library dispatcher does the rest.
func convertArg(arg string, opts humanms.Options) (string, error) {
	var value any = arg
	if n, err := strconv.ParseFloat(strings.TrimSpace(arg), 64); err == nil {
		value = n
	}

	out, err := humanms.Convert(value, opts)
	if err != nil {
		return "", err
	}

	switch v := out.(type) {
	case string:
		return v, nil
	case float64:
		if pretty {
			return humanize.Commaf(v), nil
		}
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return fmt.Sprint(out), nil
	}
}
