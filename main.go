package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/wildfunctions/formal_series/pkg/coeff"
)

var (
	// Global flags
	verbose  bool
	ringName string
	terms    int
	format   string
	atValue  string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "formal_series",
	Short: "formal_series - exact power series arithmetic from the command line",
	Long: `formal_series prints, evaluates, and tabulates formal power series.

Series are built lazily over an exact coefficient ring, so every printed
coefficient is the true value, not a floating-point estimate. The catalog
holds the classical series (` + strings.Join(Names(), ", ") + `).

Coefficient rings: rational (exact, default), float (256-bit binary),
decimal (19 significant digits).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
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

// listCmd prints the catalog
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the catalog series",
	RunE:  runList,
}

// showCmd prints leading coefficients of one series
var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print the leading coefficients of a catalog series",
	Long: `Prints the first --terms coefficients of a catalog series.

Examples:
  formal_series show exp
  formal_series show catalan --terms 12
  formal_series show sqrt1p --format latex`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

// evalCmd evaluates a truncated series at a point
var evalCmd = &cobra.Command{
	Use:   "eval [name]",
	Short: "Evaluate the truncated series at a point",
	Long: `Sums the first --terms terms of a catalog series at x = --at.

Over the rational ring the partial sum is exact. A float rendering is
printed alongside for orientation.

Examples:
  formal_series eval exp --at 1
  formal_series eval geom --at 1/2 --terms 20`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

// tableCmd tabulates several series side by side
var tableCmd = &cobra.Command{
	Use:   "table [name]...",
	Short: "Tabulate several series side by side",
	Long: `Builds each named series in its own goroutine and prints their
coefficients as aligned columns, one row per power of x. With no
arguments the whole catalog is tabulated.`,
	Args: cobra.ArbitraryArgs,
	RunE: runTable,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&ringName, "ring", "rational", "coefficient ring (rational, float, decimal)")
	rootCmd.PersistentFlags().IntVarP(&terms, "terms", "n", 10, "number of coefficients to compute")
	rootCmd.PersistentFlags().StringVar(&format, "format", "text", "output format (text, json, latex)")

	evalCmd.Flags().StringVar(&atValue, "at", "1", "evaluation point, rational (1/2) or decimal (0.5) notation")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(tableCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runList(cmd *cobra.Command, args []string) error {
	WriteCatalog(os.Stdout, entries[coeff.Rational]())
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	name := args[0]
	switch ringName {
	case "rational":
		return showSeries[coeff.Rational](name)
	case "float":
		return showSeries[coeff.Float](name)
	case "decimal":
		return showSeries[coeff.Decimal](name)
	default:
		return fmt.Errorf("unknown ring: %s (want rational, float or decimal)", ringName)
	}
}

func runEval(cmd *cobra.Command, args []string) error {
	name := args[0]
	switch ringName {
	case "rational":
		return evalSeries(name, coeff.ParseRational)
	case "float":
		return evalSeries(name, coeff.ParseFloat)
	case "decimal":
		return evalSeries(name, coeff.ParseDecimal)
	default:
		return fmt.Errorf("unknown ring: %s (want rational, float or decimal)", ringName)
	}
}

func runTable(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = Names()
	}
	switch ringName {
	case "rational":
		return tableSeries[coeff.Rational](cmd, names)
	case "float":
		return tableSeries[coeff.Float](cmd, names)
	case "decimal":
		return tableSeries[coeff.Decimal](cmd, names)
	default:
		return fmt.Errorf("unknown ring: %s (want rational, float or decimal)", ringName)
	}
}

// showSeries builds one catalog series over ring T and renders its prefix.
func showSeries[T Coeff[T]](name string) error {
	e, err := Get[T](name)
	if err != nil {
		return err
	}
	logger.Debug("building series",
		zap.String("series", name),
		zap.String("ring", ringName),
		zap.Int("terms", terms))
	f, err := e.Build()
	if err != nil {
		return err
	}
	r := NewReport(name, ringName, f, terms)
	switch format {
	case "text":
		WriteTextReport(os.Stdout, r)
		return nil
	case "json":
		return WriteJSONReport(os.Stdout, r)
	case "latex":
		WriteLaTeXReport(os.Stdout, r)
		return nil
	default:
		return fmt.Errorf("unknown format: %s (want text, json or latex)", format)
	}
}

// evalSeries sums the first terms of one catalog series at the --at point.
func evalSeries[T Coeff[T]](name string, parse func(string) (T, error)) error {
	e, err := Get[T](name)
	if err != nil {
		return err
	}
	x, err := parse(atValue)
	if err != nil {
		return err
	}
	logger.Debug("evaluating series",
		zap.String("series", name),
		zap.String("ring", ringName),
		zap.String("at", atValue),
		zap.Int("terms", terms))
	f, err := e.Build()
	if err != nil {
		return err
	}
	v := f.Eval(x, terms)
	r := EvalReport{
		Name:  name,
		Ring:  ringName,
		At:    atValue,
		Terms: terms,
		Value: v.String(),
		Float: v.Float64(),
	}
	switch format {
	case "text":
		WriteEvalReport(os.Stdout, r)
		return nil
	case "json":
		return WriteJSONReport(os.Stdout, r)
	default:
		return fmt.Errorf("unknown format: %s (want text or json)", format)
	}
}

// tableSeries builds each named series in its own goroutine and renders
// the collected prefixes side by side. Forcing is safe across goroutines,
// so the builds share nothing but the catalog.
func tableSeries[T Coeff[T]](cmd *cobra.Command, names []string) error {
	reports := make([]Report, len(names))
	g, gctx := errgroup.WithContext(cmd.Context())
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			e, err := Get[T](name)
			if err != nil {
				return err
			}
			f, err := e.Build()
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			reports[i] = NewReport(name, ringName, f, terms)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Debug("tabulated series", zap.Int("count", len(reports)), zap.Int("terms", terms))
	switch format {
	case "text":
		WriteTable(os.Stdout, reports)
		return nil
	case "json":
		return WriteJSONReport(os.Stdout, reports)
	default:
		return fmt.Errorf("unknown format: %s (want text or json)", format)
	}
}
