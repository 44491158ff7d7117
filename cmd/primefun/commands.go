package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/primefun/guard"
	"github.com/katalvlaran/primefun/ktuple"
	"github.com/katalvlaran/primefun/sieve"
	"github.com/katalvlaran/primefun/twins"
)

// app carries the resolved config and logger into every command.
type app struct {
	cfg *config
	log *slog.Logger
	out io.Writer
}

// newRootCmd builds the command tree writing results to out and
// diagnostics (logs, cobra errors) to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{cfg: newConfig(), out: out}

	root := &cobra.Command{
		Use:          "primefun",
		Short:        "Primes, twin primes and prime k-tuples up to a bound",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.validate(); err != nil {
				return err
			}
			a.log = a.cfg.newLogger(errOut)

			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfg.format, "format", "f", defaultFormat, "output format: text|json|yaml")
	flags.IntVar(&a.cfg.maxBound, "max-bound", defaultMaxBound, "refuse bounds larger than this")
	flags.BoolVarP(&a.cfg.verbose, "verbose", "v", false, "log diagnostics to stderr")

	root.AddCommand(
		a.sieveCmd(),
		a.isPrimeCmd(),
		a.twinsCmd(),
		a.tuplesCmd(),
		a.patternsCmd(),
	)

	return root
}

func (a *app) sieveCmd() *cobra.Command {
	var asTable bool
	cmd := &cobra.Command{
		Use:   "sieve <bound>",
		Short: "List the primes ≤ bound",
		Long:  "List the primes ≤ bound, or with --table the primality flag of every value 0..bound.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bound, err := a.bound(args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			if asTable {
				flags, err := sieve.Table(bound)
				if err != nil {
					return err
				}
				a.log.Debug("sieve table", "bound", bound, "len", len(flags), "elapsed", time.Since(start))

				return render(a.out, a.cfg.format, flags)
			}

			primes, err := sieve.Primes(bound)
			if err != nil {
				return err
			}
			a.log.Debug("sieve", "bound", bound, "primes", len(primes), "elapsed", time.Since(start))

			return render(a.out, a.cfg.format, primes)
		},
	}
	cmd.Flags().BoolVarP(&asTable, "table", "t", false, "print the boolean table instead of the primes")

	return cmd
}

func (a *app) isPrimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "isprime <n>",
		Short: "Report whether n is prime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.bound(args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			ok, err := sieve.IsPrime(n)
			if err != nil {
				return err
			}
			a.log.Debug("isprime", "n", n, "prime", ok, "elapsed", time.Since(start))

			return render(a.out, a.cfg.format, primality{N: n, Prime: ok})
		},
	}
}

func (a *app) twinsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "twins <bound>",
		Short: "List the twin prime pairs ≤ bound",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bound, err := a.bound(args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			pairs, err := twins.Find(bound)
			if err != nil {
				return err
			}
			a.log.Debug("twins", "bound", bound, "pairs", len(pairs), "elapsed", time.Since(start))

			return render(a.out, a.cfg.format, pairs)
		},
	}
}

func (a *app) tuplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tuples <bound> <pattern>",
		Short: "List prime tuples ≤ bound for a pattern",
		Long:  "List prime tuples ≤ bound. pattern is cousin, sexy or a tuple size 3..13 (see `primefun patterns`).",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bound, err := a.bound(args[0])
			if err != nil {
				return err
			}
			p, err := ktuple.Lookup(args[1])
			if err != nil {
				return err
			}
			start := time.Now()
			tuples, err := ktuple.Find(bound, p)
			if err != nil {
				return err
			}
			a.log.Debug("tuples", "bound", bound, "pattern", p.Key, "tuples", len(tuples), "elapsed", time.Since(start))

			return render(a.out, a.cfg.format, tuples)
		},
	}
}

func (a *app) patternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "Show the pattern table used by tuples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(a.out, a.cfg.format, patternRows(ktuple.Patterns()))
		},
	}
}

// bound parses a textual argument and applies --max-bound.
func (a *app) bound(arg string) (int, error) {
	n, err := guard.Parse(arg)
	if err != nil {
		return 0, err
	}
	if n > a.cfg.maxBound {
		return 0, fmt.Errorf("%w: %d > %d", errBoundTooLarge, n, a.cfg.maxBound)
	}

	return n, nil
}
