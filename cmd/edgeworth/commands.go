package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/edgeworth"
	"github.com/katalvlaran/edgeworth/config"
	"github.com/katalvlaran/edgeworth/economy"
	"github.com/katalvlaran/edgeworth/httpapi"
	"github.com/katalvlaran/edgeworth/logger"
	"github.com/katalvlaran/edgeworth/mrs"
	"github.com/katalvlaran/edgeworth/utility"
)

type rootFlags struct {
	configPath string
}

func newRootCmd(log *logger.Log) *cobra.Command {
	rf := &rootFlags{}
	root := &cobra.Command{
		Use:           "edgeworth",
		Short:         "Indifference curves, contract curve and Walrasian equilibria of a 2×2 exchange economy",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&rf.configPath, "config", "", "path to YAML configuration (defaults when empty)")

	root.AddCommand(newSolveCmd(rf), newMRSCmd(), newServeCmd(rf, log))

	return root
}

// loadConfig reads --config and applies the environment overrides.
func loadConfig(rf *rootFlags) (*config.Config, error) {
	return config.Load(rf.configPath)
}

type solveFlags struct {
	utilityA, utilityB string
	endowment          economy.Endowment
	pretty             bool
	timeout            time.Duration
}

func newSolveCmd(rf *rootFlags) *cobra.Command {
	sf := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one economy and print the result as JSON",
		Example: `  edgeworth solve --utility-a "x**0.5 * y**0.5" --utility-b "x**0.3 * y**0.7" \
    --ax 10 --ay 5 --bx 5 --by 10 --pretty`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(rf)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), sf.timeout)
			defer cancel()

			res, err := edgeworth.Solve(ctx, edgeworth.Problem{
				UtilityA:  sf.utilityA,
				UtilityB:  sf.utilityB,
				Endowment: sf.endowment,
			}, cfg.Solver.Options())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if sf.pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(res)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&sf.utilityA, "utility-a", "x**0.5 * y**0.5", "utility of agent A over x and y")
	fs.StringVar(&sf.utilityB, "utility-b", "x**0.3 * y**0.7", "utility of agent B over x and y")
	endowmentFlags(fs, &sf.endowment)
	fs.BoolVar(&sf.pretty, "pretty", false, "indent the JSON output")
	fs.DurationVar(&sf.timeout, "timeout", time.Minute, "abort the solve after this long")

	return cmd
}

func endowmentFlags(fs *pflag.FlagSet, e *economy.Endowment) {
	fs.Float64Var(&e.AX, "ax", 10, "agent A's initial amount of good x")
	fs.Float64Var(&e.AY, "ay", 5, "agent A's initial amount of good y")
	fs.Float64Var(&e.BX, "bx", 5, "agent B's initial amount of good x")
	fs.Float64Var(&e.BY, "by", 10, "agent B's initial amount of good y")
}

func newMRSCmd() *cobra.Command {
	var (
		expr string
		x, y float64
		step float64
	)
	cmd := &cobra.Command{
		Use:   "mrs",
		Short: "Print the marginal rate of substitution of a utility at (x, y)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := utility.Parse(expr, utility.WithProbe(x, y))
			if err != nil {
				return err
			}
			dx, dy := mrs.Partials(u, x, y, mrs.Options{Step: step})
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "u=%g du/dx=%g du/dy=%g mrs=%g\n",
				u.Eval(x, y), dx, dy, mrs.MRS(u, x, y, mrs.Options{Step: step}))
			return err
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&expr, "utility", "", "utility expression over x and y")
	fs.Float64Var(&x, "x", 1, "amount of good x")
	fs.Float64Var(&y, "y", 1, "amount of good y")
	fs.Float64Var(&step, "step", mrs.DefaultStep, "forward-difference step")
	_ = cmd.MarkFlagRequired("utility")

	return cmd
}

func newServeCmd(rf *rootFlags, log *logger.Log) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve POST /v1/solve, /healthz and /metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(rf)
			if err != nil {
				return err
			}
			if err := log.Configure(cfg.Logging); err != nil {
				return err
			}
			log.WithFields(logger.Fields{
				"addr":    cfg.Server.Addr,
				"workers": cfg.Solver.Workers,
			}).Info("starting edgeworth")

			ln, err := net.Listen("tcp", cfg.Server.Addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", cfg.Server.Addr, err)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return httpapi.Serve(ctx, ln, cfg, log)
		},
	}
}
