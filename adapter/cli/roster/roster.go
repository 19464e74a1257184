// Package roster wires the solve and solve-senior commands onto the cobra
// command tree, reading a JSON request from a file (or stdin) and writing
// the JSON response to a file (or stdout).
package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dutyroster/engine/adapter/cli"
	"github.com/dutyroster/engine/internal/roster"
	"github.com/dutyroster/engine/internal/roster/domain"
	"github.com/dutyroster/engine/internal/roster/response"
	"github.com/dutyroster/engine/internal/roster/senior"
	"github.com/dutyroster/engine/internal/roster/settings"
	"github.com/dutyroster/engine/pkg/observability"
)

// Cmd is the roster command group.
var Cmd = &cobra.Command{
	Use:   "roster",
	Short: "Solve duty rosters",
	Long:  `Assign staff to calendar duty slots under hard coverage and fairness constraints.`,
}

var (
	inputPath  string
	outputPath string
	seed       int64
	timeLimit  int
	workers    int

	// defaultSettings/defaultSeniorSettings back the two commands below.
	// SetDefaults overrides them with the env-loaded table once config.Load
	// has run; until then they fall back to the published defaults, so the
	// commands still work standalone (e.g. under test) without a config
	// pass.
	defaultSettings       = settings.Default()
	defaultSeniorSettings = settings.DefaultSenior()
)

// SetDefaults installs the weight tables the solve and solve-senior
// commands use, overriding the published defaults with whatever config.Load
// produced (including any PENALTY_*/SCHEDULER_* environment overrides).
func SetDefaults(full, senior settings.Settings) {
	defaultSettings = full
	defaultSeniorSettings = senior
}

func init() {
	Cmd.AddCommand(solveCmd)
	Cmd.AddCommand(solveSeniorCmd)

	for _, c := range []*cobra.Command{solveCmd, solveSeniorCmd} {
		c.Flags().StringVarP(&inputPath, "input", "i", "", "request JSON file (default stdin)")
		c.Flags().StringVarP(&outputPath, "output", "o", "", "response JSON file (default stdout)")
		c.Flags().Int64Var(&seed, "seed", 0, "override the scheduler random seed")
		c.Flags().IntVar(&timeLimit, "time-limit", 0, "override the scheduler time limit, in seconds")
		c.Flags().IntVar(&workers, "workers", 0, "override the number of parallel search workers")
	}
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a full-variant roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, roster.Compute, defaultSettings)
	},
}

var solveSeniorCmd = &cobra.Command{
	Use:   "solve-senior",
	Short: "Solve a senior (duty-A-only) roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, senior.Compute, defaultSeniorSettings)
	},
}

type computeFunc func(ctx context.Context, req domain.Request, w settings.Settings) (response.Response, error)

func run(cmd *cobra.Command, compute computeFunc, w settings.Settings) error {
	in := os.Stdin
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	req, err := domain.DecodeRequest(in)
	if err != nil {
		return err
	}

	applyOverrides(&w)

	var resp response.Response
	timedErr := observability.TimeOperation(cmd.Context(), cli.Logger(), cmd.Name(), func() error {
		var computeErr error
		resp, computeErr = compute(cmd.Context(), req, w)
		return computeErr
	})
	if timedErr != nil {
		return timedErr
	}

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("open output: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func applyOverrides(w *settings.Settings) {
	if seed != 0 {
		w.SchedulerRandomSeed = seed
	}
	if timeLimit != 0 {
		w.SchedulerTimeLimitSeconds = timeLimit
	}
	if workers != 0 {
		w.SchedulerWorkers = workers
	}
}
