// Package shell implements the interactive consultation loop.
//
// The shell owns no simulation state: it prompts for the four scenario
// parameters, calls the engine once per consultation, applies the decision
// rule, and prints the raw scalars alongside the recommendation. All input
// validation lives here; the engine never sees malformed text.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/mwinters/gutcheck/internal/config"
	"github.com/mwinters/gutcheck/internal/decision"
	"github.com/mwinters/gutcheck/internal/engine"
	"github.com/mwinters/gutcheck/internal/logging"
)

// Shell runs the interactive consultation loop over an arbitrary
// reader/writer pair so tests can script it.
type Shell struct {
	in    *bufio.Scanner
	out   io.Writer
	cfg   *config.Config
	log   *slog.Logger
	trace *logging.TraceLogger
}

// New creates a shell. trace may be nil; tracing is then disabled.
func New(in io.Reader, out io.Writer, cfg *config.Config, log *slog.Logger, trace *logging.TraceLogger) *Shell {
	return &Shell{
		in:    bufio.NewScanner(in),
		out:   out,
		cfg:   cfg,
		log:   log,
		trace: trace,
	}
}

// Run executes the loop until the user quits or input ends.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, "Welcome to gutcheck. Describe a yes/no decision, rate its cost,")
	fmt.Fprintln(s.out, "benefit and risk, and the simulation will weigh both futures.")

	for {
		fmt.Fprint(s.out, "\nEnter your decision question (or 'quit' to exit): ")
		question, ok := s.readLine()
		if !ok {
			fmt.Fprintln(s.out, "\nGoodbye!")
			return nil
		}
		if isExit(question) {
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}

		params, err := s.promptParams()
		if err != nil {
			if err == io.EOF {
				fmt.Fprintln(s.out, "\nGoodbye!")
				return nil
			}
			fmt.Fprintln(s.out, "Invalid input. Please enter numeric values for the parameters.")
			continue
		}

		outcome, err := engine.Simulate(params)
		if err != nil {
			fmt.Fprintf(s.out, "Simulation rejected the parameters: %v\n", err)
			continue
		}
		rec := decision.Decide(outcome)

		id := uuid.New().String()
		s.log.Debug("consultation complete", "id", id, "recommendation", rec.String())
		s.trace.Log(map[string]any{
			"id":             id,
			"question":       question,
			"cost_frac":      params.CostFrac,
			"benefit_frac":   params.BenefitFrac,
			"risk_frac":      params.RiskFrac,
			"horizon":        params.Horizon,
			"outcome":        outcome,
			"recommendation": rec.String(),
		})

		s.printOutcome(question, outcome, rec)
	}
}

// promptParams collects the three fractions and the horizon. A single
// malformed value aborts the whole batch; the caller restarts the loop.
func (s *Shell) promptParams() (engine.Params, error) {
	cost, err := s.promptFloat("On a scale of 0 to 1, how costly is the action? ")
	if err != nil {
		return engine.Params{}, err
	}
	benefit, err := s.promptFloat("On a scale of 0 to 1, how much long-term benefit do you expect? ")
	if err != nil {
		return engine.Params{}, err
	}
	risk, err := s.promptFloat("On a scale of 0 to 1, how volatile is the environment? ")
	if err != nil {
		return engine.Params{}, err
	}
	horizon, err := s.promptInt("How many time steps ahead should the model consider (e.g. 50)? ")
	if err != nil {
		return engine.Params{}, err
	}

	return engine.Params{
		InitialEnergy: s.cfg.Simulation.InitialEnergy,
		CostFrac:      cost,
		BenefitFrac:   benefit,
		RiskFrac:      risk,
		Horizon:       horizon,
		Scenarios:     s.cfg.Simulation.Scenarios,
	}, nil
}

func (s *Shell) promptFloat(prompt string) (float64, error) {
	fmt.Fprint(s.out, prompt)
	line, ok := s.readLine()
	if !ok {
		return 0, io.EOF
	}
	return strconv.ParseFloat(strings.TrimSpace(line), 64)
}

func (s *Shell) promptInt(prompt string) (int, error) {
	fmt.Fprint(s.out, prompt)
	line, ok := s.readLine()
	if !ok {
		return 0, io.EOF
	}
	return strconv.Atoi(strings.TrimSpace(line))
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Shell) printOutcome(question string, o engine.Outcome, rec decision.Recommendation) {
	fmt.Fprintln(s.out)
	if q := strings.TrimSpace(question); q != "" {
		fmt.Fprintf(s.out, "Weighing: %s\n", q)
	}
	fmt.Fprintf(s.out, "  Survival rate if you act (YES):     %.2f%%\n", o.SurvivalYes*100)
	fmt.Fprintf(s.out, "  Average ending energy (YES):        %.2f\n", o.AvgEnergyYes)
	fmt.Fprintf(s.out, "  Survival rate if you decline (NO):  %.2f%%\n", o.SurvivalNo*100)
	fmt.Fprintf(s.out, "  Average ending energy (NO):         %.2f\n", o.AvgEnergyNo)
	fmt.Fprintf(s.out, "\nGut decision: %s\n", rec)
}

// isExit reports whether line is an exit token, case-insensitively.
func isExit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "quit", "exit":
		return true
	}
	return false
}
