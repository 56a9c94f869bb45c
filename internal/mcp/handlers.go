package mcp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mwinters/gutcheck/internal/decision"
	"github.com/mwinters/gutcheck/internal/engine"
)

// registerTools registers all gutcheck MCP tools with the server.
func (s *Server) registerTools() error {
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "gut_decide",
		Description: "Simulate both futures of a yes/no decision (act vs decline) and return survival rates, average ending energy, and a recommendation",
	}, s.handleDecide)

	return nil
}

// handleDecide runs one simulation and applies the decision rule.
func (s *Server) handleDecide(ctx context.Context, req *sdk.CallToolRequest, args DecideInput) (*sdk.CallToolResult, DecideOutput, error) {
	params := engine.Params{
		InitialEnergy: args.InitialEnergy,
		CostFrac:      args.Cost,
		BenefitFrac:   args.Benefit,
		RiskFrac:      args.Risk,
		Horizon:       args.Horizon,
		Scenarios:     args.Scenarios,
	}
	if params.InitialEnergy == 0 {
		params.InitialEnergy = s.cfg.Simulation.InitialEnergy
	}
	if params.Scenarios == 0 {
		params.Scenarios = s.cfg.Simulation.Scenarios
	}

	outcome, err := engine.Simulate(params)
	if err != nil {
		return nil, DecideOutput{}, fmt.Errorf("simulation failed: %w", err)
	}
	rec := decision.Decide(outcome)

	out := DecideOutput{
		ConsultationID: uuid.New().String(),
		SurvivalYes:    outcome.SurvivalYes,
		SurvivalNo:     outcome.SurvivalNo,
		AvgEnergyYes:   outcome.AvgEnergyYes,
		AvgEnergyNo:    outcome.AvgEnergyNo,
		Recommendation: rec.String(),
		Message: fmt.Sprintf("recommend %s (survival %.1f%% vs %.1f%%, energy %.2f vs %.2f)",
			rec, outcome.SurvivalYes*100, outcome.SurvivalNo*100, outcome.AvgEnergyYes, outcome.AvgEnergyNo),
	}

	return nil, out, nil
}
