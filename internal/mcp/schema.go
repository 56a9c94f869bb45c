package mcp

// DecideInput defines the input for the gut_decide tool.
type DecideInput struct {
	Question      string  `json:"question,omitempty" jsonschema:"The yes/no question being weighed (display only; does not affect the simulation)"`
	Cost          float64 `json:"cost" jsonschema:"Resource cost of the action as a fraction of initial energy (0 to 1)"`
	Benefit       float64 `json:"benefit" jsonschema:"Expected long-term benefit as a fraction (0 to 1); reduces per-step decay on the action branch"`
	Risk          float64 `json:"risk" jsonschema:"Environmental volatility as a fraction (0 to 1); scales per-step noise"`
	Horizon       int     `json:"horizon" jsonschema:"Number of time steps to simulate"`
	InitialEnergy float64 `json:"initial_energy,omitempty" jsonschema:"Starting energy per trajectory (default 100)"`
	Scenarios     int     `json:"scenarios,omitempty" jsonschema:"Monte Carlo ensemble size (default 1000)"`
}

// DecideOutput defines the output for the gut_decide tool.
type DecideOutput struct {
	ConsultationID string  `json:"consultation_id" jsonschema:"Unique ID assigned to this consultation"`
	SurvivalYes    float64 `json:"survival_yes" jsonschema:"Fraction of trajectories ending alive if the action is taken"`
	SurvivalNo     float64 `json:"survival_no" jsonschema:"Fraction of trajectories ending alive if the action is declined"`
	AvgEnergyYes   float64 `json:"avg_energy_yes" jsonschema:"Mean terminal energy if the action is taken"`
	AvgEnergyNo    float64 `json:"avg_energy_no" jsonschema:"Mean terminal energy if the action is declined"`
	Recommendation string  `json:"recommendation" jsonschema:"YES or NO"`
	Message        string  `json:"message" jsonschema:"Human-readable result summary"`
}
