package calculator

// FloorRisk is one row of the published base risk table
type FloorRisk struct {
	Floor    int     `json:"floor"`
	BaseRisk float64 `json:"base_risk"`
	Label    string  `json:"danger_label"`
}

// RiskTable is a read-only view of the estimator's tables for display
type RiskTable struct {
	Floors      []FloorRisk    `json:"floors"`
	DefaultRisk float64        `json:"default_risk"`
	MinRisk     float64        `json:"min_risk"`
	MaxRisk     float64        `json:"max_risk"`
	Gain        GainConfig     `json:"gain"`
	Modifiers   ModifierConfig `json:"modifiers"`
}

// tableOverflow is how many floors past the deepest explicit entry the table shows
const tableOverflow = 2

// RiskTable lists base risk per floor, including floors that fall back to the default
func (e *Estimator) RiskTable() RiskTable {
	cfg := e.Config()
	deepest := cfg.FloorRisk.maxTableFloor() + tableOverflow

	floors := make([]FloorRisk, 0, deepest)
	for floor := 1; floor <= deepest; floor++ {
		base := e.BaseRisk(floor)
		floors = append(floors, FloorRisk{Floor: floor, BaseRisk: base, Label: e.DangerLabel(base)})
	}

	return RiskTable{
		Floors:      floors,
		DefaultRisk: cfg.FloorRisk.Default,
		MinRisk:     cfg.FloorRisk.Min,
		MaxRisk:     cfg.FloorRisk.Max,
		Gain:        cfg.Gain,
		Modifiers:   cfg.Modifiers,
	}
}
