package domain

// PlayerClass is the class a player runs with.
// Values match the in-game names shown to players.
type PlayerClass string

const (
	ClassOddJobber    PlayerClass = "Odd Jobber"
	ClassVeterinarian PlayerClass = "Veterinarian"
	ClassChef         PlayerClass = "Chef"
	ClassSprinter     PlayerClass = "Sprinter"
	ClassBaseballer   PlayerClass = "Baseballer"
	ClassPorter       PlayerClass = "Porter"
)

// PlayerClasses lists every class in display order
var PlayerClasses = []PlayerClass{
	ClassOddJobber,
	ClassVeterinarian,
	ClassChef,
	ClassSprinter,
	ClassBaseballer,
	ClassPorter,
}

// TimeLeftTier is the time pressure before the elevator vote.
// The zero value means the caller did not report it.
type TimeLeftTier string

const (
	TimeLeftUnknown TimeLeftTier = ""
	TimeLeftHigh    TimeLeftTier = "HIGH"
	TimeLeftMid     TimeLeftTier = "MID"
	TimeLeftLow     TimeLeftTier = "LOW"
)

// RiskPreference is how greedy the squad wants to play
type RiskPreference string

const (
	RiskSafe   RiskPreference = "SAFE"
	RiskNormal RiskPreference = "NORMAL"
	RiskRisky  RiskPreference = "RISKY"
)

// Decision is the recommendation derived from the EV comparison
type Decision string

const (
	DecisionEvacuate Decision = "EVACUATE"
	DecisionHold     Decision = "HOLD"
	DecisionDeeper   Decision = "DEEPER"
)

// Tone is a rendering hint for the decision
type Tone string

const (
	ToneDanger  Tone = "danger"
	ToneNeutral Tone = "neutral"
	ToneSuccess Tone = "success"
)

// CalculatorInput describes the squad's situation at an elevator vote.
// Validation tags are enforced at caller boundaries; the estimator itself
// accepts any value and clamps.
type CalculatorInput struct {
	CurrentFloor   int            `json:"current_floor" validate:"min=1"`
	TargetFloor    int            `json:"target_floor" validate:"gtfield=CurrentFloor"`
	AlivePlayers   int            `json:"alive_players" validate:"min=1,max=4"`
	PlayerClass    PlayerClass    `json:"player_class" validate:"required,player_class"`
	InventoryValue float64        `json:"inventory_value" validate:"min=0"`
	TimeLeftTier   TimeLeftTier   `json:"time_left_tier,omitempty" validate:"omitempty,oneof=HIGH MID LOW"`
	RiskPreference RiskPreference `json:"risk_preference" validate:"required,oneof=SAFE NORMAL RISKY"`
}

// CalculationResult is the derived recommendation for one CalculatorInput
type CalculationResult struct {
	DeathProb     float64  `json:"death_prob"`
	SurvivalRate  float64  `json:"survival_rate"`
	EstimatedGain int      `json:"estimated_gain"`
	EVStay        float64  `json:"ev_stay"`
	EVGo          float64  `json:"ev_go"`
	Diff          float64  `json:"diff"`
	DiffRatio     float64  `json:"diff_ratio"`
	Decision      Decision `json:"decision"`
	DecisionTitle string   `json:"decision_title"`
	Tone          Tone     `json:"tone"`
	Reasoning     string   `json:"reasoning"`
	Notes         []string `json:"notes"`
	DangerLabel   string   `json:"danger_label"`
}

// IsKnownClass reports whether c is one of the six playable classes
func IsKnownClass(c PlayerClass) bool {
	for _, known := range PlayerClasses {
		if c == known {
			return true
		}
	}
	return false
}
