package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
)

func baseInput() domain.CalculatorInput {
	return domain.CalculatorInput{
		CurrentFloor:   1,
		TargetFloor:    2,
		AlivePlayers:   4,
		PlayerClass:    domain.ClassOddJobber,
		InventoryValue: 600,
		RiskPreference: domain.RiskNormal,
	}
}

// TestRunCalculation_Golden pins the full output for the reference elevator vote
func TestRunCalculation_Golden(t *testing.T) {
	result := RunCalculation(baseInput())

	assert.InDelta(t, 0.05, result.DeathProb, 1e-9)
	assert.Equal(t, 0.95, result.SurvivalRate)
	assert.Equal(t, 375, result.EstimatedGain)
	assert.Equal(t, 600.0, result.EVStay)
	assert.InDelta(t, 926.25, result.EVGo, 1e-9)
	assert.InDelta(t, 326.25, result.Diff, 1e-9)
	assert.InDelta(t, 0.54375, result.DiffRatio, 1e-9)
	assert.Equal(t, domain.DecisionDeeper, result.Decision)
	assert.Equal(t, "Go deeper", result.DecisionTitle)
	assert.Equal(t, domain.ToneSuccess, result.Tone)
	assert.Equal(t, "Huge upside next floor and survival odds are acceptable.", result.Reasoning)
	assert.Equal(t, "Low", result.DangerLabel)
	require.NotNil(t, result.Notes)
	assert.Empty(t, result.Notes)
}

func TestCalculate_Scenarios(t *testing.T) {
	est := NewEstimator(DefaultRiskConfig())

	tests := []struct {
		name          string
		input         domain.CalculatorInput
		wantDeath     float64
		wantSurvival  float64
		wantGain      int
		wantRatio     float64
		wantDecision  domain.Decision
		wantTone      domain.Tone
		wantReasoning string
		wantLabel     string
		wantNotes     []string
	}{
		{
			name: "deep floor with heavy backpack evacuates",
			input: domain.CalculatorInput{
				CurrentFloor: 8, TargetFloor: 9, AlivePlayers: 2, PlayerClass: domain.ClassChef,
				InventoryValue: 5000, TimeLeftTier: domain.TimeLeftMid, RiskPreference: domain.RiskNormal,
			},
			wantDeath:     0.78,
			wantSurvival:  0.22,
			wantGain:      1250,
			wantRatio:     -0.725,
			wantDecision:  domain.DecisionEvacuate,
			wantTone:      domain.ToneDanger,
			wantReasoning: ReasonEvacuateStrong,
			wantLabel:     "Very High",
			wantNotes:     []string{NoteGreed, NoteConsultTeam, NoteDeepFloors},
		},
		{
			name: "slight edge goes deeper",
			input: domain.CalculatorInput{
				CurrentFloor: 2, TargetFloor: 3, AlivePlayers: 2, PlayerClass: domain.ClassChef,
				InventoryValue: 1200, TimeLeftTier: domain.TimeLeftMid, RiskPreference: domain.RiskNormal,
			},
			wantDeath:     0.2,
			wantSurvival:  0.8,
			wantGain:      500,
			wantRatio:     160.0 / 1200.0,
			wantDecision:  domain.DecisionDeeper,
			wantTone:      domain.ToneSuccess,
			wantReasoning: ReasonDeeperSoft,
			wantLabel:     "Low",
			wantNotes:     []string{NoteProfitable},
		},
		{
			name: "marginal downside evacuates softly",
			input: domain.CalculatorInput{
				CurrentFloor: 2, TargetFloor: 3, AlivePlayers: 2, PlayerClass: domain.ClassChef,
				InventoryValue: 5000, TimeLeftTier: domain.TimeLeftMid, RiskPreference: domain.RiskNormal,
			},
			wantDeath:     0.2,
			wantSurvival:  0.8,
			wantGain:      500,
			wantRatio:     -0.12,
			wantDecision:  domain.DecisionEvacuate,
			wantTone:      domain.ToneDanger,
			wantReasoning: ReasonEvacuateSoft,
			wantLabel:     "Low",
			wantNotes:     []string{NoteGreed},
		},
		{
			name: "break even holds",
			input: domain.CalculatorInput{
				CurrentFloor: 2, TargetFloor: 3, AlivePlayers: 2, PlayerClass: domain.ClassChef,
				InventoryValue: 2000, TimeLeftTier: domain.TimeLeftMid, RiskPreference: domain.RiskNormal,
			},
			wantDeath:     0.2,
			wantSurvival:  0.8,
			wantGain:      500,
			wantRatio:     0,
			wantDecision:  domain.DecisionHold,
			wantTone:      domain.ToneNeutral,
			wantReasoning: ReasonHold,
			wantLabel:     "Low",
			wantNotes:     []string{NoteGreed},
		},
		{
			name: "empty backpack always holds",
			input: domain.CalculatorInput{
				CurrentFloor: 5, TargetFloor: 6, AlivePlayers: 1, PlayerClass: domain.ClassOddJobber,
				InventoryValue: 0, TimeLeftTier: domain.TimeLeftLow, RiskPreference: domain.RiskRisky,
			},
			wantDeath:     0.67,
			wantSurvival:  0.33,
			wantGain:      875,
			wantRatio:     0,
			wantDecision:  domain.DecisionHold,
			wantTone:      domain.ToneNeutral,
			wantReasoning: ReasonHold,
			wantLabel:     "Very High",
			wantNotes:     []string{NoteConsultTeam},
		},
		{
			name: "beyond the table clamps at the ceiling",
			input: domain.CalculatorInput{
				CurrentFloor: 12, TargetFloor: 13, AlivePlayers: 1, PlayerClass: domain.ClassOddJobber,
				InventoryValue: 100, TimeLeftTier: domain.TimeLeftLow, RiskPreference: domain.RiskRisky,
			},
			wantDeath:     0.99,
			wantSurvival:  0.01,
			wantGain:      1750,
			wantRatio:     (1850*0.01 - 100) / 100,
			wantDecision:  domain.DecisionEvacuate,
			wantTone:      domain.ToneDanger,
			wantReasoning: ReasonEvacuateStrong,
			wantLabel:     "Extreme",
			wantNotes:     []string{NoteConsultTeam, NoteDeepFloors},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := est.Calculate(tt.input)

			assert.InDelta(t, tt.wantDeath, result.DeathProb, 1e-9)
			assert.InDelta(t, tt.wantSurvival, result.SurvivalRate, 1e-9)
			assert.Equal(t, tt.wantGain, result.EstimatedGain)
			assert.InDelta(t, tt.wantRatio, result.DiffRatio, 1e-9)
			assert.Equal(t, tt.wantDecision, result.Decision)
			assert.Equal(t, tt.wantTone, result.Tone)
			assert.Equal(t, tt.wantReasoning, result.Reasoning)
			assert.Equal(t, tt.wantLabel, result.DangerLabel)
			assert.Equal(t, tt.wantNotes, result.Notes)
		})
	}
}

// TestCalculate_MultiStepSurvival pins survival rates where the combined death
// chance lands next to a rounding tie
func TestCalculate_MultiStepSurvival(t *testing.T) {
	est := NewEstimator(DefaultRiskConfig())

	tests := []struct {
		name         string
		input        domain.CalculatorInput
		wantDeath    float64
		wantSurvival float64
	}{
		{
			name: "sprinter pair two floors on safe",
			input: domain.CalculatorInput{
				CurrentFloor: 1, TargetFloor: 3, AlivePlayers: 2, PlayerClass: domain.ClassSprinter,
				InventoryValue: 800, RiskPreference: domain.RiskSafe,
			},
			wantDeath:    0.145,
			wantSurvival: 0.85,
		},
		{
			name: "veterinarian pair with time to spare",
			input: domain.CalculatorInput{
				CurrentFloor: 1, TargetFloor: 3, AlivePlayers: 2, PlayerClass: domain.ClassVeterinarian,
				InventoryValue: 800, TimeLeftTier: domain.TimeLeftHigh, RiskPreference: domain.RiskSafe,
			},
			wantDeath:    0.145,
			wantSurvival: 0.85,
		},
		{
			name: "full squad porter two floors",
			input: domain.CalculatorInput{
				CurrentFloor: 2, TargetFloor: 4, AlivePlayers: 4, PlayerClass: domain.ClassPorter,
				InventoryValue: 800, RiskPreference: domain.RiskNormal,
			},
			wantDeath:    0.1925,
			wantSurvival: 0.81,
		},
		{
			name: "three floors late and risky",
			input: domain.CalculatorInput{
				CurrentFloor: 3, TargetFloor: 6, AlivePlayers: 3, PlayerClass: domain.ClassChef,
				InventoryValue: 800, TimeLeftTier: domain.TimeLeftLow, RiskPreference: domain.RiskRisky,
			},
			wantDeath:    0.839125,
			wantSurvival: 0.16,
		},
		{
			name: "odd jobber pair from floor five",
			input: domain.CalculatorInput{
				CurrentFloor: 5, TargetFloor: 7, AlivePlayers: 2, PlayerClass: domain.ClassOddJobber,
				InventoryValue: 800, TimeLeftTier: domain.TimeLeftHigh, RiskPreference: domain.RiskNormal,
			},
			wantDeath:    0.8,
			wantSurvival: 0.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := est.Calculate(tt.input)

			assert.InDelta(t, tt.wantDeath, result.DeathProb, 1e-9)
			assert.Equal(t, tt.wantSurvival, result.SurvivalRate)
			assert.InDelta(t, (tt.input.InventoryValue+float64(result.EstimatedGain))*tt.wantSurvival, result.EVGo, 1e-9)
		})
	}
}

func TestFloorSteps(t *testing.T) {
	tests := []struct {
		name            string
		current, target int
		expected        []int
	}{
		{"single step", 1, 2, []int{1}},
		{"two steps", 3, 5, []int{3, 4}},
		{"target equal to current still evaluates one step", 4, 4, []int{4}},
		{"target below current still evaluates one step", 6, 2, []int{6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FloorSteps(tt.current, tt.target))
		})
	}
}

func TestEstimateGain(t *testing.T) {
	est := NewEstimator(DefaultRiskConfig())

	tests := []struct {
		name     string
		current  int
		target   int
		class    domain.PlayerClass
		expected int
	}{
		{"odd jobber floor 1", 1, 2, domain.ClassOddJobber, 375},
		{"porter bonus applied once", 1, 2, domain.ClassPorter, 431},
		{"sprinter bonus rounds half up", 1, 2, domain.ClassSprinter, 413},
		{"two floors summed", 3, 5, domain.ClassChef, 1375},
		{"porter bonus on aggregate", 1, 3, domain.ClassPorter, 1006},
		{"unknown class has no bonus", 1, 2, domain.PlayerClass("Janitor"), 375},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := domain.CalculatorInput{CurrentFloor: tt.current, TargetFloor: tt.target, PlayerClass: tt.class}
			assert.Equal(t, tt.expected, est.EstimateGain(input))
		})
	}
}

func TestDeathProbability_Modifiers(t *testing.T) {
	est := NewEstimator(DefaultRiskConfig())

	t.Run("multi step compounds per floor", func(t *testing.T) {
		input := domain.CalculatorInput{
			CurrentFloor: 1, TargetFloor: 3, AlivePlayers: 4, PlayerClass: domain.ClassPorter,
			TimeLeftTier: domain.TimeLeftHigh, RiskPreference: domain.RiskSafe,
		}
		assert.InDelta(t, -0.22, est.Modifier(input), 1e-9)
		assert.InDelta(t, 0.0975, est.DeathProbability(input), 1e-9)

		input.TargetFloor = 2
		assert.InDelta(t, 0.05, est.DeathProbability(input), 1e-9)
	})

	t.Run("unknown class uses odd jobber modifier", func(t *testing.T) {
		known := baseInput()
		unknown := baseInput()
		unknown.PlayerClass = "Janitor"
		assert.Equal(t, est.Modifier(known), est.Modifier(unknown))
	})

	t.Run("unknown time tier uses LOW modifier", func(t *testing.T) {
		low := baseInput()
		low.TimeLeftTier = domain.TimeLeftLow
		odd := baseInput()
		odd.TimeLeftTier = "SOON"
		assert.Equal(t, est.Modifier(low), est.Modifier(odd))
	})

	t.Run("absent time tier adds nothing", func(t *testing.T) {
		absent := baseInput()
		mid := baseInput()
		mid.TimeLeftTier = domain.TimeLeftMid
		assert.Equal(t, est.Modifier(mid), est.Modifier(absent))
	})

	t.Run("oversized squad treated as full squad", func(t *testing.T) {
		full := baseInput()
		big := baseInput()
		big.AlivePlayers = 6
		assert.Equal(t, est.Modifier(full), est.Modifier(big))
	})
}

func TestNewEstimator_OwnsConfigCopy(t *testing.T) {
	cfg := DefaultRiskConfig()
	est := NewEstimator(cfg)
	before := est.Calculate(baseInput())

	cfg.FloorRisk.Base[1] = 0.9
	cfg.Modifiers.Class[domain.ClassOddJobber] = 0.5

	assert.Equal(t, before, est.Calculate(baseInput()))

	exported := est.Config()
	exported.Gain.ClassBonus[domain.ClassPorter] = 5
	assert.Equal(t, 0.15, est.Config().Gain.ClassBonus[domain.ClassPorter])
}

func TestRiskTable(t *testing.T) {
	table := NewEstimator(DefaultRiskConfig()).RiskTable()

	require.Len(t, table.Floors, 12)
	assert.Equal(t, FloorRisk{Floor: 1, BaseRisk: 0.10, Label: "Low"}, table.Floors[0])
	assert.Equal(t, FloorRisk{Floor: 2, BaseRisk: 0.20, Label: "Manageable"}, table.Floors[1])
	assert.Equal(t, FloorRisk{Floor: 11, BaseRisk: 0.97, Label: "Extreme"}, table.Floors[10])
	assert.Equal(t, 0.97, table.DefaultRisk)
	assert.Equal(t, 0.05, table.MinRisk)
	assert.Equal(t, 0.99, table.MaxRisk)
	assert.Equal(t, 250.0, table.Gain.Base)
}

func BenchmarkCalculate(b *testing.B) {
	est := NewEstimator(DefaultRiskConfig())
	input := domain.CalculatorInput{
		CurrentFloor: 3, TargetFloor: 7, AlivePlayers: 3, PlayerClass: domain.ClassSprinter,
		InventoryValue: 2400, TimeLeftTier: domain.TimeLeftMid, RiskPreference: domain.RiskRisky,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = est.Calculate(input)
	}
}
