package calculator

import (
	"math"

	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
	"github.com/Yiqing888/deadlydelivery.app/internal/utils"
)

// Estimator computes EV recommendations from a fixed RiskConfig.
// It is pure logic with no I/O and holds no per-call state, so one value
// may be shared across goroutines.
type Estimator struct {
	cfg RiskConfig
}

// NewEstimator creates an estimator that owns a private copy of cfg
func NewEstimator(cfg RiskConfig) *Estimator {
	return &Estimator{cfg: cfg.clone()}
}

var defaultEstimator = NewEstimator(DefaultRiskConfig())

// RunCalculation evaluates input with the built-in tables
func RunCalculation(input domain.CalculatorInput) domain.CalculationResult {
	return defaultEstimator.Calculate(input)
}

// Config returns a copy of the tables the estimator uses
func (e *Estimator) Config() RiskConfig {
	return e.cfg.clone()
}

// FloorSteps returns the floors traversed going from current toward target.
// At least one step is always evaluated, even when target <= current.
func FloorSteps(current, target int) []int {
	count := max(1, target-current)
	floors := make([]int, count)
	for i := range floors {
		floors[i] = current + i
	}
	return floors
}

// Calculate derives the full recommendation for input
func (e *Estimator) Calculate(input domain.CalculatorInput) domain.CalculationResult {
	floors := FloorSteps(input.CurrentFloor, input.TargetFloor)
	deathProb := e.deathProbability(floors, input)
	survivalRate := utils.RoundTo(1-deathProb, 2)
	gain := e.estimateGain(floors, input.PlayerClass)

	evStay := input.InventoryValue
	evGo := (input.InventoryValue + float64(gain)) * survivalRate
	diff := evGo - evStay

	diffRatio := 0.0
	if input.InventoryValue != 0 {
		diffRatio = diff / input.InventoryValue
	}

	decision := e.deriveDecision(diffRatio, input.RiskPreference)
	copyText := e.decisionCopy(decision, diffRatio)

	return domain.CalculationResult{
		DeathProb:     deathProb,
		SurvivalRate:  survivalRate,
		EstimatedGain: gain,
		EVStay:        evStay,
		EVGo:          evGo,
		Diff:          diff,
		DiffRatio:     diffRatio,
		Decision:      decision,
		DecisionTitle: copyText.title,
		Tone:          copyText.tone,
		Reasoning:     copyText.reasoning,
		Notes:         e.buildNotes(input, deathProb, gain, len(floors)),
		DangerLabel:   e.DangerLabel(deathProb),
	}
}

// DeathProbability is the combined chance of a wipe across every floor step
func (e *Estimator) DeathProbability(input domain.CalculatorInput) float64 {
	return e.deathProbability(FloorSteps(input.CurrentFloor, input.TargetFloor), input)
}

func (e *Estimator) deathProbability(floors []int, input domain.CalculatorInput) float64 {
	fr := e.cfg.FloorRisk
	modifier := e.Modifier(input)

	survival := 1.0
	for _, floor := range floors {
		step := utils.Clamp(e.BaseRisk(floor)+modifier, fr.Min, fr.Max)
		survival *= 1 - step
	}

	return utils.Clamp(1-survival, fr.Min, fr.Max)
}

// BaseRisk is the unmodified per-step death probability on floor
func (e *Estimator) BaseRisk(floor int) float64 {
	if p, ok := e.cfg.FloorRisk.Base[floor]; ok {
		return p
	}
	return e.cfg.FloorRisk.Default
}

// Modifier sums the team, class, time and risk adjustments once per calculation
func (e *Estimator) Modifier(input domain.CalculatorInput) float64 {
	return e.teamModifier(input.AlivePlayers) +
		e.classModifier(input.PlayerClass) +
		e.timeModifier(input.TimeLeftTier) +
		e.riskModifier(input.RiskPreference)
}

func (e *Estimator) teamModifier(alive int) float64 {
	team := e.cfg.Modifiers.Team
	if alive >= team.FullSquad {
		alive = team.FullSquad
	}
	if mod, ok := team.BySize[alive]; ok {
		return mod
	}
	return team.Fallback
}

func (e *Estimator) classModifier(class domain.PlayerClass) float64 {
	if mod, ok := e.cfg.Modifiers.Class[class]; ok {
		return mod
	}
	return e.cfg.Modifiers.ClassFallback
}

func (e *Estimator) timeModifier(tier domain.TimeLeftTier) float64 {
	if tier == domain.TimeLeftUnknown {
		return e.cfg.Modifiers.TimeAbsent
	}
	if mod, ok := e.cfg.Modifiers.Time[tier]; ok {
		return mod
	}
	return e.cfg.Modifiers.TimeFallback
}

func (e *Estimator) riskModifier(pref domain.RiskPreference) float64 {
	if mod, ok := e.cfg.Modifiers.Risk[pref]; ok {
		return mod
	}
	return e.cfg.Modifiers.RiskFallback
}

// EstimateGain projects the credits gained by pushing from the current floor to the target
func (e *Estimator) EstimateGain(input domain.CalculatorInput) int {
	return e.estimateGain(FloorSteps(input.CurrentFloor, input.TargetFloor), input.PlayerClass)
}

func (e *Estimator) estimateGain(floors []int, class domain.PlayerClass) int {
	g := e.cfg.Gain

	total := 0.0
	for _, floor := range floors {
		total += g.Base + float64(floor)*g.PerFloor
	}

	// bonus applies once to the aggregate
	total *= 1 + g.ClassBonus[class]

	return int(math.Max(0, math.Round(total)))
}

// DangerLabel buckets a death probability into a human label
func (e *Estimator) DangerLabel(deathProb float64) string {
	for _, band := range e.cfg.DangerBands {
		if deathProb < band.Below {
			return band.Label
		}
	}
	return e.cfg.DangerTop
}
