package calculator

import (
	"fmt"
	"maps"
	"slices"

	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
	"github.com/Yiqing888/deadlydelivery.app/internal/utils"
)

// RiskConfig holds every tunable table the estimator reads
type RiskConfig struct {
	FloorRisk   FloorRiskConfig `yaml:"floor_risk" json:"floor_risk"`
	Gain        GainConfig      `yaml:"gain" json:"gain"`
	Modifiers   ModifierConfig  `yaml:"modifiers" json:"modifiers"`
	Decision    DecisionConfig  `yaml:"decision" json:"decision"`
	DangerBands []DangerBand    `yaml:"danger_bands" json:"danger_bands"`
	DangerTop   string          `yaml:"danger_top" json:"danger_top"`
	Notes       NotesConfig     `yaml:"notes" json:"notes"`
}

// FloorRiskConfig is the per-step base death probability table.
// Floors missing from Base use Default. Every per-step and combined
// probability is clamped into [Min, Max].
type FloorRiskConfig struct {
	Base    map[int]float64 `yaml:"base" json:"base"`
	Default float64         `yaml:"default" json:"default"`
	Min     float64         `yaml:"min" json:"min"`
	Max     float64         `yaml:"max" json:"max"`
}

// GainConfig drives the gain model: base + floor*per_floor per step,
// then a single class bonus on the total.
type GainConfig struct {
	Base       float64                        `yaml:"base" json:"base"`
	PerFloor   float64                        `yaml:"per_floor" json:"per_floor"`
	ClassBonus map[domain.PlayerClass]float64 `yaml:"class_bonus" json:"class_bonus"`
}

// ModifierConfig holds the additive death-probability modifiers
type ModifierConfig struct {
	Team          TeamModifiers                     `yaml:"team" json:"team"`
	Class         map[domain.PlayerClass]float64    `yaml:"class" json:"class"`
	ClassFallback float64                           `yaml:"class_fallback" json:"class_fallback"`
	Time          map[domain.TimeLeftTier]float64   `yaml:"time" json:"time"`
	TimeAbsent    float64                           `yaml:"time_absent" json:"time_absent"`
	TimeFallback  float64                           `yaml:"time_fallback" json:"time_fallback"`
	Risk          map[domain.RiskPreference]float64 `yaml:"risk" json:"risk"`
	RiskFallback  float64                           `yaml:"risk_fallback" json:"risk_fallback"`
}

// TeamModifiers maps squad size to a modifier. Sizes at or above
// FullSquad use the FullSquad entry; sizes with no entry use Fallback.
type TeamModifiers struct {
	BySize    map[int]float64 `yaml:"by_size" json:"by_size"`
	FullSquad int             `yaml:"full_squad" json:"full_squad"`
	Fallback  float64         `yaml:"fallback" json:"fallback"`
}

// DecisionConfig sets the EVACUATE/DEEPER thresholds on diff ratio
type DecisionConfig struct {
	Threshold   float64                           `yaml:"threshold" json:"threshold"`
	Offsets     map[domain.RiskPreference]float64 `yaml:"offsets" json:"offsets"`
	StrongRatio float64                           `yaml:"strong_ratio" json:"strong_ratio"`
}

// DangerBand labels death probabilities strictly below Below
type DangerBand struct {
	Below float64 `yaml:"below" json:"below"`
	Label string  `yaml:"label" json:"label"`
}

// NotesConfig gates the advisory notes. Its baseline (Base + floor*PerFloor)
// is a separate heuristic from GainConfig and is never derived from it.
type NotesConfig struct {
	BaselineBase     float64 `yaml:"baseline_base" json:"baseline_base"`
	BaselinePerFloor float64 `yaml:"baseline_per_floor" json:"baseline_per_floor"`
	GreedMultiplier  float64 `yaml:"greed_multiplier" json:"greed_multiplier"`
	ProfitMultiplier float64 `yaml:"profit_multiplier" json:"profit_multiplier"`
	DeathWarn        float64 `yaml:"death_warn" json:"death_warn"`
	DeepFloor        int     `yaml:"deep_floor" json:"deep_floor"`
	ModestGain       int     `yaml:"modest_gain" json:"modest_gain"`
	WarnMultiFloor   bool    `yaml:"warn_multi_floor" json:"warn_multi_floor"`
	MultiFloorSteps  int     `yaml:"multi_floor_steps" json:"multi_floor_steps"`
}

// DefaultRiskConfig returns the built-in tables. configs/risk.yaml mirrors these values.
func DefaultRiskConfig() RiskConfig {
	return RiskConfig{
		FloorRisk: FloorRiskConfig{
			Base: map[int]float64{
				1: 0.10, 2: 0.20, 3: 0.30, 4: 0.40, 5: 0.50,
				6: 0.60, 7: 0.70, 8: 0.78, 9: 0.85, 10: 0.90,
			},
			Default: 0.97,
			Min:     0.05,
			Max:     0.99,
		},
		Gain: GainConfig{
			Base:     250,
			PerFloor: 125,
			ClassBonus: map[domain.PlayerClass]float64{
				domain.ClassPorter:   0.15,
				domain.ClassSprinter: 0.10,
			},
		},
		Modifiers: ModifierConfig{
			Team: TeamModifiers{
				BySize:    map[int]float64{2: 0, 3: -0.05, 4: -0.10},
				FullSquad: 4,
				Fallback:  0.05,
			},
			Class: map[domain.PlayerClass]float64{
				domain.ClassPorter:       -0.05,
				domain.ClassSprinter:     -0.05,
				domain.ClassVeterinarian: -0.03,
				domain.ClassBaseballer:   -0.02,
				domain.ClassChef:         0,
				domain.ClassOddJobber:    0.02,
			},
			ClassFallback: 0.02,
			Time: map[domain.TimeLeftTier]float64{
				domain.TimeLeftHigh: -0.02,
				domain.TimeLeftMid:  0,
				domain.TimeLeftLow:  0.05,
			},
			TimeAbsent:   0,
			TimeFallback: 0.05,
			Risk: map[domain.RiskPreference]float64{
				domain.RiskSafe:   -0.05,
				domain.RiskNormal: 0,
				domain.RiskRisky:  0.05,
			},
			RiskFallback: 0,
		},
		Decision: DecisionConfig{
			Threshold: 0.10,
			Offsets: map[domain.RiskPreference]float64{
				domain.RiskSafe:   0.05,
				domain.RiskNormal: 0,
				domain.RiskRisky:  -0.05,
			},
			StrongRatio: 0.20,
		},
		DangerBands: []DangerBand{
			{Below: 0.20, Label: "Low"},
			{Below: 0.40, Label: "Manageable"},
			{Below: 0.60, Label: "High"},
			{Below: 0.80, Label: "Very High"},
		},
		DangerTop: "Extreme",
		Notes: NotesConfig{
			BaselineBase:     200,
			BaselinePerFloor: 150,
			GreedMultiplier:  3,
			ProfitMultiplier: 2,
			DeathWarn:        0.60,
			DeepFloor:        7,
			ModestGain:       350,
			WarnMultiFloor:   true,
			MultiFloorSteps:  2,
		},
	}
}

// LoadRiskConfig decodes a YAML file over DefaultRiskConfig and validates the result.
// Map entries in the file are merged into the defaults; lists replace them.
func LoadRiskConfig(path string) (RiskConfig, error) {
	cfg := DefaultRiskConfig()
	if err := utils.LoadYAML(path, &cfg); err != nil {
		return RiskConfig{}, fmt.Errorf("failed to load risk config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return RiskConfig{}, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Validate checks the tables for values the estimator cannot use
func (c RiskConfig) Validate() error {
	fr := c.FloorRisk
	if fr.Min < 0 || fr.Max > 1 || fr.Min >= fr.Max {
		return fmt.Errorf("floor_risk clamp range [%v, %v] must satisfy 0 <= min < max <= 1", fr.Min, fr.Max)
	}
	if len(fr.Base) == 0 {
		return fmt.Errorf("floor_risk.base is empty")
	}
	for floor, p := range fr.Base {
		if floor < 1 {
			return fmt.Errorf("floor_risk.base has invalid floor %d", floor)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("floor_risk.base[%d] = %v is outside [0, 1]", floor, p)
		}
	}
	if fr.Default < 0 || fr.Default > 1 {
		return fmt.Errorf("floor_risk.default = %v is outside [0, 1]", fr.Default)
	}

	if c.Gain.Base < 0 || c.Gain.PerFloor < 0 {
		return fmt.Errorf("gain constants must be non-negative")
	}
	for class, bonus := range c.Gain.ClassBonus {
		if bonus < 0 {
			return fmt.Errorf("gain.class_bonus[%s] must be non-negative", class)
		}
	}

	if c.Modifiers.Team.FullSquad < 1 {
		return fmt.Errorf("modifiers.team.full_squad must be positive")
	}

	if c.Decision.Threshold < 0 || c.Decision.StrongRatio < 0 {
		return fmt.Errorf("decision thresholds must be non-negative")
	}

	if len(c.DangerBands) == 0 {
		return fmt.Errorf("danger_bands is empty")
	}
	for i, band := range c.DangerBands {
		if band.Label == "" {
			return fmt.Errorf("danger_bands[%d] has no label", i)
		}
		if i > 0 && band.Below <= c.DangerBands[i-1].Below {
			return fmt.Errorf("danger_bands must be strictly ascending")
		}
	}
	if c.DangerTop == "" {
		return fmt.Errorf("danger_top is empty")
	}

	n := c.Notes
	if n.GreedMultiplier < n.ProfitMultiplier {
		return fmt.Errorf("notes.greed_multiplier must be >= notes.profit_multiplier")
	}
	if n.WarnMultiFloor && n.MultiFloorSteps < 2 {
		return fmt.Errorf("notes.multi_floor_steps must be at least 2")
	}

	return nil
}

// clone deep-copies the maps and slices so an Estimator never shares state with its caller
func (c RiskConfig) clone() RiskConfig {
	out := c
	out.FloorRisk.Base = maps.Clone(c.FloorRisk.Base)
	out.Gain.ClassBonus = maps.Clone(c.Gain.ClassBonus)
	out.Modifiers.Team.BySize = maps.Clone(c.Modifiers.Team.BySize)
	out.Modifiers.Class = maps.Clone(c.Modifiers.Class)
	out.Modifiers.Time = maps.Clone(c.Modifiers.Time)
	out.Modifiers.Risk = maps.Clone(c.Modifiers.Risk)
	out.Decision.Offsets = maps.Clone(c.Decision.Offsets)
	out.DangerBands = slices.Clone(c.DangerBands)
	return out
}

// maxTableFloor is the deepest floor with an explicit base risk entry
func (c FloorRiskConfig) maxTableFloor() int {
	deepest := 0
	for floor := range c.Base {
		deepest = max(deepest, floor)
	}
	return deepest
}
