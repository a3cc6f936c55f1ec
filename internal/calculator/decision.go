package calculator

import "github.com/Yiqing888/deadlydelivery.app/internal/domain"

// Decision titles and reasoning shown to players
const (
	TitleHold     = "Hold the vote"
	TitleEvacuate = "Evacuate"
	TitleDeeper   = "Go deeper"

	ReasonHold           = "EV gain is roughly equal to staying. Talk to your squad before locking in."
	ReasonEvacuateStrong = "EV drops hard if you go deeper. Bank the loot before it disappears."
	ReasonEvacuateSoft   = "Marginal upside but real wipe risk. Cash out and reset the run."
	ReasonDeeperStrong   = "Huge upside next floor and survival odds are acceptable."
	ReasonDeeperSoft     = "Slight EV edge. Move fast and don't get separated."
)

type decisionText struct {
	title     string
	tone      domain.Tone
	reasoning string
}

// deriveDecision compares diffRatio against thresholds shifted by the risk preference.
// A zero ratio is always HOLD for the default thresholds.
func (e *Estimator) deriveDecision(diffRatio float64, pref domain.RiskPreference) domain.Decision {
	d := e.cfg.Decision
	offset := d.Offsets[pref]

	switch {
	case diffRatio <= -d.Threshold+offset:
		return domain.DecisionEvacuate
	case diffRatio >= d.Threshold+offset:
		return domain.DecisionDeeper
	default:
		return domain.DecisionHold
	}
}

func (e *Estimator) decisionCopy(decision domain.Decision, diffRatio float64) decisionText {
	strong := e.cfg.Decision.StrongRatio

	switch decision {
	case domain.DecisionEvacuate:
		reason := ReasonEvacuateSoft
		if diffRatio <= -strong {
			reason = ReasonEvacuateStrong
		}
		return decisionText{title: TitleEvacuate, tone: domain.ToneDanger, reasoning: reason}
	case domain.DecisionDeeper:
		reason := ReasonDeeperSoft
		if diffRatio >= strong {
			reason = ReasonDeeperStrong
		}
		return decisionText{title: TitleDeeper, tone: domain.ToneSuccess, reasoning: reason}
	default:
		return decisionText{title: TitleHold, tone: domain.ToneNeutral, reasoning: ReasonHold}
	}
}
