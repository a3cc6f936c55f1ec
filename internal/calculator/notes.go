package calculator

import (
	"fmt"

	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
)

// Advisory note text
const (
	NoteGreed       = "You've already banked well above a normal run for this floor. Greed will sting if you wipe."
	NoteProfitable  = "This floor is already profitable--no shame in cashing out."
	NoteConsultTeam = "Death odds are spiking. Ping your team or link them the monsters list before deciding."
	NoteDeepFloors  = "Deep floors spawn nastier entities like Fire Turkey and Pit Maw more often--prep stims before moving on."
	NoteModestGain  = "Expected extra loot is modest; only go deeper if you still need specific drops."
	noteMultiFloor  = "Planning %d floors in one go multiplies wipe risk--double-check squad resources before locking in."
)

// MultiFloorNote renders the compounding-risk warning for a plan of steps floors
func MultiFloorNote(steps int) string {
	return fmt.Sprintf(noteMultiFloor, steps)
}

// buildNotes returns the order-stable list of hints. Never nil.
func (e *Estimator) buildNotes(input domain.CalculatorInput, deathProb float64, gain, steps int) []string {
	n := e.cfg.Notes
	notes := []string{}

	baseline := n.BaselineBase + float64(input.CurrentFloor)*n.BaselinePerFloor
	switch {
	case input.InventoryValue >= n.GreedMultiplier*baseline:
		notes = append(notes, NoteGreed)
	case input.InventoryValue >= n.ProfitMultiplier*baseline:
		notes = append(notes, NoteProfitable)
	}

	if deathProb >= n.DeathWarn {
		notes = append(notes, NoteConsultTeam)
	}

	if input.CurrentFloor >= n.DeepFloor {
		notes = append(notes, NoteDeepFloors)
	}

	if gain <= n.ModestGain {
		notes = append(notes, NoteModestGain)
	}

	if n.WarnMultiFloor && steps >= n.MultiFloorSteps {
		notes = append(notes, MultiFloorNote(steps))
	}

	return notes
}
