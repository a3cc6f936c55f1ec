package domain

// RunStyle selects how aggressively a run plan pushes floors
type RunStyle string

const (
	RunStyleSafe     RunStyle = "safe"
	RunStyleBalanced RunStyle = "balanced"
	RunStyleGreedy   RunStyle = "greedy"
)

// RunStyles lists the supported run styles
var RunStyles = []RunStyle{RunStyleSafe, RunStyleBalanced, RunStyleGreedy}

// RunPlan is one entry in a generated practice roadmap
type RunPlan struct {
	RunIndex    int      `json:"run_index"`
	TargetFloor int      `json:"target_floor"`
	Focus       string   `json:"focus"`
	Tips        []string `json:"tips"`
}
