package roadmap

import "github.com/Yiqing888/deadlydelivery.app/internal/domain"

// Entry is one template run before style adjustments
type Entry struct {
	TargetFloor int      `json:"target_floor"`
	Focus       string   `json:"focus"`
	Tips        []string `json:"tips"`
}

// Template holds the base practice plan and the rules that adapt it per style
type Template struct {
	Entries      []Entry
	StyleOffsets map[domain.RunStyle]int
	MinFloor     int
	MaxFloor     int

	SquadTip string
	SoloTip  string

	// GreedyTip is added to greedy plans from GreedyFromIndex (zero-based) onward.
	GreedyTip       string
	GreedyFromIndex int

	// SafeTip is added to safe plans up to and including SafeUntilIndex.
	SafeTip        string
	SafeUntilIndex int
}

// DefaultTemplate returns the ten-run practice roadmap
func DefaultTemplate() Template {
	return Template{
		Entries: []Entry{
			{1, "Learn the elevator vote timing and loot icons.", []string{"Only grab obvious valuables", "Ping every monster for muscle memory"}},
			{1, "Identify fast escape routes.", []string{"Keep sprint meter full", "Practice calling out monster names"}},
			{2, "Take your first greedy floor if backpack < 600 cr.", []string{"Leave if half the team is down", "Drink buffs before diving"}},
			{2, "Start respecting Mimics and Crocs.", []string{"Assign one teammate to scout ahead", "Drop junk before the vote"}},
			{3, "Test your emergency voice lines and stuns.", []string{"Carry coolant or darts", "Have a caller track timers"}},
			{3, "Stabilize income and unlock your first paid class.", []string{"Farm 15k credits before greed", "Use the calculator every vote"}},
			{4, "Prep for Pit Maw / Fire Turkey floors.", []string{"Craft heals before leaving lobby", "Assign bait and backline"}},
			{5, "Push a deeper run if loot RNG is good.", []string{"Bank if backpack > 2x base gain", "Double-check stim stock"}},
			{5, "Start practicing clone checks.", []string{"Spam emotes", "Call names before opening vaults"}},
			{6, "Execute a serious profit run or stop early if scuffed.", []string{"Porters lead vote math", "Rotate monster counters"}},
		},
		StyleOffsets: map[domain.RunStyle]int{
			domain.RunStyleSafe:     -1,
			domain.RunStyleBalanced: 0,
			domain.RunStyleGreedy:   1,
		},
		MinFloor:        1,
		MaxFloor:        9,
		SquadTip:        "Call the vote timer aloud so everyone preps at the same pace.",
		SoloTip:         "Solo queue: prioritize stuns and mobility over raw value.",
		GreedyTip:       "Greed style: do not overstay without heals and stims ready.",
		GreedyFromIndex: 6,
		SafeTip:         "Safe style: cash out once backpacks hit 1.5x base gain.",
		SafeUntilIndex:  3,
	}
}
