package domain

// ClassTier is the community tier ranking of a class
type ClassTier string

// ClassRole is the squad role a class fills
type ClassRole string

const (
	RoleDPS     ClassRole = "DPS"
	RoleSupport ClassRole = "Support"
	RoleCarry   ClassRole = "Carry"
	RoleRunner  ClassRole = "Runner"
)

// ClassInfo is static reference data for a playable class
type ClassInfo struct {
	ID             string      `json:"id" yaml:"id"`
	Name           PlayerClass `json:"name" yaml:"name"`
	UnlockCost     int         `json:"unlock_cost" yaml:"unlock_cost"`
	Tier           ClassTier   `json:"tier" yaml:"tier"`
	Role           ClassRole   `json:"role" yaml:"role"`
	Description    string      `json:"description" yaml:"description"`
	Pros           []string    `json:"pros" yaml:"pros"`
	Cons           []string    `json:"cons" yaml:"cons"`
	RecommendedFor []string    `json:"recommended_for" yaml:"recommended_for"`
	Source         string      `json:"source,omitempty" yaml:"source"`
	LastUpdated    string      `json:"last_updated,omitempty" yaml:"last_updated"`
}

// Monster is static reference data for an entity met in the sewers
type Monster struct {
	ID               string `json:"id" yaml:"id"`
	Name             string `json:"name" yaml:"name"`
	Nickname         string `json:"nickname,omitempty" yaml:"nickname"`
	Floors           []int  `json:"floors,omitempty" yaml:"floors"`
	DangerLevel      int    `json:"danger_level" yaml:"danger_level"`
	DescriptionShort string `json:"description_short" yaml:"description_short"`
	AttackPattern    string `json:"attack_pattern" yaml:"attack_pattern"`
	CounterStrategy  string `json:"counter_strategy" yaml:"counter_strategy"`
	Notes            string `json:"notes,omitempty" yaml:"notes"`
}

// Playstyle drives the order of suggested class unlocks
type Playstyle string

const (
	PlaystyleSteady  Playstyle = "steady"
	PlaystyleCombat  Playstyle = "combat"
	PlaystyleRunner  Playstyle = "runner"
	PlaystyleSupport Playstyle = "support"
)

// Playstyles lists the supported playstyles
var Playstyles = []Playstyle{PlaystyleSteady, PlaystyleCombat, PlaystyleRunner, PlaystyleSupport}

// UnlockStep is one suggested class unlock
type UnlockStep struct {
	Class  ClassInfo `json:"class"`
	Wait   int       `json:"wait"`
	Reason string    `json:"reason"`
}
