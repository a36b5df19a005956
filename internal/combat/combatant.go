package combat

import "fmt"

// Team partitions combatants for the whole encounter.
type Team string

const (
	TeamParty Team = "PARTY"
	TeamEnemy Team = "ENEMY"
)

// DamageType tags a hit for weakness/resistance lookups.
type DamageType string

const (
	DamagePhysical DamageType = "physical"
	DamageFire     DamageType = "fire"
	DamageWater    DamageType = "water"
	DamageStorm    DamageType = "storm"
)

const (
	// BaseActionInterval divided by speed yields the seconds between a
	// combatant's readiness windows: spd 10 acts once per second.
	BaseActionInterval = 10.0

	// GlobalCooldown is the default spacing between basic attacks. The core
	// does not enforce it; callers pass it to StartCooldown when dispatching.
	GlobalCooldown = 0.5
)

type CombatStats struct {
	HP          float64 `json:"hp"`
	MaxHP       float64 `json:"max_hp"`
	MP          float64 `json:"mp"`
	MaxMP       float64 `json:"max_mp"`
	Atk         float64 `json:"atk"`
	Def         float64 `json:"def"`
	Spd         float64 `json:"spd"`
	Int         float64 `json:"int"`
	CritChance  float64 `json:"crit_chance"`
	CritDamage  float64 `json:"crit_damage"`
	DodgeChance float64 `json:"dodge_chance"`
}

// CombatPosition is carried for presentation collaborators; the core never
// reads it.
type CombatPosition struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	FacingRight bool    `json:"facing_right"`
}

type Combatant struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Team     Team           `json:"team"`
	Stats    CombatStats    `json:"stats"`
	Position CombatPosition `json:"position"`

	ActionTimer    float64 `json:"action_timer"`
	ActionInterval float64 `json:"action_interval"`
	Alive          bool    `json:"alive"`

	StatusEffectIDs    map[string]bool     `json:"status_effect_ids,omitempty"`
	Weaknesses         map[DamageType]bool `json:"weaknesses,omitempty"`
	Resistances        map[DamageType]bool `json:"resistances,omitempty"`
	Cooldowns          map[string]float64  `json:"cooldowns,omitempty"`
	InvincibilityTimer float64             `json:"invincibility_timer"`

	// Explicit reward overrides; nil falls back to the stat-derived values.
	XPReward   *int `json:"xp_reward,omitempty"`
	GoldReward *int `json:"gold_reward,omitempty"`
}

// EnemySpawnConfig is template data consumed once at registration; the
// instantiated Combatant carries everything afterwards.
type EnemySpawnConfig struct {
	EnemyDataID string
	Name        string
	Stats       CombatStats
	Position    CombatPosition
	Weaknesses  []DamageType
	Resistances []DamageType
	XPReward    *int
	GoldReward  *int
}

func actionIntervalFor(spd float64) float64 {
	if spd <= 0 {
		return BaseActionInterval
	}
	return BaseActionInterval / spd
}

// ensureMaps lazily fills the per-combatant maps so caller-built party
// members can be passed in with zero values.
func (c *Combatant) ensureMaps() {
	if c.StatusEffectIDs == nil {
		c.StatusEffectIDs = map[string]bool{}
	}
	if c.Weaknesses == nil {
		c.Weaknesses = map[DamageType]bool{}
	}
	if c.Resistances == nil {
		c.Resistances = map[DamageType]bool{}
	}
	if c.Cooldowns == nil {
		c.Cooldowns = map[string]float64{}
	}
}

func newEnemy(cfg EnemySpawnConfig, seq int) *Combatant {
	c := &Combatant{
		ID:         fmt.Sprintf("%s#%d", cfg.EnemyDataID, seq),
		Name:       cfg.Name,
		Team:       TeamEnemy,
		Stats:      cfg.Stats,
		Position:   cfg.Position,
		XPReward:   cfg.XPReward,
		GoldReward: cfg.GoldReward,
	}
	if c.Name == "" {
		c.Name = cfg.EnemyDataID
	}
	c.ensureMaps()
	for _, w := range cfg.Weaknesses {
		c.Weaknesses[w] = true
	}
	for _, r := range cfg.Resistances {
		c.Resistances[r] = true
	}
	c.Alive = c.Stats.HP > 0
	c.ActionInterval = actionIntervalFor(c.Stats.Spd)
	return c
}
