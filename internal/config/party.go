package config

type PartyConfig struct {
	Members []MemberDef `yaml:"members"`
}

type MemberDef struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Stats       StatsDef `yaml:"stats"`
	Spawn       PosDef   `yaml:"spawn"`
	Weaknesses  []string `yaml:"weaknesses"`
	Resistances []string `yaml:"resistances"`
	Note        string   `yaml:"note"`
}

type StatsDef struct {
	MaxHP       float64 `yaml:"max_hp"`
	HP          float64 `yaml:"hp"` // defaults to max_hp when omitted
	MaxMP       float64 `yaml:"max_mp"`
	MP          float64 `yaml:"mp"`
	Atk         float64 `yaml:"atk"`
	Def         float64 `yaml:"def"`
	Spd         float64 `yaml:"spd"`
	Int         float64 `yaml:"int"`
	CritChance  float64 `yaml:"crit_chance"`
	CritDamage  float64 `yaml:"crit_damage"`
	DodgeChance float64 `yaml:"dodge_chance"`
}

type PosDef struct {
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	FacingRight bool    `yaml:"facing_right"`
}
