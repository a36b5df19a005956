package config

type ScenarioConfig struct {
	ID      string   `yaml:"id"`
	Seed    int64    `yaml:"seed"`
	DT      float64  `yaml:"dt"`       // tick size in seconds, default 0.1
	MaxTime float64  `yaml:"max_time"` // safety stop for auto battles
	Party   []string `yaml:"party"`    // member ids from party.yaml
	Enemies []string `yaml:"enemies"`  // template ids from enemies.yaml
	Ops     []Op     `yaml:"ops"`
	Note    string   `yaml:"note"`
}

// Op is a timed caller action the runner replays against the manager.
type Op struct {
	T          float64 `yaml:"t"`
	Op         string  `yaml:"op"` // attack, heal, modify_stat, set_hp, invincible, cooldown, pause, resume, end
	Actor      string  `yaml:"actor"`
	Target     string  `yaml:"target"`
	Amount     float64 `yaml:"amount"`
	Type       string  `yaml:"type"`       // damage type for attack ops
	Multiplier float64 `yaml:"multiplier"` // skill multiplier for attack ops
	Stat       string  `yaml:"stat"`       // stat name for modify_stat
	Ability    string  `yaml:"ability"`    // ability id for cooldown ops
	Duration   float64 `yaml:"duration"`   // seconds for invincible/cooldown ops
}
