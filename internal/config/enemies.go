package config

type EnemiesConfig struct {
	Enemies []EnemyDef `yaml:"enemies"`
}

type EnemyDef struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Stats       StatsDef `yaml:"stats"`
	Spawn       PosDef   `yaml:"spawn"`
	Weaknesses  []string `yaml:"weaknesses"`
	Resistances []string `yaml:"resistances"`
	XPReward    *int     `yaml:"xp_reward"`
	GoldReward  *int     `yaml:"gold_reward"`
	Note        string   `yaml:"note"`
}
