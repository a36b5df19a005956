package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const partyYAML = `members:
  - id: pyro_knight
    name: Pyro Knight
    stats:
      max_hp: 500
      atk: 40
      def: 20
      spd: 12
    resistances: [fire]
  - id: aqua_mage
    name: Aqua Mage
    stats:
      max_hp: 380
      atk: 30
      def: 12
      spd: 15
`

const enemiesYAML = `enemies:
  - id: rat
    name: Cave Rat
    stats:
      max_hp: 60
      atk: 8
      def: 4
      spd: 10
      int: 2
    weaknesses: [fire]
  - id: golem
    name: Stone Golem
    stats:
      max_hp: 900
      atk: 25
      def: 60
      spd: 5
      int: 6
    resistances: [physical]
    xp_reward: 120
    gold_reward: 45
`

const scenarioYAML = `id: demo
seed: 12345
party: [pyro_knight, aqua_mage]
enemies: [rat, rat, golem]
ops:
  - {t: 1.0, op: attack, actor: pyro_knight, target: "rat#1", amount: 50, type: fire, multiplier: 2.0}
  - {t: 2.0, op: pause}
  - {t: 3.0, op: resume}
`

func writeFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"party.yaml":    partyYAML,
		"enemies.yaml":  enemiesYAML,
		"scenario.yaml": scenarioYAML,
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestLoadAll(t *testing.T) {
	pc, ec, sc, err := LoadAll(writeFixtures(t))
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	if len(pc.Members) != 2 || pc.Members[0].ID != "pyro_knight" {
		t.Fatalf("unexpected party config %+v", pc)
	}
	if pc.Members[0].Stats.MaxHP != 500 || pc.Members[0].Stats.Spd != 12 {
		t.Fatalf("unexpected member stats %+v", pc.Members[0].Stats)
	}

	if len(ec.Enemies) != 2 {
		t.Fatalf("expected 2 enemy templates, got %d", len(ec.Enemies))
	}
	golem := ec.Enemies[1]
	if golem.XPReward == nil || *golem.XPReward != 120 {
		t.Fatalf("expected golem xp override 120, got %v", golem.XPReward)
	}
	if ec.Enemies[0].XPReward != nil {
		t.Fatal("rat must not carry an xp override")
	}

	if sc.Seed != 12345 || len(sc.Ops) != 3 {
		t.Fatalf("unexpected scenario %+v", sc)
	}
	if sc.DT != 0.1 || sc.MaxTime != 120 {
		t.Fatalf("defaults not applied: dt=%f max_time=%f", sc.DT, sc.MaxTime)
	}
	if sc.Ops[0].Op != "attack" || sc.Ops[0].Multiplier != 2.0 {
		t.Fatalf("unexpected first op %+v", sc.Ops[0])
	}
}

func TestLoadAllMissingFile(t *testing.T) {
	if _, _, _, err := LoadAll(t.TempDir()); err == nil {
		t.Fatal("expected an error for a missing config dir")
	}
}

func TestLoadServiceDefaults(t *testing.T) {
	cfg, err := LoadService("")
	if err != nil {
		t.Fatalf("LoadService: %v", err)
	}
	if cfg.Server.BindAddress != ":8080" || cfg.Server.TickRate != 100*time.Millisecond {
		t.Fatalf("unexpected defaults %+v", cfg.Server)
	}
}

func TestLoadServiceOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arenad.toml")
	body := "[server]\nbind_address = \":9090\"\ntick_rate = \"50ms\"\n\n[logging]\nlevel = \"debug\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadService(path)
	if err != nil {
		t.Fatalf("LoadService: %v", err)
	}
	if cfg.Server.BindAddress != ":9090" {
		t.Fatalf("bind address not applied: %s", cfg.Server.BindAddress)
	}
	if cfg.Server.TickRate != 50*time.Millisecond {
		t.Fatalf("tick rate not applied: %v", cfg.Server.TickRate)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("log level not applied: %s", cfg.Logging.Level)
	}
	// Untouched fields keep their defaults.
	if cfg.Server.ConfigDir != "assets" {
		t.Fatalf("config dir default lost: %s", cfg.Server.ConfigDir)
	}
}
