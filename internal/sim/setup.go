package sim

import (
	"fmt"

	"arenasim/internal/combat"
	"arenasim/internal/config"
)

func statsFrom(def config.StatsDef) combat.CombatStats {
	hp := def.HP
	if hp <= 0 {
		hp = def.MaxHP
	}
	mp := def.MP
	if mp <= 0 {
		mp = def.MaxMP
	}
	return combat.CombatStats{
		HP: hp, MaxHP: def.MaxHP,
		MP: mp, MaxMP: def.MaxMP,
		Atk: def.Atk, Def: def.Def, Spd: def.Spd, Int: def.Int,
		CritChance: def.CritChance, CritDamage: def.CritDamage, DodgeChance: def.DodgeChance,
	}
}

func positionFrom(def config.PosDef) combat.CombatPosition {
	return combat.CombatPosition{
		X: def.X, Y: def.Y,
		Width: def.Width, Height: def.Height,
		FacingRight: def.FacingRight,
	}
}

func damageTypes(tags []string) []combat.DamageType {
	out := make([]combat.DamageType, len(tags))
	for i, tag := range tags {
		out[i] = combat.DamageType(tag)
	}
	return out
}

// BuildParty instantiates the scenario's party selection. Every id must
// resolve against party.yaml.
func BuildParty(pc *config.PartyConfig, ids []string) ([]*combat.Combatant, error) {
	byID := map[string]config.MemberDef{}
	for _, m := range pc.Members {
		byID[m.ID] = m
	}
	var out []*combat.Combatant
	for _, id := range ids {
		def, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("unknown party member %q", id)
		}
		c := &combat.Combatant{
			ID:       def.ID,
			Name:     def.Name,
			Stats:    statsFrom(def.Stats),
			Position: positionFrom(def.Spawn),
		}
		if c.Name == "" {
			c.Name = def.ID
		}
		c.Weaknesses = map[combat.DamageType]bool{}
		for _, w := range damageTypes(def.Weaknesses) {
			c.Weaknesses[w] = true
		}
		c.Resistances = map[combat.DamageType]bool{}
		for _, r := range damageTypes(def.Resistances) {
			c.Resistances[r] = true
		}
		out = append(out, c)
	}
	return out, nil
}

// BuildEnemies resolves the scenario's enemy template references into spawn
// configs, in order.
func BuildEnemies(ec *config.EnemiesConfig, ids []string) ([]combat.EnemySpawnConfig, error) {
	byID := map[string]config.EnemyDef{}
	for _, e := range ec.Enemies {
		byID[e.ID] = e
	}
	var out []combat.EnemySpawnConfig
	for _, id := range ids {
		def, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("unknown enemy template %q", id)
		}
		out = append(out, combat.EnemySpawnConfig{
			EnemyDataID: def.ID,
			Name:        def.Name,
			Stats:       statsFrom(def.Stats),
			Position:    positionFrom(def.Spawn),
			Weaknesses:  damageTypes(def.Weaknesses),
			Resistances: damageTypes(def.Resistances),
			XPReward:    def.XPReward,
			GoldReward:  def.GoldReward,
		})
	}
	return out, nil
}
