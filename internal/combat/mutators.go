package combat

// StatName selects the numeric stat targeted by ModifyStat.
type StatName string

const (
	StatHP          StatName = "hp"
	StatMaxHP       StatName = "maxHp"
	StatMP          StatName = "mp"
	StatMaxMP       StatName = "maxMp"
	StatAtk         StatName = "atk"
	StatDef         StatName = "def"
	StatSpd         StatName = "spd"
	StatInt         StatName = "int"
	StatCritChance  StatName = "critChance"
	StatCritDamage  StatName = "critDamage"
	StatDodgeChance StatName = "dodgeChance"
)

// ModifyStat adds delta to the named stat. Unknown ids and stat names are
// silent no-ops. Shrinking maxHp drags current hp down to the new cap; spd
// changes recompute the action interval so it never goes stale.
func (m *Manager) ModifyStat(combatantID string, stat StatName, delta float64) {
	c := m.byID[combatantID]
	if c == nil {
		return
	}
	switch stat {
	case StatHP:
		m.SetHP(combatantID, c.Stats.HP+delta)
	case StatMaxHP:
		c.Stats.MaxHP += delta
		if c.Stats.HP > c.Stats.MaxHP {
			c.Stats.HP = c.Stats.MaxHP
		}
	case StatMP:
		c.Stats.MP += delta
	case StatMaxMP:
		c.Stats.MaxMP += delta
	case StatAtk:
		c.Stats.Atk += delta
	case StatDef:
		c.Stats.Def += delta
	case StatSpd:
		c.Stats.Spd += delta
		c.ActionInterval = actionIntervalFor(c.Stats.Spd)
	case StatInt:
		c.Stats.Int += delta
	case StatCritChance:
		c.Stats.CritChance += delta
	case StatCritDamage:
		c.Stats.CritDamage += delta
	case StatDodgeChance:
		c.Stats.DodgeChance += delta
	}
}

// SetHP clamps into [0, maxHp]; reaching zero marks the combatant dead and
// fires COMBATANT_DEFEATED.
func (m *Manager) SetHP(combatantID string, newHP float64) {
	c := m.byID[combatantID]
	if c == nil {
		return
	}
	if newHP < 0 {
		newHP = 0
	}
	if newHP > c.Stats.MaxHP {
		newHP = c.Stats.MaxHP
	}
	c.Stats.HP = newHP
	if newHP == 0 && c.Alive {
		c.Alive = false
		m.bus.Emit(CombatEvent{Type: EventCombatantDefeated, Data: CombatantDefeatedPayload{CombatantID: combatantID}})
	}
}
