package combat

import "math"

// DamageResult is the shared result shape for damage and healing calls. For
// healing, FinalDamage holds the effective heal; IsHealing disambiguates.
type DamageResult struct {
	FinalDamage float64 `json:"final_damage"`
	TargetAlive bool    `json:"target_alive"`
	IsHealing   bool    `json:"is_healing"`
	Crit        bool    `json:"crit,omitempty"`
	Dodged      bool    `json:"dodged,omitempty"`
}

// DealDamage resolves one hit. Unknown ids and dead targets return nil.
// A target inside its invincibility window takes no HP mutation but still
// produces a zero-damage DAMAGE_DEALT event so callers can show the block.
//
// Mitigation uses a diminishing-returns curve, raw*(100/(100+def)), so
// defense never zeroes a hit; the floor of 1 applies after the elemental,
// skill and crit multipliers.
func (m *Manager) DealDamage(attackerID, targetID string, rawAmount float64, damageType DamageType, skillMultiplier float64) *DamageResult {
	attacker := m.byID[attackerID]
	target := m.byID[targetID]
	if attacker == nil || target == nil || !target.Alive {
		return nil
	}
	if damageType == "" {
		damageType = DamagePhysical
	}
	if skillMultiplier <= 0 {
		skillMultiplier = 1
	}

	if target.InvincibilityTimer > 0 {
		result := &DamageResult{FinalDamage: 0, TargetAlive: true}
		m.bus.Emit(CombatEvent{Type: EventDamageDealt, Data: DamagePayload{
			AttackerID: attackerID,
			TargetID:   targetID,
			Result:     *result,
		}})
		return result
	}

	mitigated := rawAmount * (100.0 / (100.0 + target.Stats.Def))

	// Weakness wins when data authors configure both sides for a type.
	elemental := 1.0
	if target.Weaknesses[damageType] {
		elemental = 1.5
	} else if target.Resistances[damageType] {
		elemental = 0.5
	}

	critMultiplier := 1.0
	crit := false
	if attacker.Stats.CritChance > 0 && m.rng.Float64() < attacker.Stats.CritChance {
		crit = true
		if attacker.Stats.CritDamage > 1 {
			critMultiplier = attacker.Stats.CritDamage
		}
	}

	dodged := target.Stats.DodgeChance > 0 && m.rng.Float64() < target.Stats.DodgeChance

	var finalDamage float64
	if !dodged {
		finalDamage = math.Round(mitigated * elemental * skillMultiplier * critMultiplier)
		if finalDamage < 1 {
			finalDamage = 1
		}
		target.Stats.HP -= finalDamage
		if target.Stats.HP <= 0 {
			target.Stats.HP = 0
			target.Alive = false
		}
	}

	result := &DamageResult{
		FinalDamage: finalDamage,
		TargetAlive: target.Alive,
		Crit:        crit,
		Dodged:      dodged,
	}
	m.bus.Emit(CombatEvent{Type: EventDamageDealt, Data: DamagePayload{
		AttackerID: attackerID,
		TargetID:   targetID,
		Result:     *result,
	}})
	if !target.Alive {
		m.bus.Emit(CombatEvent{Type: EventCombatantDefeated, Data: CombatantDefeatedPayload{CombatantID: targetID}})
	}
	return result
}

// ApplyHealing restores up to maxHp-hp. Dead targets cannot be healed.
func (m *Manager) ApplyHealing(healerID, targetID string, amount float64) *DamageResult {
	healer := m.byID[healerID]
	target := m.byID[targetID]
	if healer == nil || target == nil || !target.Alive {
		return nil
	}

	effective := target.Stats.MaxHP - target.Stats.HP
	if amount < effective {
		effective = amount
	}
	if effective < 0 {
		effective = 0
	}
	target.Stats.HP += effective

	result := &DamageResult{FinalDamage: effective, TargetAlive: true, IsHealing: true}
	m.bus.Emit(CombatEvent{Type: EventHealingApplied, Data: HealingPayload{
		HealerID: healerID,
		TargetID: targetID,
		Result:   *result,
	}})
	return result
}
