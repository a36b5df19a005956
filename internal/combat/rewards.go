package combat

import "math"

// Rewards is the summed encounter payout.
type Rewards struct {
	XP   int      `json:"xp"`
	Gold int      `json:"gold"`
	Loot []string `json:"loot"`
}

// CalculateRewards sums per-enemy payouts over every registered enemy, dead
// or not; rewards are read once the encounter has resolved. The result is
// cached until the next StartCombat so repeated calls return the same value.
func (m *Manager) CalculateRewards() *Rewards {
	if m.rewards != nil {
		return m.rewards
	}
	r := &Rewards{Loot: []string{}}
	for _, c := range m.combatants {
		if c.Team != TeamEnemy {
			continue
		}
		if c.XPReward != nil {
			r.XP += *c.XPReward
		} else {
			xp := int(math.Round(c.Stats.Int))
			if xp < 1 {
				xp = 1
			}
			r.XP += xp
		}
		if c.GoldReward != nil {
			r.Gold += *c.GoldReward
		} else {
			gold := int(math.Round(c.Stats.MaxHP / 10))
			if gold < 0 {
				gold = 0
			}
			r.Gold += gold
		}
	}
	m.rewards = r
	return r
}
