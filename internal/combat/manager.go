package combat

import "math/rand"

// CombatState is the encounter lifecycle state.
type CombatState string

const (
	StateIdle    CombatState = "IDLE"
	StateActive  CombatState = "ACTIVE"
	StatePaused  CombatState = "PAUSED"
	StateVictory CombatState = "VICTORY"
	StateDefeat  CombatState = "DEFEAT"
)

func (s CombatState) Terminal() bool {
	return s == StateVictory || s == StateDefeat
}

// Manager owns one encounter: the combatant registry, the lifecycle state
// machine, per-tick scheduling and the event bus. It performs no clock reads;
// the caller drives time through Update(dt).
type Manager struct {
	bus *Bus
	rng *rand.Rand

	state   CombatState
	elapsed float64

	combatants []*Combatant
	byID       map[string]*Combatant
	enemySeq   int

	rewards *Rewards
}

// NewManager builds an idle manager. rng feeds the crit/dodge rolls; nil
// falls back to a fixed seed so unconfigured managers stay deterministic.
func NewManager(rng *rand.Rand) *Manager {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Manager{
		bus:   NewBus(),
		rng:   rng,
		state: StateIdle,
		byID:  map[string]*Combatant{},
	}
}

func (m *Manager) On(t CombatEventType, fn Listener) int { return m.bus.On(t, fn) }
func (m *Manager) Off(t CombatEventType, id int)         { m.bus.Off(t, id) }

func (m *Manager) State() CombatState { return m.state }
func (m *Manager) Elapsed() float64   { return m.elapsed }

// StartCombat discards any previous registry, registers the party as-is and
// instantiates the enemy configs, then activates the encounter.
func (m *Manager) StartCombat(party []*Combatant, enemies []EnemySpawnConfig) {
	m.combatants = m.combatants[:0]
	m.byID = map[string]*Combatant{}
	m.enemySeq = 0
	m.elapsed = 0
	m.rewards = nil

	for _, c := range party {
		if c == nil {
			continue
		}
		c.Team = TeamParty
		c.ensureMaps()
		c.Alive = c.Stats.HP > 0
		c.ActionInterval = actionIntervalFor(c.Stats.Spd)
		m.register(c)
	}
	for _, cfg := range enemies {
		m.enemySeq++
		m.register(newEnemy(cfg, m.enemySeq))
	}

	from := m.state
	m.state = StateActive
	m.bus.Emit(CombatEvent{Type: EventCombatStart, Data: CombatStartPayload{
		PartyCount: len(m.partyMembers()),
		EnemyCount: m.enemySeq,
	}})
	m.bus.Emit(CombatEvent{Type: EventStateChanged, Data: StateChangedPayload{From: from, To: StateActive}})
}

func (m *Manager) register(c *Combatant) {
	m.combatants = append(m.combatants, c)
	m.byID[c.ID] = c
}

// SetPaused toggles ACTIVE<->PAUSED. In any other state it is a no-op.
func (m *Manager) SetPaused(paused bool) {
	switch {
	case paused && m.state == StateActive:
		m.transition(StatePaused)
	case !paused && m.state == StatePaused:
		m.transition(StateActive)
	}
}

// EndCombat forces the encounter into target (IDLE when empty), emitting
// COMBAT_END then STATE_CHANGED regardless of the source state.
func (m *Manager) EndCombat(target CombatState) {
	if target == "" {
		target = StateIdle
	}
	from := m.state
	m.state = target
	m.bus.Emit(CombatEvent{Type: EventCombatEnd, Data: CombatEndPayload{Final: target}})
	m.bus.Emit(CombatEvent{Type: EventStateChanged, Data: StateChangedPayload{From: from, To: target}})
}

func (m *Manager) transition(to CombatState) {
	from := m.state
	m.state = to
	m.bus.Emit(CombatEvent{Type: EventStateChanged, Data: StateChangedPayload{From: from, To: to}})
}

// Update advances the encounter by dt seconds. Outside ACTIVE it does
// nothing: no elapsed advance, no timer ticking, no end-condition checks.
func (m *Manager) Update(dt float64) {
	if m.state != StateActive || dt < 0 {
		return
	}
	m.elapsed += dt

	for _, c := range m.combatants {
		// Action readiness fires at most once per combatant per call; the
		// interval is subtracted rather than zeroed so overflow carries.
		if c.Alive {
			c.ActionTimer += dt
			if c.ActionInterval > 0 && c.ActionTimer >= c.ActionInterval {
				c.ActionTimer -= c.ActionInterval
				m.bus.Emit(CombatEvent{Type: EventActionReady, Data: ActionReadyPayload{CombatantID: c.ID}})
			}
		}

		if c.InvincibilityTimer > 0 {
			c.InvincibilityTimer -= dt
			if c.InvincibilityTimer < 0 {
				c.InvincibilityTimer = 0
			}
		}

		for ability, remaining := range c.Cooldowns {
			remaining -= dt
			if remaining <= 0 {
				delete(c.Cooldowns, ability)
			} else {
				c.Cooldowns[ability] = remaining
			}
		}
	}

	m.checkEnd()
}

// checkEnd evaluates victory before defeat so a mutual wipe counts as a win.
func (m *Manager) checkEnd() {
	if len(m.AliveEnemies()) == 0 {
		m.state = StateVictory
		m.bus.Emit(CombatEvent{Type: EventVictory})
		m.bus.Emit(CombatEvent{Type: EventStateChanged, Data: StateChangedPayload{From: StateActive, To: StateVictory}})
		return
	}
	if len(m.AliveParty()) == 0 {
		m.state = StateDefeat
		m.bus.Emit(CombatEvent{Type: EventDefeat})
		m.bus.Emit(CombatEvent{Type: EventStateChanged, Data: StateChangedPayload{From: StateActive, To: StateDefeat}})
	}
}

// Combatants returns every registered combatant, dead ones included.
func (m *Manager) Combatants() []*Combatant {
	out := make([]*Combatant, len(m.combatants))
	copy(out, m.combatants)
	return out
}

// Combatant looks up a single registrant; nil when unknown.
func (m *Manager) Combatant(id string) *Combatant {
	return m.byID[id]
}

func (m *Manager) AliveParty() []*Combatant   { return m.filter(TeamParty, true) }
func (m *Manager) AliveEnemies() []*Combatant { return m.filter(TeamEnemy, true) }

func (m *Manager) partyMembers() []*Combatant { return m.filter(TeamParty, false) }

func (m *Manager) filter(team Team, aliveOnly bool) []*Combatant {
	var out []*Combatant
	for _, c := range m.combatants {
		if c.Team != team {
			continue
		}
		if aliveOnly && !c.Alive {
			continue
		}
		out = append(out, c)
	}
	return out
}

// StartCooldown inserts or overwrites the ability's remaining time.
func (m *Manager) StartCooldown(combatantID, abilityID string, duration float64) {
	c := m.byID[combatantID]
	if c == nil {
		return
	}
	if duration <= 0 {
		delete(c.Cooldowns, abilityID)
		return
	}
	c.Cooldowns[abilityID] = duration
}

// IsAbilityReady reports whether the ability has no pending cooldown. Unknown
// combatants are never ready.
func (m *Manager) IsAbilityReady(combatantID, abilityID string) bool {
	c := m.byID[combatantID]
	if c == nil {
		return false
	}
	remaining, ok := c.Cooldowns[abilityID]
	return !ok || remaining <= 0
}

// SetInvincible grants an invincibility window; non-positive durations clear
// the timer.
func (m *Manager) SetInvincible(combatantID string, seconds float64) {
	c := m.byID[combatantID]
	if c == nil {
		return
	}
	if seconds < 0 {
		seconds = 0
	}
	c.InvincibilityTimer = seconds
}
