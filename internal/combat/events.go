package combat

// CombatEventType identifies one entry on the outbound event surface.
type CombatEventType string

const (
	EventCombatStart       CombatEventType = "COMBAT_START"
	EventCombatEnd         CombatEventType = "COMBAT_END"
	EventStateChanged      CombatEventType = "STATE_CHANGED"
	EventActionReady       CombatEventType = "ACTION_READY"
	EventDamageDealt       CombatEventType = "DAMAGE_DEALT"
	EventHealingApplied    CombatEventType = "HEALING_APPLIED"
	EventCombatantDefeated CombatEventType = "COMBATANT_DEFEATED"
	EventVictory           CombatEventType = "VICTORY"
	EventDefeat            CombatEventType = "DEFEAT"
)

// EventTypes returns every event type a manager can emit, in a stable order.
func EventTypes() []CombatEventType {
	return []CombatEventType{
		EventCombatStart,
		EventCombatEnd,
		EventStateChanged,
		EventActionReady,
		EventDamageDealt,
		EventHealingApplied,
		EventCombatantDefeated,
		EventVictory,
		EventDefeat,
	}
}

// CombatEvent is one notification pushed to subscribers. Data holds the
// payload struct documented for the event type.
type CombatEvent struct {
	Type CombatEventType `json:"type"`
	Data any             `json:"data,omitempty"`
}

type CombatStartPayload struct {
	PartyCount int `json:"party_count"`
	EnemyCount int `json:"enemy_count"`
}

type CombatEndPayload struct {
	Final CombatState `json:"final"`
}

type StateChangedPayload struct {
	From CombatState `json:"from"`
	To   CombatState `json:"to"`
}

type ActionReadyPayload struct {
	CombatantID string `json:"combatant_id"`
}

type DamagePayload struct {
	AttackerID string       `json:"attacker_id"`
	TargetID   string       `json:"target_id"`
	Result     DamageResult `json:"result"`
}

type HealingPayload struct {
	HealerID string       `json:"healer_id"`
	TargetID string       `json:"target_id"`
	Result   DamageResult `json:"result"`
}

type CombatantDefeatedPayload struct {
	CombatantID string `json:"combatant_id"`
}

// Listener receives events synchronously, in registration order.
type Listener func(CombatEvent)

type subscription struct {
	id int
	fn Listener
}

// Bus is a per-manager dispatcher. It is not safe for concurrent use; the
// encounter core is single-threaded by contract.
type Bus struct {
	nextID    int
	listeners map[CombatEventType][]subscription
}

func NewBus() *Bus {
	return &Bus{listeners: map[CombatEventType][]subscription{}}
}

// On registers a listener and returns the id used to detach it again.
func (b *Bus) On(t CombatEventType, fn Listener) int {
	if fn == nil {
		return 0
	}
	b.nextID++
	b.listeners[t] = append(b.listeners[t], subscription{id: b.nextID, fn: fn})
	return b.nextID
}

// Off removes the listener registered under id for the given type. Other
// listeners for the same type keep firing.
func (b *Bus) Off(t CombatEventType, id int) {
	subs := b.listeners[t]
	for i := range subs {
		if subs[i].id == id {
			b.listeners[t] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Emit dispatches synchronously. The listener list is snapshotted first so a
// listener may attach or detach subscriptions mid-dispatch.
func (b *Bus) Emit(ev CombatEvent) {
	subs := b.listeners[ev.Type]
	if len(subs) == 0 {
		return
	}
	snapshot := make([]subscription, len(subs))
	copy(snapshot, subs)
	for _, s := range snapshot {
		s.fn(ev)
	}
}
