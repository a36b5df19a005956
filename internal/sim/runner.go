package sim

import (
	"encoding/json"
	"fmt"
	"sort"

	"arenasim/internal/combat"
	"arenasim/internal/config"
	"arenasim/internal/util"
)

// Result summarises one finished encounter.
type Result struct {
	Win         bool                 `json:"win"`
	Final       combat.CombatState   `json:"final"`
	Duration    float64              `json:"duration"`
	TotalDamage float64              `json:"total_damage"`
	DPS         float64              `json:"dps"`
	DamageBy    map[string]float64   `json:"damage_by_combatant,omitempty"`
	Rewards     *combat.Rewards      `json:"rewards,omitempty"`
	Events      []combat.CombatEvent `json:"events,omitempty"`
}

// Runner drives one manager through a scenario: it owns the tick clock,
// replays the scripted ops at their timestamps and auto-dispatches basic
// attacks whenever a combatant becomes ready. The core treats it as just
// another caller.
type Runner struct {
	scenario *config.ScenarioConfig
	party    []*combat.Combatant
	enemies  []combat.EnemySpawnConfig
	seed     int64
	record   bool
}

// NewRunner resolves the scenario's roster references. seed overrides the
// scenario seed when non-zero so batch runs can diverge.
func NewRunner(pc *config.PartyConfig, ec *config.EnemiesConfig, sc *config.ScenarioConfig, seed int64, record bool) (*Runner, error) {
	party, err := BuildParty(pc, sc.Party)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.ID, err)
	}
	enemies, err := BuildEnemies(ec, sc.Enemies)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.ID, err)
	}
	if seed == 0 {
		seed = sc.Seed
	}
	return &Runner{scenario: sc, party: party, enemies: enemies, seed: seed, record: record}, nil
}

// Run executes the encounter to a terminal state, an explicit end op, or the
// scenario's max_time.
func (r *Runner) Run() Result {
	mgr := combat.NewManager(util.New(r.seed))

	var events []combat.CombatEvent
	if r.record {
		for _, typ := range combat.EventTypes() {
			mgr.On(typ, func(ev combat.CombatEvent) { events = append(events, ev) })
		}
	}

	damageBy := map[string]float64{}
	total := 0.0
	mgr.On(combat.EventDamageDealt, func(ev combat.CombatEvent) {
		payload := ev.Data.(combat.DamagePayload)
		damageBy[payload.AttackerID] += payload.Result.FinalDamage
		total += payload.Result.FinalDamage
	})

	AttachBasicAttackDriver(mgr)

	mgr.StartCombat(r.party, r.enemies)

	ops := make([]config.Op, len(r.scenario.Ops))
	copy(ops, r.scenario.Ops)
	sort.SliceStable(ops, func(i, j int) bool { return ops[i].T < ops[j].T })

	dt := r.scenario.DT
	now := 0.0
	opIndex := 0
	for now < r.scenario.MaxTime {
		for opIndex < len(ops) && ops[opIndex].T <= now {
			r.apply(mgr, ops[opIndex])
			opIndex++
		}
		state := mgr.State()
		if state.Terminal() || state == combat.StateIdle {
			break
		}
		mgr.Update(dt)
		now += dt
	}

	final := mgr.State()
	res := Result{
		Win:         final == combat.StateVictory,
		Final:       final,
		Duration:    mgr.Elapsed(),
		TotalDamage: total,
		DPS:         total / (mgr.Elapsed() + 1e-6),
		DamageBy:    damageBy,
	}
	if final.Terminal() {
		res.Rewards = mgr.CalculateRewards()
	}
	if r.record {
		res.Events = events
	}
	return res
}

func (r *Runner) apply(mgr *combat.Manager, op config.Op) {
	switch op.Op {
	case "attack":
		mult := op.Multiplier
		if mult <= 0 {
			mult = 1
		}
		mgr.DealDamage(op.Actor, op.Target, op.Amount, combat.DamageType(op.Type), mult)
	case "heal":
		mgr.ApplyHealing(op.Actor, op.Target, op.Amount)
	case "modify_stat":
		mgr.ModifyStat(op.Target, combat.StatName(op.Stat), op.Amount)
	case "set_hp":
		mgr.SetHP(op.Target, op.Amount)
	case "invincible":
		mgr.SetInvincible(op.Target, op.Duration)
	case "cooldown":
		mgr.StartCooldown(op.Target, op.Ability, op.Duration)
	case "pause":
		mgr.SetPaused(true)
	case "resume":
		mgr.SetPaused(false)
	case "end":
		mgr.EndCombat(combat.StateIdle)
	}
}

// AttachBasicAttackDriver wires the default caller policy onto a manager:
// whenever a combatant becomes ready, it swings at the first alive opponent
// for its Atk, gated through the shared global cooldown. The readiness event
// itself carries no targeting; that is deliberately caller territory.
func AttachBasicAttackDriver(mgr *combat.Manager) {
	mgr.On(combat.EventActionReady, func(ev combat.CombatEvent) {
		id := ev.Data.(combat.ActionReadyPayload).CombatantID
		actor := mgr.Combatant(id)
		if actor == nil || !actor.Alive {
			return
		}
		if !mgr.IsAbilityReady(id, "basic") {
			return
		}
		target := firstAliveOpponent(mgr, actor.Team)
		if target == nil {
			return
		}
		mgr.StartCooldown(id, "basic", combat.GlobalCooldown)
		mgr.DealDamage(id, target.ID, actor.Stats.Atk, combat.DamagePhysical, 1.0)
	})
}

func firstAliveOpponent(mgr *combat.Manager, team combat.Team) *combat.Combatant {
	var pool []*combat.Combatant
	if team == combat.TeamParty {
		pool = mgr.AliveEnemies()
	} else {
		pool = mgr.AliveParty()
	}
	if len(pool) == 0 {
		return nil
	}
	return pool[0]
}

// MarshalPretty renders results and summaries for the CLI output files.
func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
