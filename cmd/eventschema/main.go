// eventschema emits the JSON Schema for the outbound combat event contract
// so client teams (UI, audio, AI) can validate their decoders against it.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"reflect"

	"github.com/invopop/jsonschema"

	"arenasim/internal/combat"
)

func main() {
	var outPath string
	flag.StringVar(&outPath, "out", "", "output path for the JSON schema")
	flag.Parse()

	if outPath == "" {
		log.Fatal("eventschema: missing -out path")
	}

	schema := buildSchema()
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("eventschema: marshal schema: %v", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		log.Fatalf("eventschema: create output dir: %v", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		log.Fatalf("eventschema: write schema: %v", err)
	}
}

// eventPayloads maps each event type to its payload struct. Events with
// empty payloads (VICTORY, DEFEAT) are omitted; their frames carry no data.
func eventPayloads() map[combat.CombatEventType]any {
	return map[combat.CombatEventType]any{
		combat.EventCombatStart:       combat.CombatStartPayload{},
		combat.EventCombatEnd:         combat.CombatEndPayload{},
		combat.EventStateChanged:      combat.StateChangedPayload{},
		combat.EventActionReady:       combat.ActionReadyPayload{},
		combat.EventDamageDealt:       combat.DamagePayload{},
		combat.EventHealingApplied:    combat.HealingPayload{},
		combat.EventCombatantDefeated: combat.CombatantDefeatedPayload{},
	}
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}

	payloads := eventPayloads()
	var variants []*jsonschema.Schema
	for _, typ := range combat.EventTypes() {
		payload, ok := payloads[typ]
		if !ok {
			continue
		}
		s := reflector.ReflectFromType(reflect.TypeOf(payload))
		s.Version = ""
		s.Title = string(typ)
		variants = append(variants, s)
	}

	return &jsonschema.Schema{
		Version:     jsonschema.Version,
		Title:       "Arena Combat Events",
		Description: "Payload shapes emitted on the encounter event bus and the arenad spectator stream.",
		OneOf:       variants,
	}
}
