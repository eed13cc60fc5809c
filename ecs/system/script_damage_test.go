package system

import (
	"math"
	"testing"

	"github.com/milk9111/afflict/defs"
	"github.com/milk9111/afflict/ecs"
)

func TestScriptEval(t *testing.T) {
	s := NewScriptDamageSystem()

	cases := []struct {
		name    string
		base    float64
		elapsed uint64
		stacks  int
		want    float64
	}{
		{"fresh", 10, 0, 1, 10},
		{"halfway_ramp", 10, 300, 1, 15},
		{"full_ramp", 10, 600, 1, 20},
		{"stacked_doubles", 10, 600, 2, 40},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := s.eval("ramping.tengo", c.base, c.elapsed, c.stacks)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(got-c.want) > 1e-9 {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestScriptDamageRampsLedgerEntries(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(NewScriptDamageSystem())
	victim := newVictim(t, w, 1000)

	spec := defs.EffectSpec{Kind: "corruption", DamagePerTick: 10, IntervalTicks: 60, DurationTicks: 900, Script: "ramping.tengo"}
	ApplyEffect(w, victim, spec, 0)

	runTicks(w, 300)

	active := ActiveEffects(w, victim)
	if len(active) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(active))
	}
	// elapsed 300 of a 600-tick ramp on base 10
	if math.Abs(active[0].PerTick-15) > 1e-9 {
		t.Fatalf("expected ramped per-tick 15, got %v", active[0].PerTick)
	}
	if active[0].Base != 10 {
		t.Fatalf("base should stay untouched, got %v", active[0].Base)
	}
}

func TestScriptMissingKeepsLastDamage(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(NewScriptDamageSystem())
	victim := newVictim(t, w, 1000)

	spec := defs.EffectSpec{Kind: "cursed", DamagePerTick: 7, IntervalTicks: 60, DurationTicks: 900, Script: "missing.tengo"}
	ApplyEffect(w, victim, spec, 0)

	runTicks(w, 5)

	active := ActiveEffects(w, victim)
	if len(active) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(active))
	}
	if active[0].PerTick != 7 {
		t.Fatalf("a missing script should leave damage alone, got %v", active[0].PerTick)
	}
}

func TestScriptResetDropsCache(t *testing.T) {
	s := NewScriptDamageSystem()
	if _, err := s.eval("ramping.tengo", 1, 0, 1); err != nil {
		t.Fatal(err)
	}
	if len(s.compiled) != 1 {
		t.Fatalf("expected 1 cached script, got %d", len(s.compiled))
	}
	s.Reset()
	if len(s.compiled) != 0 {
		t.Fatal("reset should drop the cache")
	}
}
