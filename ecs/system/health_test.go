package system

import (
	"testing"

	"github.com/milk9111/afflict/ecs"
	"github.com/milk9111/afflict/ecs/component"
)

func TestHealthClamps(t *testing.T) {
	cases := []struct {
		name    string
		current float64
		max     float64
		want    float64
	}{
		{"overheal", 150, 100, 100},
		{"negative", -5, 100, 0},
		{"in_range", 42, 100, 42},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			w.AddSystem(NewHealthSystem())
			e := ecs.CreateEntity(w)
			if err := ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: c.current, Max: c.max}); err != nil {
				t.Fatal(err)
			}

			w.Update()

			if got := health(t, w, e); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestHealthDamageNeverOvershoots(t *testing.T) {
	h := &component.Health{Current: 10, Max: 100}
	if landed := h.Damage(25); landed != 10 {
		t.Fatalf("expected 10 landed, got %v", landed)
	}
	if h.Current != 0 {
		t.Fatalf("expected 0 health, got %v", h.Current)
	}
	if landed := h.Damage(5); landed != 0 {
		t.Fatalf("dead target should take nothing, got %v", landed)
	}
	if landed := h.Damage(-3); landed != 0 {
		t.Fatalf("negative damage should land nothing, got %v", landed)
	}
}

func TestHealthDeathOnlyOnce(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(NewHealthSystem())
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: 0, Max: 100}); err != nil {
		t.Fatal(err)
	}

	events := runTicks(w, 3)

	if got := countEvents(events, ecs.EventDeath); got != 1 {
		t.Fatalf("expected exactly 1 death event, got %d", got)
	}
	if !ecs.Has(w, e, component.DeadTagComponent.Kind()) {
		t.Fatal("expected dead tag")
	}
}
