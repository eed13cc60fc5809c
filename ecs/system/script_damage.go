package system

import (
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/afflict/defs"
	"github.com/milk9111/afflict/ecs"
	"github.com/milk9111/afflict/ecs/component"
)

// ScriptDamageSystem recomputes per-tick damage for ledger entries backed by
// a tengo formula. Scripts receive `base`, `elapsed` (ticks since applied),
// and `stacks`, and assign `damage`. Compiled scripts are cached; a failing
// script is logged once and its entries keep their last damage.
type ScriptDamageSystem struct {
	compiled map[string]*tengo.Compiled
	failed   map[string]bool
}

func NewScriptDamageSystem() *ScriptDamageSystem {
	return &ScriptDamageSystem{
		compiled: make(map[string]*tengo.Compiled),
		failed:   make(map[string]bool),
	}
}

// Reset drops the compiled-script cache, e.g. after a definitions reload.
func (s *ScriptDamageSystem) Reset() {
	if s == nil {
		return
	}
	s.compiled = make(map[string]*tengo.Compiled)
	s.failed = make(map[string]bool)
}

func (s *ScriptDamageSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	now := w.Tick()
	ecs.ForEach(w, component.DotListComponent.Kind(), func(e ecs.Entity, list *component.DotList) {
		if list == nil {
			return
		}
		for i := range list.Dots {
			d := &list.Dots[i]
			if d.Script == "" {
				continue
			}
			damage, err := s.eval(d.Script, d.Base, now-d.AppliedAt, list.Stacks(d.Kind))
			if err != nil {
				if !s.failed[d.Script] {
					log.Printf("script %s: %v", d.Script, err)
					s.failed[d.Script] = true
				}
				continue
			}
			if damage >= 0 {
				d.PerTick = damage
			}
		}
	})
}

func (s *ScriptDamageSystem) eval(name string, base float64, elapsed uint64, stacks int) (float64, error) {
	compiled, err := s.get(name)
	if err != nil {
		return 0, err
	}

	run := compiled.Clone()
	if err := run.Set("base", base); err != nil {
		return 0, err
	}
	if err := run.Set("elapsed", int64(elapsed)); err != nil {
		return 0, err
	}
	if err := run.Set("stacks", int64(stacks)); err != nil {
		return 0, err
	}
	if err := run.Run(); err != nil {
		return 0, err
	}
	return run.Get("damage").Float(), nil
}

func (s *ScriptDamageSystem) get(name string) (*tengo.Compiled, error) {
	if compiled, ok := s.compiled[name]; ok {
		return compiled, nil
	}

	src, err := defs.LoadScript(name)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(src)
	_ = script.Add("base", 0.0)
	_ = script.Add("elapsed", int64(0))
	_ = script.Add("stacks", int64(0))
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	s.compiled[name] = compiled
	return compiled, nil
}
