package defs

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrUnknownEffect = errors.New("defs: unknown effect")
	ErrUnknownZone   = errors.New("defs: unknown zone")
)

// Registry holds the loaded effect and zone definitions. It is safe for
// concurrent use; the watcher goroutine calls Reload while the game reads.
type Registry struct {
	mu      sync.RWMutex
	effects map[string]EffectSpec
	zones   map[string]ZoneSpec
}

// NewRegistry loads effects.yaml and zones.yaml.
func NewRegistry() (*Registry, error) {
	r := &Registry{}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-reads both definition files, replacing the registry contents
// only when every spec validates.
func (r *Registry) Reload() error {
	effects, err := LoadSpec[effectsFile]("effects.yaml")
	if err != nil {
		return err
	}
	zones, err := LoadSpec[zonesFile]("zones.yaml")
	if err != nil {
		return err
	}

	effectsByKind := make(map[string]EffectSpec, len(effects.Effects))
	for _, spec := range effects.Effects {
		if err := spec.Validate(); err != nil {
			return err
		}
		if _, dup := effectsByKind[spec.Kind]; dup {
			return fmt.Errorf("defs: duplicate effect kind %s", spec.Kind)
		}
		effectsByKind[spec.Kind] = spec
	}

	zonesByName := make(map[string]ZoneSpec, len(zones.Zones))
	for _, spec := range zones.Zones {
		if err := spec.Validate(); err != nil {
			return err
		}
		if _, dup := zonesByName[spec.Name]; dup {
			return fmt.Errorf("defs: duplicate zone name %s", spec.Name)
		}
		if spec.Effect != "" {
			if _, ok := effectsByKind[spec.Effect]; !ok {
				return fmt.Errorf("defs: zone %s references %s: %w", spec.Name, spec.Effect, ErrUnknownEffect)
			}
		}
		zonesByName[spec.Name] = spec
	}

	r.mu.Lock()
	r.effects = effectsByKind
	r.zones = zonesByName
	r.mu.Unlock()
	return nil
}

// Effect returns the definition for a kind.
func (r *Registry) Effect(kind string) (EffectSpec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.effects[kind]
	if !ok {
		return EffectSpec{}, fmt.Errorf("%w: %s", ErrUnknownEffect, kind)
	}
	return spec, nil
}

// Zone returns the definition for a zone name.
func (r *Registry) Zone(name string) (ZoneSpec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.zones[name]
	if !ok {
		return ZoneSpec{}, fmt.Errorf("%w: %s", ErrUnknownZone, name)
	}
	return spec, nil
}

// Effects returns the loaded effect kinds.
func (r *Registry) Effects() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.effects))
	for kind := range r.effects {
		out = append(out, kind)
	}
	return out
}
