package defs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EffectSpec defines a periodic-damage effect. Duration and interval are in
// update ticks and stay separate from the absolute deadlines the runtime
// computes from them.
type EffectSpec struct {
	Kind          string  `yaml:"kind"`
	DamagePerTick float64 `yaml:"damage_per_tick"`
	IntervalTicks int     `yaml:"interval_ticks"`
	DurationTicks int     `yaml:"duration_ticks"`
	MaxStacks     int     `yaml:"max_stacks"`
	InitialTick   bool    `yaml:"initial_tick"`
	Script        string  `yaml:"script"`
}

// Validate reports the first problem with the definition.
func (s EffectSpec) Validate() error {
	if s.Kind == "" {
		return fmt.Errorf("defs: effect missing kind")
	}
	if s.DurationTicks <= 0 {
		return fmt.Errorf("defs: effect %s: duration_ticks must be positive", s.Kind)
	}
	if s.DamagePerTick < 0 {
		return fmt.Errorf("defs: effect %s: damage_per_tick must not be negative", s.Kind)
	}
	return nil
}

// ZoneSpec defines a damage zone. Damage is given per second; PerTick
// converts it to the amount dealt on each interval hit.
type ZoneSpec struct {
	Name            string  `yaml:"name"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	DamagePerSecond float64 `yaml:"damage_per_second"`
	IntervalTicks   int     `yaml:"interval_ticks"`
	Effect          string  `yaml:"effect"`
	InitialTick     bool    `yaml:"initial_tick"`
	TTLTicks        int     `yaml:"ttl_ticks"`
}

// defaultZoneInterval is three seconds at 60 ticks per second.
const defaultZoneInterval = 180

// Interval returns the hit interval in ticks, defaulted and clamped.
func (s ZoneSpec) Interval() uint64 {
	if s.IntervalTicks <= 0 {
		return defaultZoneInterval
	}
	return uint64(s.IntervalTicks)
}

// PerTick returns the direct damage dealt per interval hit.
func (s ZoneSpec) PerTick(ticksPerSecond int) float64 {
	if ticksPerSecond <= 0 || s.DamagePerSecond <= 0 {
		return 0
	}
	return s.DamagePerSecond * float64(s.Interval()) / float64(ticksPerSecond)
}

// Validate reports the first problem with the definition.
func (s ZoneSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("defs: zone missing name")
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("defs: zone %s: width and height must be positive", s.Name)
	}
	if s.Effect == "" && s.DamagePerSecond <= 0 {
		return fmt.Errorf("defs: zone %s: needs an effect or damage_per_second", s.Name)
	}
	return nil
}

type effectsFile struct {
	Effects []EffectSpec `yaml:"effects"`
}

type zonesFile struct {
	Zones []ZoneSpec `yaml:"zones"`
}

// LoadSpec reads and unmarshals a definition file.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("defs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("defs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}
