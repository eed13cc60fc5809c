package component

import "sort"

// Dot is one active periodic-damage entry against a target. All times are
// absolute world ticks: ExpiresAt and NextTickAt are computed once when the
// entry is applied and recomputed only on refresh. The definition's duration
// is never stored here, so it cannot be clobbered by a deadline.
type Dot struct {
	// Kind names the effect definition this entry came from.
	Kind string
	// PerTick is the damage dealt each time the entry ticks.
	PerTick float64
	// Base is the definition's unscaled per-tick damage, kept for scripted
	// effects that recompute PerTick while the entry ages.
	Base float64
	// Interval is the number of world ticks between hits (>= 1).
	Interval uint64
	// AppliedAt is the world tick the entry was applied or last refreshed.
	AppliedAt uint64
	// NextTickAt is the world tick of the next due hit.
	NextTickAt uint64
	// ExpiresAt is the world tick the entry leaves the ledger.
	ExpiresAt uint64
	// Source is the raw handle of the entity that applied the entry.
	Source uint64
	// Script optionally names a damage formula script.
	Script string
}

// DotList is a target's periodic-damage ledger. Entries are kept sorted by
// ExpiresAt so the sweep pops expired entries from the front.
type DotList struct {
	Dots []Dot
}

// Len returns the number of active entries.
func (l *DotList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Dots)
}

// Stacks counts the active entries of a kind.
func (l *DotList) Stacks(kind string) int {
	if l == nil {
		return 0
	}
	n := 0
	for i := range l.Dots {
		if l.Dots[i].Kind == kind {
			n++
		}
	}
	return n
}

// Insert adds an entry, keeping the list sorted by expiry.
func (l *DotList) Insert(d Dot) {
	if l == nil {
		return
	}
	idx := sort.Search(len(l.Dots), func(i int) bool {
		return l.Dots[i].ExpiresAt > d.ExpiresAt
	})
	l.Dots = append(l.Dots, Dot{})
	copy(l.Dots[idx+1:], l.Dots[idx:])
	l.Dots[idx] = d
}

// Refresh re-applies a kind at its stack cap: the earliest-expiring entry of
// that kind takes the new deadline and tick schedule and keeps the stronger
// per-tick damage. Returns false when no entry of the kind exists.
func (l *DotList) Refresh(d Dot) bool {
	if l == nil {
		return false
	}
	target := -1
	for i := range l.Dots {
		if l.Dots[i].Kind != d.Kind {
			continue
		}
		if target < 0 || l.Dots[i].ExpiresAt < l.Dots[target].ExpiresAt {
			target = i
		}
	}
	if target < 0 {
		return false
	}
	old := l.Dots[target]
	if old.PerTick > d.PerTick {
		d.PerTick = old.PerTick
		d.Base = old.Base
	}
	l.Dots = append(l.Dots[:target], l.Dots[target+1:]...)
	l.Insert(d)
	return true
}

// PopExpired removes and returns every entry whose deadline has passed.
func (l *DotList) PopExpired(now uint64) []Dot {
	if l == nil || len(l.Dots) == 0 {
		return nil
	}
	n := 0
	for n < len(l.Dots) && l.Dots[n].ExpiresAt <= now {
		n++
	}
	if n == 0 {
		return nil
	}
	expired := append([]Dot(nil), l.Dots[:n]...)
	l.Dots = l.Dots[n:]
	return expired
}

// RemoveKind drops every entry of a kind and returns how many were removed.
func (l *DotList) RemoveKind(kind string) int {
	if l == nil {
		return 0
	}
	kept := l.Dots[:0]
	removed := 0
	for i := range l.Dots {
		if l.Dots[i].Kind == kind {
			removed++
			continue
		}
		kept = append(kept, l.Dots[i])
	}
	l.Dots = kept
	return removed
}

var DotListComponent = NewComponent[DotList]()
