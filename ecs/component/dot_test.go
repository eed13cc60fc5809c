package component

import "testing"

func TestDotListInsertKeepsExpiryOrder(t *testing.T) {
	var l DotList
	l.Insert(Dot{Kind: "poison", ExpiresAt: 300})
	l.Insert(Dot{Kind: "burning", ExpiresAt: 100})
	l.Insert(Dot{Kind: "bleed", ExpiresAt: 200})

	want := []uint64{100, 200, 300}
	for i, exp := range want {
		if l.Dots[i].ExpiresAt != exp {
			t.Fatalf("index %d: expected expiry %d, got %d", i, exp, l.Dots[i].ExpiresAt)
		}
	}
}

func TestDotListPopExpired(t *testing.T) {
	cases := []struct {
		name      string
		expiries  []uint64
		now       uint64
		wantPop   int
		wantLeft  int
	}{
		{"none_due", []uint64{100, 200}, 50, 0, 2},
		{"front_due", []uint64{100, 200}, 100, 1, 1},
		{"all_due", []uint64{100, 200}, 500, 2, 0},
		{"empty", nil, 10, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var l DotList
			for _, exp := range c.expiries {
				l.Insert(Dot{Kind: "x", ExpiresAt: exp})
			}
			popped := l.PopExpired(c.now)
			if len(popped) != c.wantPop {
				t.Fatalf("expected %d popped, got %d", c.wantPop, len(popped))
			}
			if l.Len() != c.wantLeft {
				t.Fatalf("expected %d left, got %d", c.wantLeft, l.Len())
			}
		})
	}
}

func TestDotListRefresh(t *testing.T) {
	var l DotList
	l.Insert(Dot{Kind: "poison", PerTick: 5, Base: 5, ExpiresAt: 100})
	l.Insert(Dot{Kind: "poison", PerTick: 2, Base: 2, ExpiresAt: 400})
	l.Insert(Dot{Kind: "burning", PerTick: 9, Base: 9, ExpiresAt: 50})

	// refreshes the earliest-expiring poison entry, keeping its stronger hit
	if !l.Refresh(Dot{Kind: "poison", PerTick: 3, Base: 3, ExpiresAt: 600}) {
		t.Fatal("refresh should find an entry")
	}
	if l.Stacks("poison") != 2 {
		t.Fatalf("expected 2 poison stacks, got %d", l.Stacks("poison"))
	}
	last := l.Dots[l.Len()-1]
	if last.Kind != "poison" || last.ExpiresAt != 600 {
		t.Fatalf("refreshed entry should sort last: %+v", last)
	}
	if last.PerTick != 5 {
		t.Fatalf("refresh should keep the stronger per-tick, got %v", last.PerTick)
	}

	if l.Refresh(Dot{Kind: "frost", ExpiresAt: 10}) {
		t.Fatal("refresh of unknown kind should report false")
	}
}

func TestDotListRemoveKind(t *testing.T) {
	var l DotList
	l.Insert(Dot{Kind: "poison", ExpiresAt: 100})
	l.Insert(Dot{Kind: "burning", ExpiresAt: 200})
	l.Insert(Dot{Kind: "poison", ExpiresAt: 300})

	if removed := l.RemoveKind("poison"); removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if l.Len() != 1 || l.Dots[0].Kind != "burning" {
		t.Fatalf("unexpected remainder: %+v", l.Dots)
	}
	if removed := l.RemoveKind("poison"); removed != 0 {
		t.Fatalf("expected 0 removed on second pass, got %d", removed)
	}
}
