package ecs

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/afflict/ecs/component"
)

func stepN(pw *PhysicsWorld, n int) {
	for i := 0; i < n; i++ {
		pw.Step(1.0 / 60.0)
	}
}

func TestZoneContactBeginAndSeparate(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld()
	w.SetPhysicsWorld(pw)

	zone := CreateEntity(w)
	victim := CreateEntity(w)

	if shape := pw.AddZoneSensor(zone, &component.Transform{X: 0, Y: 0}, 100, 100); shape == nil {
		t.Fatal("expected sensor shape")
	}
	body := pw.AddVictimBody(victim, &component.Transform{X: 0, Y: 0}, 20, 20)
	if body == nil {
		t.Fatal("expected victim body")
	}

	stepN(pw, 2)
	if _, ok := pw.Contacts(zone)[victim]; !ok {
		t.Fatal("expected victim inside zone after step")
	}

	body.SetPosition(cp.Vector{X: 500, Y: 0})
	stepN(pw, 3)
	if _, ok := pw.Contacts(zone)[victim]; ok {
		t.Fatal("expected victim out of zone after moving away")
	}

	body.SetPosition(cp.Vector{X: 0, Y: 0})
	stepN(pw, 2)
	if _, ok := pw.Contacts(zone)[victim]; !ok {
		t.Fatal("expected victim back inside zone")
	}
}

func TestRemoveEntityClearsShapesAndContacts(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld()
	w.SetPhysicsWorld(pw)

	zone := CreateEntity(w)
	victim := CreateEntity(w)
	pw.AddZoneSensor(zone, &component.Transform{X: 0, Y: 0}, 100, 100)
	pw.AddVictimBody(victim, &component.Transform{X: 0, Y: 0}, 20, 20)

	stepN(pw, 2)
	if len(pw.Contacts(zone)) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(pw.Contacts(zone)))
	}

	pw.RemoveEntity(victim)
	if len(pw.Contacts(zone)) != 0 {
		t.Fatal("removing the victim should purge its contacts")
	}
	if pw.Body(victim) != nil {
		t.Fatal("body should be gone")
	}

	pw.RemoveEntity(zone)
	if pw.Contacts(zone) != nil {
		t.Fatal("removing the zone should drop its contact set")
	}
}

func TestDestroyEntityDetachesFromPhysics(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld()
	w.SetPhysicsWorld(pw)

	zone := CreateEntity(w)
	victim := CreateEntity(w)
	pw.AddZoneSensor(zone, &component.Transform{X: 0, Y: 0}, 100, 100)
	pw.AddVictimBody(victim, &component.Transform{X: 0, Y: 0}, 20, 20)
	stepN(pw, 2)

	if !DestroyEntity(w, victim) {
		t.Fatal("destroy failed")
	}
	if len(pw.Contacts(zone)) != 0 {
		t.Fatal("destroying an entity should remove its physics contacts")
	}
}
