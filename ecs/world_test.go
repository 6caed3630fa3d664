package ecs

import (
	"testing"

	"github.com/csc495-vr-f2022/interaction-and-physics/ecs/component"
)

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			for _, e := range ents {
				if !w.IsAlive(e) {
					t.Fatalf("entity %s should be alive after create", e)
				}
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for dead entity")
				}
			}
		})
	}
}

func TestEntityGenerationRecycling(t *testing.T) {
	w := NewWorld()
	e1 := w.CreateEntity()
	w.DestroyEntity(e1)
	e2 := w.CreateEntity()
	if e1 == e2 {
		t.Fatalf("recycled id should carry a new generation")
	}
	if w.IsAlive(e1) {
		t.Fatalf("stale handle should not be alive")
	}
	if !w.IsAlive(e2) {
		t.Fatalf("recycled handle should be alive")
	}
}

func TestComponentsAndQueries(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1, 10) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1)
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1) },
		},
		{
			name: "add_str_to_both",
			setup: func() error {
				if err := Add(w, e1, h2, "a"); err != nil {
					return err
				}
				return Add(w, e2, h2, "b")
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2) || !Has(w, e2, h2) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e1, h2) && Remove(w, e2, h2) },
		},
		{
			name:  "mutate_in_place",
			setup: func() error { return Add(w, e1, h1, 1) },
			check: func(t *testing.T) {
				v, _ := Get(w, e1, h1)
				*v = 42
				v2, _ := Get(w, e1, h1)
				if *v2 != 42 {
					t.Fatalf("expected in-place mutation, got %d", *v2)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestForEachAndQuery(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	if err := Add(w, e1, h, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h, 3); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h2, "x"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	seen := map[Entity]int{}
	ForEach(w, h, func(e Entity, v *int) { seen[e] = *v })
	if len(seen) != 2 || seen[e1] != 1 || seen[e3] != 3 {
		t.Fatalf("unexpected ForEach visits: %v", seen)
	}
	if _, ok := seen[e2]; ok {
		t.Fatalf("ForEach visited entity without component")
	}

	both := w.Query(h.ID(), h2.ID())
	if len(both) != 1 || both[0] != e3 {
		t.Fatalf("expected Query to return only e3, got %v", both)
	}

	first, ok := First(w, h)
	if !ok || (first != e1 && first != e3) {
		t.Fatalf("First returned %v ok=%v", first, ok)
	}

	w.DestroyEntity(e3)
	if _, ok := Get(w, e3, h); ok {
		t.Fatalf("destroyed entity should drop components")
	}
}

func TestEventQueue(t *testing.T) {
	w := NewWorld()
	w.Events().Push(Event{Type: "a"})
	w.Events().Push(Event{Type: "b"})

	got := w.Events().Drain()
	if len(got) != 2 || got[0].Type != "a" || got[1].Type != "b" {
		t.Fatalf("unexpected drain: %v", got)
	}
	if w.Events().Drain() != nil {
		t.Fatalf("second drain should be empty")
	}
}
