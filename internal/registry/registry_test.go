package registry

import (
	"testing"

	"github.com/vovakirdan/zone-arcade/internal/core"
)

type fakeGame struct {
	id, title string
}

func (g *fakeGame) ID() string { return g.id }
func (g *fakeGame) Title() string { return g.title }
func (g *fakeGame) Reset(core.RuntimeConfig) {}
func (g *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(*core.Screen) {}
func (g *fakeGame) State() core.GameState { return core.GameState{} }

func register(id, title string) {
	Register(id, func() Game { return &fakeGame{id: id, title: title} })
}

func TestRegisterAndCreate(t *testing.T) {
	register("test_b", "Bravo")
	register("test_a", "Alpha")

	if !Exists("test_a") || !Exists("test_b") {
		t.Fatal("registered games should exist")
	}
	if Exists("test_missing") {
		t.Error("unregistered game should not exist")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	ia, ib := -1, -1
	for i, id := range ids {
		switch id {
		case "test_a":
			ia = i
		case "test_b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() = %v, want test_a before test_b", ids)
	}

	g, err := Create("test_a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.Title() != "Alpha" {
		t.Errorf("Title() = %q, want Alpha", g.Title())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("test_nope"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register("test_dup", "Dup")
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	register("test_dup", "Dup again")
}
