package registry

import (
	"testing"

	"github.com/vovakirdan/tui-mines/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreate(t *testing.T) {
	Register(GameInfo{ID: "reg-b", Description: "second"}, func() Game { return &stubGame{id: "reg-b"} })
	Register(GameInfo{ID: "reg-a", Title: "Alpha"}, func() Game { return &stubGame{id: "reg-a"} })

	if !Exists("reg-a") || !Exists("reg-b") {
		t.Fatal("registered games should exist")
	}
	if Exists("reg-missing") {
		t.Error("unregistered game should not exist")
	}

	g, err := Create("reg-b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "reg-b" {
		t.Errorf("ID() = %q, want reg-b", g.ID())
	}

	if _, err := Create("reg-missing"); err == nil {
		t.Error("Create() of unknown game should fail")
	}

	info, ok := Info("reg-b")
	if !ok || info.Title != "Stub reg-b" || info.Description != "second" {
		t.Errorf("Info(reg-b) = %+v, %v", info, ok)
	}
	if info, _ := Info("reg-a"); info.Title != "Alpha" {
		t.Errorf("explicit title should be kept, got %q", info.Title)
	}
}

func TestListKeepsRegistrationOrder(t *testing.T) {
	Register(GameInfo{ID: "order-z"}, func() Game { return &stubGame{id: "order-z"} })
	Register(GameInfo{ID: "order-m"}, func() Game { return &stubGame{id: "order-m"} })

	var seen []string
	for _, g := range List() {
		if g.ID == "order-z" || g.ID == "order-m" {
			seen = append(seen, g.ID)
		}
	}
	if len(seen) != 2 || seen[0] != "order-z" || seen[1] != "order-m" {
		t.Errorf("List() order = %v, want [order-z order-m]", seen)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(GameInfo{ID: "dup"}, func() Game { return &stubGame{id: "dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(GameInfo{ID: "dup"}, func() Game { return &stubGame{id: "dup"} })
}
