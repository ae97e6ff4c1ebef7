package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/rodrigofbmattos/gerar-cronograma/internal/schedule"
)

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := newAppModel(Options{Subjects: []string{"A"}})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestAppModel_ViewBeforeResize(t *testing.T) {
	m := newAppModel(Options{Subjects: []string{"A"}})
	v := m.View()
	if !v.AltScreen {
		t.Error("expected alt screen")
	}
}

func TestAppModel_ViewRendersOrder(t *testing.T) {
	m := newAppModel(Options{Subjects: []string{"Matemática", "Física"}})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	content := updated.(AppModel).render()
	for _, want := range []string{"Cronograma", "2 matérias", "1. Matemática", "Generate"} {
		if !strings.Contains(content, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestAppModel_TooSmall(t *testing.T) {
	m := newAppModel(Options{Subjects: []string{"A"}})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	if !strings.Contains(updated.(AppModel).render(), "Terminal too small") {
		t.Error("expected min size message")
	}
}

func TestAppModel_GenerateFlow(t *testing.T) {
	gen := func(order []string) (*schedule.Result, string, error) {
		return &schedule.Result{}, "out.xlsx", nil
	}
	var model tea.Model = newAppModel(Options{Subjects: []string{"A", "B"}, Generate: gen})
	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	model, cmd := model.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected generate command")
	}
	model, cmd = model.Update(cmd())
	if cmd == nil {
		t.Fatal("expected push command")
	}
	model, _ = model.Update(cmd())

	m := model.(AppModel)
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}
	if m.router.Active().Title() != "Resumo" {
		t.Errorf("active = %q, want Resumo", m.router.Active().Title())
	}
}
