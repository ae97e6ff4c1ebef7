package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rodrigofbmattos/gerar-cronograma/internal/router"
	"github.com/rodrigofbmattos/gerar-cronograma/internal/store"
)

type mockRunRepo struct {
	runs []store.Run
	err  error
	opts store.QueryOpts
}

func (m *mockRunRepo) Append(_ context.Context, run store.Run) error {
	m.runs = append(m.runs, run)
	return nil
}

func (m *mockRunRepo) Recent(_ context.Context, opts store.QueryOpts) ([]store.Run, error) {
	m.opts = opts
	return m.runs, m.err
}

func (m *mockRunRepo) Get(_ context.Context, id string) (*store.Run, error) {
	for i := range m.runs {
		if m.runs[i].ID == id {
			return &m.runs[i], nil
		}
	}
	return nil, nil
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected load command from Init")
	}
	s.Update(cmd())
}

func TestHistoryScreen_Loads(t *testing.T) {
	repo := &mockRunRepo{runs: []store.Run{
		{ID: "r2", CreatedAt: time.Now(), Subjects: []string{"A", "B"}, Rows: 8, TotalSeconds: 3600, OutputPath: "b.xlsx"},
		{ID: "r1", CreatedAt: time.Now(), Subjects: []string{"A"}, Rows: 2, OutputPath: "a.xlsx"},
	}}
	s := New(repo)
	load(t, s)

	if !s.loaded {
		t.Fatal("expected loaded state")
	}
	if repo.opts.Limit != Limit {
		t.Errorf("Limit = %d, want %d", repo.opts.Limit, Limit)
	}
	view := s.View(100, 24)
	if !strings.Contains(view, "2 matérias  8 dias  01:00:00") {
		t.Errorf("view missing run line: %q", view)
	}
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := New(&mockRunRepo{})
	load(t, s)
	if !strings.Contains(s.View(80, 24), "Nenhum cronograma") {
		t.Error("expected empty message")
	}
}

func TestHistoryScreen_Error(t *testing.T) {
	s := New(&mockRunRepo{err: errors.New("disk gone")})
	load(t, s)
	if !strings.Contains(s.View(80, 24), "disk gone") {
		t.Error("expected error in view")
	}
}

func TestHistoryScreen_NavigateAndExpand(t *testing.T) {
	repo := &mockRunRepo{runs: []store.Run{
		{ID: "first", Subjects: []string{"A"}},
		{ID: "second", Subjects: []string{"B", "C"}, OutputPath: "out.csv"},
	}}
	s := New(repo)
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Fatalf("selected = %d, want 1", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected moved past the end: %d", s.selected)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	view := s.View(100, 24)
	for _, want := range []string{"Ordem: B, C", "Arquivo: out.csv", "ID: second"} {
		if !strings.Contains(view, want) {
			t.Errorf("expanded view missing %q", want)
		}
	}
}

func TestHistoryScreen_EscPops(t *testing.T) {
	s := New(&mockRunRepo{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}
