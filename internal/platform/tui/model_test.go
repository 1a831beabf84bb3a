package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

// fakeGame ends on the first Reveal with a fixed score.
type fakeGame struct {
	resets int
	steps  int
	best   int
	w, h   int
	over   bool
}

func (g *fakeGame) ID() string { return "easy" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.over = false
	g.w, g.h = cfg.ScreenW, cfg.ScreenH
}

func (g *fakeGame) Resize(w, h int) { g.w, g.h = w, h }

func (g *fakeGame) SetHighScore(best int) { g.best = best }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	if g.over || !in.Has(core.ActionReveal) {
		return core.StepResult{State: g.State()}
	}
	g.over = true
	return core.StepResult{State: g.State(), Finished: true}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "FAKE")
}

func (g *fakeGame) State() core.GameState {
	if g.over {
		return core.GameState{Score: 700, GameOver: true, Won: true}
	}
	return core.GameState{}
}

func (g *fakeGame) Result() registry.Result {
	return registry.Result{
		SessionID: "fake-" + string(rune('a'+g.resets)),
		Outcome:   "won",
		Score:     700,
		Elapsed:   60,
		Revealed:  54,
	}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 1, Seed: 42}
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, want GameModel", next)
	}
	return gm, cmd
}

func TestGameModelLayout(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, nil, nil, testConfig())

	if g.resets != 1 {
		t.Fatalf("Reset called %d times, want 1", g.resets)
	}
	if g.w != 80 || g.h != 24-shortHelpHeight {
		t.Errorf("game size = %dx%d, want 80x%d", g.w, g.h, 24-shortHelpHeight)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.resets != 1 {
		t.Error("resize should not reset a game that supports Resize")
	}
	if g.w != 100 || g.h != 40-shortHelpHeight {
		t.Errorf("after resize game size = %dx%d, want 100x%d", g.w, g.h, 40-shortHelpHeight)
	}

	m, _ = update(t, m, runeKey('?'))
	if g.h != 40-fullHelpHeight {
		t.Errorf("with full help game height = %d, want %d", g.h, 40-fullHelpHeight)
	}
	if !strings.HasPrefix(m.View(), "FAKE") {
		t.Errorf("View() should start with the game screen, got %q", m.View())
	}
}

func TestGameModelRecordsResultOnce(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := NewGameModel(g, store, nil, testConfig())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.State().GameOver {
		t.Fatal("game should be over after reveal")
	}

	results, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("stored %d results, want 1", len(results))
	}
	r := results[0]
	if r.Difficulty != "easy" || r.Score != 700 || r.Outcome != "won" {
		t.Errorf("stored result = %+v", r)
	}
	if got := store.HighScores().HighScore(minesweeper.Easy); got != 700 {
		t.Errorf("high score = %d, want 700", got)
	}
}

func TestGameModelRestartAppliesHighScore(t *testing.T) {
	store := openStore(t)
	store.RecordScore(minesweeper.Easy, 1234)

	g := &fakeGame{}
	m := NewGameModel(g, store, nil, testConfig())
	if g.best != 1234 {
		t.Errorf("best on start = %d, want 1234", g.best)
	}

	store.RecordScore(minesweeper.Easy, 2000)
	m, _ = update(t, m, runeKey('r'))
	if g.resets != 2 {
		t.Errorf("Reset called %d times, want 2", g.resets)
	}
	if g.best != 2000 {
		t.Errorf("best after restart = %d, want 2000", g.best)
	}
	if m.State().GameOver {
		t.Error("restart should start a fresh game")
	}
}

func TestGameModelBack(t *testing.T) {
	m := NewGameModel(&fakeGame{}, nil, nil, testConfig())
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || m.IsQuitting() || cmd != nil {
		t.Errorf("esc in a session: back=%v quit=%v cmd=%v", m.BackToMenu(), m.IsQuitting(), cmd != nil)
	}

	sm := NewGameModel(&fakeGame{}, nil, nil, testConfig(), Standalone())
	sm, cmd = update(t, sm, tea.KeyMsg{Type: tea.KeyEsc})
	if !sm.IsQuitting() || cmd == nil {
		t.Error("esc in standalone mode should quit")
	}
	if sm.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestGameModelMouse(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, nil, nil, testConfig())

	m, _ = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if g.steps != 0 {
		t.Errorf("release should not step the game, steps = %d", g.steps)
	}

	m, _ = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if g.steps != 1 || !m.State().GameOver {
		t.Errorf("left click should reveal, steps = %d, over = %v", g.steps, m.State().GameOver)
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	m := NewGameModel(&fakeGame{}, nil, nil, testConfig())

	if _, cmd := update(t, m, TickMsg{ID: m.tickID}); cmd == nil {
		t.Error("current tick should schedule the next one")
	}
	if _, cmd := update(t, m, TickMsg{ID: m.tickID - 1}); cmd != nil {
		t.Error("stale tick should end its chain")
	}
}

func TestGameModelPlaysMinesweeper(t *testing.T) {
	store := openStore(t)
	game, err := registry.Create("easy")
	if err != nil {
		t.Fatalf("registry.Create(easy) error = %v", err)
	}
	m := NewGameModel(game, store, nil, testConfig())

	view := m.View()
	if !strings.Contains(view, "Flags: 10") || !strings.Contains(view, "Time: 000") {
		t.Errorf("View() HUD missing, got:\n%s", view)
	}
}
