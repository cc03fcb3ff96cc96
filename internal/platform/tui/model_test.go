package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-meteors/internal/config"
	"github.com/vovakirdan/tui-meteors/internal/core"
	"github.com/vovakirdan/tui-meteors/internal/meteors"
	"github.com/vovakirdan/tui-meteors/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	m, err := NewModel(GameOptions{
		Runtime: core.RuntimeConfig{TickRate: 30, Seed: 1},
		Meteors: config.DefaultMeteorsConfig(),
		Player:  "tester",
		Store:   store,
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	t.Cleanup(m.Stop)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestNewModelRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultMeteorsConfig()
	cfg.Palette = []string{"not-a-color"}

	if _, err := NewModel(GameOptions{Meteors: cfg}); err == nil {
		t.Error("expected an error for an unknown palette color")
	}
}

func TestModelArrowKeysMovePlatform(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	platform, _ := m.game.session.Snapshot()
	if platform.X != meteors.Width-1 {
		t.Errorf("platform x = %d, expected %d", platform.X, meteors.Width-1)
	}
	if !m.game.display.PointIsLit(platform.X, platform.Y) {
		t.Error("platform should be lit after moving")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	platform, _ = m.game.session.Snapshot()
	if platform.X != meteors.Width-2 {
		t.Errorf("platform x = %d, expected %d", platform.X, meteors.Width-2)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if m.game.ctx.Err() == nil {
		t.Error("quit should cancel the running game")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	m := newTestModel(t, nil)
	first := m.game

	m, cmd := update(t, m, runeKey('r'))
	if cmd != nil || m.game != first {
		t.Fatal("restart should be ignored while playing")
	}

	m.gameState.GameOver = true
	m.scoreSaved = true
	m, cmd = update(t, m, runeKey('r'))
	if cmd == nil {
		t.Fatal("restart should start the new game")
	}
	if m.game == first || m.game.id != first.id+1 {
		t.Error("restart should create the next game")
	}
	if first.ctx.Err() == nil {
		t.Error("restart should cancel the previous game")
	}
	if m.gameState.GameOver || m.scoreSaved {
		t.Error("restart should reset the game-over state")
	}
}

func TestModelRecordScore(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("alice", 40)

	m := newTestModel(t, store)
	m.gameState = core.GameState{Score: 7, GameOver: true}
	m.recordScore()

	if !m.scoreSaved {
		t.Error("score should be marked as saved")
	}
	best, err := store.PlayerBest("tester")
	if err != nil || best != 7 {
		t.Errorf("PlayerBest(tester) = %d, %v; expected 7", best, err)
	}
	if len(m.scores) != 2 || m.scores[0].Player != "alice" {
		t.Errorf("leaderboard not reloaded: %v", m.scores)
	}
	if m.savedID == 0 || m.scores[1].ID != m.savedID {
		t.Error("saved entry should be highlighted")
	}

	view := m.View()
	for _, want := range []string{"GAME OVER", "HIGH SCORES", "tester"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}

func TestModelViewWhilePlaying(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})

	view := m.View()
	if !strings.Contains(view, "METEORS") || !strings.Contains(view, "score 0") {
		t.Errorf("unexpected view:\n%s", view)
	}
	if strings.Contains(view, "GAME OVER") {
		t.Error("game over shown while playing")
	}
	if got := strings.Count(view, "\n") + 1; got != 30 {
		t.Errorf("view has %d lines, expected 30", got)
	}
}

func TestModelRestartKeepsSeedReproducible(t *testing.T) {
	restart := func() *game {
		m := newTestModel(t, nil)
		m.gameState.GameOver = true
		m, _ = update(t, m, runeKey('r'))
		t.Cleanup(m.Stop)
		return m.game
	}

	a, b := restart(), restart()
	if a.seed != b.seed {
		t.Errorf("restarted games got seeds %d and %d, expected equal", a.seed, b.seed)
	}
	if a.seed != 2 {
		t.Errorf("restarted game seed = %d, expected configured seed + game id = 2", a.seed)
	}

	first := newTestModel(t, nil)
	if first.game.seed != 1 {
		t.Errorf("first game seed = %d, expected the configured seed 1", first.game.seed)
	}
}
