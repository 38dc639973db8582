package tui

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Model is the Bubble Tea model driving one snake session.
type Model struct {
	session       *snake.Session
	screen        *core.Screen
	config        core.RuntimeConfig
	keys          KeyMap
	help          help.Model
	logger        *log.Logger
	screenshotDir string
	paused        bool
	quitting      bool
}

// NewModel creates a model with a fresh session. A zero cfg.Seed picks a
// time-based seed. A nil logger discards everything.
func NewModel(settings snake.Settings, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Styles = help.Styles{} // The board renderer colors the line itself

	return Model{
		session:       snake.NewSession(settings, rand.New(rand.NewSource(cfg.Seed))),
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:        cfg,
		keys:          DefaultKeyMap(),
		help:          h,
		logger:        logger,
		screenshotDir: defaultScreenshotDir(),
	}
}

// Init logs the session start and starts the tick loop.
func (m Model) Init() tea.Cmd {
	snap := m.session.Snapshot()
	m.logger.Info("session started",
		"seed", m.config.Seed,
		"grid", fmt.Sprintf("%dx%d", snap.Grid.W, snap.Grid.H),
		"obstacles", len(snap.Obstacles),
		"tick_rate", m.config.TickRate,
	)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	over := m.session.Phase() == snake.PhaseGameOver

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit", "score", m.session.Score())
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if over {
			m.session = m.session.Restart()
			m.paused = false
			m.logger.Info("restarted")
		}
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		if !over {
			m.paused = !m.paused
			m.logger.Debug("pause toggled", "paused", m.paused)
		}
		return m, nil
	}

	if d := m.keys.Direction(msg); d != core.DirNone && !m.paused {
		m.session.Steer(d)
	}
	return m, nil
}

// handleResize keeps the screen buffer in sync with the terminal.
// The board has a fixed size, so the session is never reset here.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick advances the session unless it is paused, over or hidden by a
// too-small terminal.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	if m.Ticking() {
		if m.session.Tick(core.DirNone) == snake.Blocked {
			snap := m.session.Snapshot()
			m.logger.Info("game over",
				"score", snap.Score,
				"reason", snap.Reason.String(),
				"ticks", snap.Tick,
			)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// Ticking reports whether the next TickMsg will advance the session.
func (m Model) Ticking() bool {
	return !m.paused &&
		m.session.Phase() == snake.PhasePlaying &&
		Fits(m.session.Settings().Grid, m.screen.Width(), m.screen.Height())
}

// Session returns the session currently being played.
func (m Model) Session() *snake.Session {
	return m.session
}

// Paused reports whether the game is paused.
func (m Model) Paused() bool {
	return m.paused
}

func (m Model) frame() Frame {
	fw, _ := FrameSize(m.session.Settings().Grid)
	h := m.help
	h.Width = fw
	return Frame{
		Snap:   m.session.Snapshot(),
		Paused: m.paused,
		Help:   h.View(m.keys),
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	DrawFrame(m.screen, m.frame())
	return RenderScreen(m.screen)
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	if m.screenshotDir == "" {
		return "", errors.New("screenshot: no home directory")
	}
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	DrawFrame(m.screen, m.frame())

	name := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.screenshotDir, name)
	if err := os.WriteFile(path, []byte(plainText(m.screen)), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "screenshots")
}

// Run starts the Bubble Tea program on the local terminal.
func Run(settings snake.Settings, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(settings, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
