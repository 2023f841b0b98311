package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/hanoi/pkg/config"
	herrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/render"
	"github.com/matzehuels/hanoi/pkg/session"
)

var playInputStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

const (
	maxInputLen      = 2
	maxTicksPerFrame = 32
)

// =============================================================================
// PlayModel - Interactive animation player
// =============================================================================

// tickMsg is one timer tick. Ticks from an earlier generation belong to a
// run that has since been reset and are dropped.
type tickMsg struct {
	gen int
}

// PlayModel is the bubbletea model driving a [session.Session].
type PlayModel struct {
	ctx  context.Context
	sess *session.Session
	cfg  *config.Config

	// renderer carries the color profile used for the board.
	renderer *lipgloss.Renderer

	input         string
	status        string
	statusLevel   statusLevel
	gen           int
	ticksPerFrame int
	interval      time.Duration
}

type statusLevel int

const (
	statusInfo statusLevel = iota
	statusWarn
	statusError
)

// NewPlayModel creates a player showing the initial tower of sess.
func NewPlayModel(ctx context.Context, cfg *config.Config, sess *session.Session) PlayModel {
	return PlayModel{
		ctx:           ctx,
		sess:          sess,
		cfg:           cfg,
		renderer:      lipgloss.DefaultRenderer(),
		input:         fmt.Sprint(sess.Disks()),
		status:        "Press enter to solve",
		ticksPerFrame: cfg.Animation.TicksPerFrame,
		interval:      cfg.Animation.TickInterval(),
	}
}

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.onTick(msg)
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "enter", "s":
			return m.start()
		case "r":
			return m.reset()
		case "+", "=":
			if m.ticksPerFrame < maxTicksPerFrame {
				m.ticksPerFrame++
			}
		case "-", "_":
			if m.ticksPerFrame > 1 {
				m.ticksPerFrame--
			}
		case "backspace":
			if m.input != "" {
				m.input = m.input[:len(m.input)-1]
			}
		default:
			if isDigit(key) && len(m.input) < maxInputLen {
				m.input += key
			}
		}
	}
	return m, nil
}

func (m PlayModel) start() (tea.Model, tea.Cmd) {
	if m.sess.Running() {
		m.setStatus("Animation in progress, press r to reset", statusWarn)
		return m, nil
	}
	if err := m.sess.Start(m.ctx, m.input); err != nil {
		m.setStatus(herrors.UserMessage(err), statusError)
		return m, nil
	}
	m.gen++
	m.setStatus(fmt.Sprintf("Solving %d disks", m.sess.Disks()), statusInfo)
	return m, m.tick()
}

func (m PlayModel) reset() (tea.Model, tea.Cmd) {
	if err := m.sess.Reset(m.ctx, m.input); err != nil {
		m.setStatus(herrors.UserMessage(err), statusError)
		return m, nil
	}
	m.gen++
	m.setStatus(fmt.Sprintf("Reset to %d disks", m.sess.Disks()), statusInfo)
	return m, nil
}

func (m PlayModel) onTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || !m.sess.Running() {
		return m, nil
	}
	for i := 0; i < m.ticksPerFrame && m.sess.Running(); i++ {
		m.sess.Tick(m.ctx)
	}
	if !m.sess.Running() {
		m.setStatus(fmt.Sprintf("Solved %d disks in %d moves", m.sess.Disks(), m.sess.MoveCount()), statusInfo)
		return m, nil
	}
	return m, m.tick()
}

func (m PlayModel) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (m *PlayModel) setStatus(msg string, level statusLevel) {
	m.status = msg
	m.statusLevel = level
}

func (m PlayModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Tower of Hanoi"))
	b.WriteString("\n\n")

	f := render.NewFrame(m.sess.Snapshot())
	b.WriteString(render.RenderTerminal(f,
		render.WithCellSize(m.cfg.Terminal.CellWidth, m.cfg.Terminal.CellHeight),
		render.WithStatusLine(),
		render.WithRenderer(m.renderer)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  Disks (1-6): %s", playInputStyle.Render(m.input+"_")))
	b.WriteString(StyleDim.Render(fmt.Sprintf("   speed x%d", m.ticksPerFrame)))
	b.WriteString("\n")

	switch m.statusLevel {
	case statusError:
		b.WriteString("  " + StyleError.Render(m.status))
	case statusWarn:
		b.WriteString("  " + StyleWarning.Render(m.status))
	default:
		b.WriteString("  " + StyleValue.Render(m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render("  0-9 disks  ⏎/s start  r reset  +/- speed  q quit"))

	return b.String()
}

func isDigit(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}
