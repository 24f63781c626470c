// Package player implements the interactive terminal player: it drives the
// animation sequencer with frame ticks and renders the cube state, move
// list and animation progress.
package player

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thirdsgames/autocuber"
)

const frameInterval = time.Second / 30

var faceletStyles = map[autocuber.Color]lipgloss.Style{
	autocuber.White:  lipgloss.NewStyle().Background(lipgloss.Color("15")),
	autocuber.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("11")),
	autocuber.Green:  lipgloss.NewStyle().Background(lipgloss.Color("10")),
	autocuber.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("12")),
	autocuber.Red:    lipgloss.NewStyle().Background(lipgloss.Color("9")),
	autocuber.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")),
}

var (
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	currentStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the bubbletea model for the player.
type Model struct {
	seq       *autocuber.Sequencer
	lastFrame time.Time
}

// New creates a player model driving the given sequencer.
func New(seq *autocuber.Sequencer) Model {
	return Model{seq: seq}
}

// Init starts the frame ticker.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update advances the sequencer on ticks and handles key commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		now := time.Time(msg)
		dt := frameInterval
		if !m.lastFrame.IsZero() {
			dt = now.Sub(m.lastFrame)
		}
		m.lastFrame = now
		m.seq.Advance(dt)
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			if !m.seq.Animating() {
				m.seq.Reset()
			}
		case "left", "h":
			if !m.seq.Animating() {
				m.seq.JumpToHistoryStep(m.seq.Cursor() - 1)
			}
		case "right", "l":
			if !m.seq.Animating() {
				m.seq.JumpToHistoryStep(m.seq.Cursor() + 1)
			}
		}
	}
	return m, nil
}

// View renders the cube net, the move list with the history cursor, and
// the current animation progress.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(renderNet(m.seq.Cube().Facelets()))
	b.WriteString("\n")
	b.WriteString(m.renderProgram())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString(helpStyle.Render("←/→: step history | r: reset | q: quit"))
	b.WriteString("\n")

	return b.String()
}

// renderNet draws the unfolded cube as colored cells.
func renderNet(facelets [6][9]autocuber.Color) string {
	cell := func(c autocuber.Color) string {
		return faceletStyles[c].Render("  ")
	}
	rowOf := func(face autocuber.CubeFace, row int) string {
		var r strings.Builder
		for col := 0; col < 3; col++ {
			r.WriteString(cell(facelets[face][row*3+col]))
		}
		return r.String()
	}

	var b strings.Builder
	indent := strings.Repeat(" ", 6)
	for row := 0; row < 3; row++ {
		b.WriteString(indent + rowOf(autocuber.CubeFaceU, row) + "\n")
	}
	for row := 0; row < 3; row++ {
		for _, face := range []autocuber.CubeFace{autocuber.CubeFaceL, autocuber.CubeFaceF, autocuber.CubeFaceR, autocuber.CubeFaceB} {
			b.WriteString(rowOf(face, row))
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(indent + rowOf(autocuber.CubeFaceD, row) + "\n")
	}
	return b.String()
}

// renderProgram shows the recorded moves with the cursor position.
func (m Model) renderProgram() string {
	program := m.seq.Program()
	if len(program) == 0 {
		return pendingStyle.Render("(no moves)") + "\n"
	}

	cursor := m.seq.Cursor()
	parts := make([]string, len(program))
	for i, mv := range program {
		switch {
		case i < cursor-1:
			parts[i] = doneStyle.Render(mv.Notation())
		case i == cursor-1:
			parts[i] = currentStyle.Render(mv.Notation())
		default:
			parts[i] = pendingStyle.Render(mv.Notation())
		}
	}
	return strings.Join(parts, " ") + "\n"
}

func (m Model) renderStatus() string {
	if m.seq.Animating() {
		const width = 20
		filled := int(m.seq.Progress() * width)
		bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
		return statusStyle.Render(fmt.Sprintf("animating %s step %d/%d", bar, m.seq.Cursor(), len(m.seq.Program())))
	}
	solved := ""
	if m.seq.Cube().IsSolved() {
		solved = " (solved)"
	}
	return statusStyle.Render(fmt.Sprintf("idle at step %d/%d%s", m.seq.Cursor(), len(m.seq.Program()), solved))
}

// Run starts the player, animating the given algorithm from the start.
func Run(seq *autocuber.Sequencer, moves []autocuber.Move) error {
	if err := seq.PerformAlgorithm(moves); err != nil {
		return err
	}
	_, err := tea.NewProgram(New(seq)).Run()
	return err
}
