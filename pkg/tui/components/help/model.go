package help

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

//go:embed help.md
var helpText string

// Model renders the key help inside a bordered viewport.
type Model struct {
	viewport viewport.Model
	width    int
	height   int

	frame lipgloss.Style
	title lipgloss.Style
}

// New constructs a help overlay sized to the provided bounds.
func New(width, height int, frame, title lipgloss.Style) *Model {
	vp := viewport.New(
		viewport.WithWidth(max(width, 1)),
		viewport.WithHeight(max(height, 1)),
	)
	vp.MouseWheelEnabled = true
	model := &Model{
		viewport: vp,
		frame:    frame,
		title:    title,
	}
	model.SetSize(width, height)
	return model
}

// Update forwards scrolling to the viewport.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return cmd
}

// View renders the help content inside the frame.
func (m *Model) View() string {
	return m.frame.Width(m.width).Render(m.title.Render("Keys") + "\n\n" + m.viewport.View())
}

// SetSize configures the overlay bounds and re-wraps the text to fit. The
// viewport only grows as tall as the wrapped text.
func (m *Model) SetSize(width, height int) {
	minWidth, minHeight := 32, 8
	if width < minWidth {
		width = minWidth
	}
	if height < minHeight {
		height = minHeight
	}
	if m.width == width && m.height == height {
		return
	}

	m.width = width
	m.height = height

	innerWidth := max(width-m.frame.GetHorizontalFrameSize(), 1)
	innerHeight := max(height-m.frame.GetVerticalFrameSize()-2, 1)

	content := wrapKeys(strings.TrimRight(helpText, "\n"), innerWidth)
	if lines := strings.Count(content, "\n") + 1; lines < innerHeight {
		innerHeight = lines
	}

	m.viewport.SetWidth(innerWidth)
	m.viewport.SetHeight(innerHeight)
	m.viewport.SetContent(content)
	m.viewport.SetYOffset(0)
}

// wrapKeys wraps each line to width. Key lines keep their description
// column, so continuation lines are indented under it.
func wrapKeys(text string, width int) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if lipgloss.Width(line) <= width {
			out = append(out, line)
			continue
		}
		start := descStart(line)
		col := lipgloss.Width(line[:max(start, 0)])
		if start < 0 || width-col < 8 {
			out = append(out, wordwrap.String(line, width))
			continue
		}
		wrapped := strings.SplitN(wordwrap.String(line[start:], width-col), "\n", 2)
		out = append(out, line[:start]+wrapped[0])
		if len(wrapped) > 1 {
			out = append(out, indent.String(wrapped[1], uint(col)))
		}
	}
	return strings.Join(out, "\n")
}

// descStart returns the byte offset of the description in an indented
// "key  description" line, or -1.
func descStart(line string) int {
	trimmed := strings.TrimLeft(line, " ")
	lead := len(line) - len(trimmed)
	gap := strings.Index(trimmed, "  ")
	if lead == 0 || gap < 0 {
		return -1
	}
	rest := trimmed[gap:]
	return lead + gap + len(rest) - len(strings.TrimLeft(rest, " "))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
