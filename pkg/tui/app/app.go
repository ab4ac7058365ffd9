package teaui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/monthcal/pkg/app"
	"tableflip.dev/monthcal/pkg/dategrid"
	"tableflip.dev/monthcal/pkg/event"
	"tableflip.dev/monthcal/pkg/state"
	"tableflip.dev/monthcal/pkg/store"
	"tableflip.dev/monthcal/pkg/tui/components/calendar"
	"tableflip.dev/monthcal/pkg/tui/components/help"
	"tableflip.dev/monthcal/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeHelp
)

const normalHelp = "←↓↑→ day · n/p month · t today · a add · tab event · m move · x delete · v view · ? help · q quit"

// Model is the interactive calendar.
type Model struct {
	cal         *app.Controller
	persistence store.Persistence

	ctx    context.Context
	cancel context.CancelFunc

	mode     mode
	input    textinput.Model
	help     *help.Model
	theme    theme.Theme
	calendar calendar.Options

	// eventIndex is the highlighted event of the selected day.
	eventIndex int
	// carrying is the transfer record of a picked up event.
	carrying   []byte
	carryTitle string

	status    string
	statusErr bool

	termWidth  int
	termHeight int

	watchCh     <-chan store.Change
	watchCancel context.CancelFunc
}

// New builds the model around cal. p is watched for changes made by other
// processes and may be nil.
func New(cal *app.Controller, p store.Persistence) *Model {
	ti := textinput.New()
	ti.Placeholder = "Event title"
	ti.CharLimit = 256
	ti.Prompt = ""

	th := theme.Default()
	ctx, cancel := context.WithCancel(context.Background())

	return &Model{
		cal:         cal,
		persistence: p,
		ctx:         ctx,
		cancel:      cancel,
		mode:        modeNormal,
		input:       ti,
		help:        help.New(56, 30, th.Modal.Frame, th.Modal.Title),
		theme:       th,
		calendar:    calendar.DefaultOptions(),
		termWidth:   80,
		termHeight:  24,
	}
}

// Init starts watching for external changes.
func (m *Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.persistence)
}

type watchStartedMsg struct {
	ch     <-chan store.Change
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	change store.Change
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, p store.Persistence) tea.Cmd {
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := p.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if c, ok := <-ch; ok {
			return watchEventMsg{change: c}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) handleWatchEvent(c store.Change) {
	if !c.Touches(state.Key) {
		return
	}
	if err := m.cal.Reload(); err != nil {
		m.setError(err)
		return
	}
	m.clampEventIndex()
}

// Update handles Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.help.SetSize(min(msg.Width, 60), msg.Height-4)
		m.input.SetWidth(max(msg.Width-12, 10))
	case watchStartedMsg:
		if msg.err != nil {
			m.setError(fmt.Errorf("watch: %w", msg.err))
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.handleWatchEvent(msg.change)
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		if m.ctx.Err() == nil {
			cmds = append(cmds, startWatchCmd(m.ctx, m.persistence))
		}
	case tea.KeyPressMsg:
		m.handleKeyPress(msg, &cmds)
	default:
		if m.mode == modeInsert {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch m.mode {
	case modeInsert:
		m.handleInsertKey(msg, cmds)
	case modeHelp:
		m.handleHelpKey(msg, cmds)
	default:
		m.handleNormalKey(msg, cmds)
	}
}

func (m *Model) handleHelpKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "?":
		m.mode = modeNormal
	default:
		*cmds = append(*cmds, m.help.Update(msg))
	}
}

func (m *Model) handleInsertKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.exitInsert()
		m.setStatus("Add cancelled")
	case "enter":
		title := strings.TrimSpace(m.input.Value())
		m.exitInsert()
		m.addEvent(title)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.stopWatch()
		m.cancel()
		*cmds = append(*cmds, tea.Quit)
	case "left", "h":
		m.moveSelection(-1)
	case "right", "l":
		m.moveSelection(1)
	case "up", "k":
		m.moveSelection(-7)
	case "down", "j":
		m.moveSelection(7)
	case "n":
		m.navigate(app.Next)
	case "p":
		m.navigate(app.Previous)
	case "t":
		m.selectDay(m.cal.Today())
	case "v":
		next := m.cal.View().Next()
		if err := m.cal.SetView(next); err != nil {
			m.setError(err)
			return
		}
		m.setStatus("Showing " + string(next))
	case "tab":
		m.cycleEvent(1)
	case "shift+tab":
		m.cycleEvent(-1)
	case "a":
		m.enterInsert(cmds)
	case "x":
		m.deleteSelected()
	case "m":
		m.pickUp()
	case "enter":
		m.drop()
	case "esc":
		if m.carrying != nil {
			m.setStatus("Put back " + m.carryTitle)
			m.carrying = nil
			m.carryTitle = ""
		}
	case "?":
		m.mode = modeHelp
	}
}

func (m *Model) enterInsert(cmds *[]tea.Cmd) {
	m.mode = modeInsert
	m.input.SetValue("")
	if cmd := m.input.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
}

func (m *Model) exitInsert() {
	m.mode = modeNormal
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) addEvent(title string) {
	if title == "" {
		m.setStatus("Add cancelled, empty title")
		return
	}
	d := event.NewDraft(m.cal.SelectedDate())
	d.Title = title
	e, err := m.cal.AddEvent(d)
	if err != nil {
		m.setError(err)
		return
	}
	for i, ev := range m.dayEvents() {
		if ev.ID == e.ID {
			m.eventIndex = i
		}
	}
	m.setStatus("Added " + e.Title)
}

func (m *Model) moveSelection(days int) {
	m.selectDay(dategrid.AddDays(m.cal.SelectedDate(), days))
}

func (m *Model) selectDay(day time.Time) {
	if err := m.cal.SelectDay(day); err != nil {
		m.setError(err)
		return
	}
	m.eventIndex = 0
	m.clearStatus()
}

func (m *Model) navigate(dir app.Direction) {
	if err := m.cal.Navigate(dir); err != nil {
		m.setError(err)
		return
	}
	m.eventIndex = 0
	m.clearStatus()
}

func (m *Model) dayEvents() []event.Event {
	return m.cal.EventsOnDay(m.cal.SelectedDate())
}

func (m *Model) selectedEvent() (event.Event, bool) {
	events := m.dayEvents()
	if m.eventIndex < 0 || m.eventIndex >= len(events) {
		return event.Event{}, false
	}
	return events[m.eventIndex], true
}

func (m *Model) cycleEvent(step int) {
	n := len(m.dayEvents())
	if n == 0 {
		m.eventIndex = 0
		return
	}
	m.eventIndex = ((m.eventIndex+step)%n + n) % n
}

func (m *Model) clampEventIndex() {
	n := len(m.dayEvents())
	if m.eventIndex >= n {
		m.eventIndex = max(n-1, 0)
	}
}

func (m *Model) deleteSelected() {
	e, ok := m.selectedEvent()
	if !ok {
		m.setStatus("No event selected")
		return
	}
	if err := m.cal.DeleteEvent(e.ID); err != nil {
		m.setError(err)
		return
	}
	m.clampEventIndex()
	m.setStatus("Deleted " + e.Title)
}

func (m *Model) pickUp() {
	e, ok := m.selectedEvent()
	if !ok {
		m.setStatus("No event selected")
		return
	}
	payload, err := m.cal.Transfer(e.ID)
	if err != nil {
		m.setError(err)
		return
	}
	m.carrying = payload
	m.carryTitle = e.Title
	m.setStatus("Carrying " + e.Title + ", pick a day and press enter")
}

func (m *Model) drop() {
	if m.carrying == nil {
		return
	}
	payload, title := m.carrying, m.carryTitle
	m.carrying = nil
	m.carryTitle = ""

	e, moved, err := m.cal.Drop(payload, m.cal.SelectedDate())
	if err != nil {
		m.setError(err)
		return
	}
	if !moved {
		m.setStatus(title + " is gone, nothing moved")
		return
	}
	for i, ev := range m.dayEvents() {
		if ev.ID == e.ID {
			m.eventIndex = i
		}
	}
	m.setStatus("Moved " + e.Title + " to " + dategrid.FormatDisplayDate(e.Start.Time))
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = "ERR: " + err.Error()
	m.statusErr = true
}

func (m *Model) clearStatus() {
	if !m.statusErr {
		m.status = ""
	}
}

// View renders the grid, the selected day and the footer.
func (m *Model) View() string {
	if m.mode == modeHelp {
		return m.help.View()
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	left := m.renderGrid()
	right := m.renderDay()
	if left == "" {
		sections = append(sections, right)
	} else {
		gap := lipgloss.NewStyle().Padding(0, 1).Render
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, left, gap(" "), right))
	}

	if m.mode == modeInsert {
		sections = append(sections, "Add: "+m.input.View())
	}
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n\n")
}

func (m *Model) renderHeader() string {
	selected := m.cal.SelectedDate()
	title := m.theme.Header.Title.Render(calendar.Title(selected))
	return title + "  " + m.theme.Header.View.Render(string(m.cal.View()))
}

func (m *Model) renderGrid() string {
	var days []app.Day
	switch m.cal.View() {
	case state.ViewDay:
		return ""
	case state.ViewWeek:
		days = m.cal.Week()
	default:
		days = m.cal.Month()
	}

	selected := m.cal.SelectedDate()
	cells := make([]calendar.Day, len(days))
	for i, d := range days {
		cells[i] = calendar.Day{
			Date:       d.Date,
			InMonth:    d.IsCurrentMonth,
			HasEntry:   len(d.Events) > 0,
			IsToday:    d.IsToday,
			IsSelected: dategrid.IsSameDay(d.Date, selected),
			IsWeekend:  d.IsWeekend,
			IsHoliday:  d.Holiday != "",
			IsTarget:   m.carrying != nil,
		}
	}
	return calendar.Render(cells, m.calendar)
}

func (m *Model) renderDay() string {
	th := m.theme.Day
	day := m.cal.SelectedDay()

	lines := []string{th.Title.Render(dategrid.FormatDisplayDate(day.Date))}
	var notes []string
	if day.Holiday != "" {
		notes = append(notes, th.Holiday.Render(day.Holiday))
	}
	if day.Weather != nil {
		notes = append(notes, th.Weather.Render(fmt.Sprintf("%s %d°C", day.Weather.Symbol(), day.Weather.Temperature)))
	}
	if len(notes) > 0 {
		lines = append(lines, strings.Join(notes, "  "))
	}
	lines = append(lines, "")

	if len(day.Events) == 0 {
		lines = append(lines, th.Empty.Render("No events"))
	}
	for i, e := range day.Events {
		cursor := "  "
		style := th.Event
		if i == m.eventIndex {
			cursor = "→ "
			style = th.ActiveEvent
		}
		line := cursor + theme.Swatch(e.Color) + " " + th.Time.Render(e.TimeRange()) + " " + style.Render(e.Title)
		lines = append(lines, line)
	}
	return th.Frame.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderFooter() string {
	th := m.theme.Footer
	var parts []string
	if m.carrying != nil {
		parts = append(parts, th.Carry.Render("Carrying "+m.carryTitle))
	}
	if m.status != "" {
		if m.statusErr {
			parts = append(parts, th.Error.Render(m.status))
		} else {
			parts = append(parts, th.Status.Render(m.status))
		}
	}
	parts = append(parts, th.Help.Render(normalHelp))
	return strings.Join(parts, "\n")
}

// Run launches the interactive TUI program.
func Run(cal *app.Controller, p store.Persistence) error {
	m := New(cal, p)
	defer m.cancel()
	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
