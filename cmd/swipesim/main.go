// Command swipesim replays humanized drags against an in-memory surface
// and renders them as a terminal animation. It exists to eyeball generated
// trajectories and timing without driving a real pointer.
package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	gestures "github.com/rastkol/swipe-core/core"
	"github.com/rastkol/swipe-core/core/pointer"
)

const (
	canvasWidth  = 64
	canvasHeight = 16
)

var (
	trailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	targetStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	canvasBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

type pointerMsg struct {
	event pointer.TimedEvent
}

type outcomeMsg struct {
	text string
}

// canvasSurface accepts pointer events and forwards them to the UI loop.
type canvasSurface struct {
	msgs chan tea.Msg
}

func (s *canvasSurface) IsDisplayable() bool { return true }
func (s *canvasSurface) IsInteractive() bool { return true }

func (s *canvasSurface) Dispatch(ctx context.Context, event pointer.TimedEvent) error {
	select {
	case s.msgs <- pointerMsg{event: event}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type keyMap struct {
	Replay key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Replay: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "new drag")),
		Cancel: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cancel drag")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type model struct {
	sequencer *gestures.Sequencer
	surface   *canvasSurface
	msgs      chan tea.Msg

	keys    keyMap
	spinner spinner.Model

	start   pointer.Point
	end     pointer.Point
	trail   []pointer.Point
	gesture *gestures.Gesture
	running bool
	status  string
	seed    uint64
}

func newModel() model {
	msgs := make(chan tea.Msg, 64)
	seed := uint64(time.Now().UnixNano())

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = headStyle

	return model{
		sequencer: gestures.NewSequencer(gestures.WithEntropy(gestures.NewSeededEntropy(seed))),
		surface:   &canvasSurface{msgs: msgs},
		msgs:      msgs,
		keys:      newKeyMap(),
		spinner:   sp,
		status:    "press space to replay a drag",
		seed:      seed,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForEvent())
}

func (m model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-m.msgs
	}
}

func (m *model) startGesture() {
	m.seed++
	entropy := gestures.NewSeededEntropy(m.seed)
	m.start = pointer.Point{
		X: 4 + entropy.Float64()*12,
		Y: 3 + entropy.Float64()*float64(canvasHeight-6),
	}
	m.end = pointer.Point{
		X: float64(canvasWidth) - 6 - entropy.Float64()*12,
		Y: m.start.Y,
	}
	m.trail = m.trail[:0]
	m.running = true
	m.status = "dragging"

	m.gesture = m.sequencer.Run(context.Background(),
		gestures.GestureRequest{Target: m.surface, Start: m.start, End: m.end},
		gestures.WithCompletedCallback(func(emittedEvents int) {
			m.msgs <- outcomeMsg{text: fmt.Sprintf("completed with %d events", emittedEvents)}
		}),
		gestures.WithAbortedCallback(func(err error) {
			m.msgs <- outcomeMsg{text: fmt.Sprintf("aborted: %v", err)}
		}),
		gestures.WithCancelledCallback(func() {
			m.msgs <- outcomeMsg{text: "cancelled"}
		}),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.sequencer.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Replay):
			if !m.running {
				m.startGesture()
			}
			return m, nil
		case key.Matches(msg, m.keys.Cancel):
			if m.running && m.gesture != nil {
				m.gesture.Cancel()
			}
			return m, nil
		}
	case pointerMsg:
		m.trail = append(m.trail, msg.event.Position)
		return m, m.waitForEvent()
	case outcomeMsg:
		m.running = false
		m.status = msg.text
		return m, m.waitForEvent()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(canvasBorder.Render(m.renderCanvas()))
	b.WriteString("\n")

	if m.running {
		b.WriteString(m.spinner.View())
	}
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n\n")

	help := "space starts a fresh drag with a new seed, c cancels the one in " +
		"flight, q quits. Every dot is a dispatched pointer event; watch the " +
		"spacing tighten as the drag commits and the small overshoot before " +
		"it settles on the target."
	b.WriteString(statusStyle.Render(wordwrap.String(help, canvasWidth)))
	b.WriteString("\n")

	return b.String()
}

func (m model) renderCanvas() string {
	cells := make([][]string, canvasHeight)
	for y := range cells {
		cells[y] = make([]string, canvasWidth)
		for x := range cells[y] {
			cells[y][x] = " "
		}
	}

	plot := func(p pointer.Point, glyph string) {
		x := int(math.Round(p.X))
		y := int(math.Round(p.Y))
		if x < 0 || x >= canvasWidth || y < 0 || y >= canvasHeight {
			return
		}
		cells[y][x] = glyph
	}

	plot(m.end, targetStyle.Render("x"))
	for _, p := range m.trail {
		plot(p, trailStyle.Render("·"))
	}
	if len(m.trail) > 0 {
		plot(m.trail[len(m.trail)-1], headStyle.Render("o"))
	}

	rows := make([]string, canvasHeight)
	for y, row := range cells {
		rows[y] = strings.Join(row, "")
	}
	return strings.Join(rows, "\n")
}

func main() {
	if _, err := tea.NewProgram(newModel()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "swipesim: %v\n", err)
		os.Exit(1)
	}
}
