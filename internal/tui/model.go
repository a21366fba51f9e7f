package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vito/progrock"
	"go.trai.ch/gtprob/internal/core/domain"
)

// VertexState is the displayed state of one topology evaluation.
type VertexState struct {
	ID     string
	Name   string
	Status domain.VertexStatus
}

type styles struct {
	header    lipgloss.Style
	running   lipgloss.Style
	completed lipgloss.Style
	cached    lipgloss.Style
	failed    lipgloss.Style
	pending   lipgloss.Style
}

// Model is the Bubble Tea model of the progress display.
type Model struct {
	tape     TapeSource
	total    int
	vertices []VertexState
	width    int
	height   int
	spinner  spinner.Model
	styles   styles
}

// NewModel creates a model reading from tape. total is the number of
// topologies in the batch; zero hides the progress counter.
func NewModel(tape TapeSource, total int) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))

	return &Model{
		tape:    tape,
		total:   total,
		spinner: s,
		styles: styles{
			header:    lipgloss.NewStyle().Bold(true),
			running:   lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")),
			completed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),  // Green
			cached:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // Blue
			failed:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")), // Red
			pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")), // Gray
		},
	}
}

// Init initializes the model and starts reading from the tape.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForTape(m.tape),
		m.spinner.Tick,
	)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgTapeUpdate:
		m.processVertexUpdates(msg.Update)
		return m, WaitForTape(m.tape)
	case MsgTapeEnded:
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) processVertexUpdates(update *progrock.StatusUpdate) {
	if update == nil {
		return
	}
	for _, v := range update.Vertexes {
		m.updateOrAddVertex(v)
	}
}

func (m *Model) updateOrAddVertex(v *progrock.Vertex) {
	status := vertexStatus(v)
	for i, existing := range m.vertices {
		if existing.ID == v.Id {
			m.vertices[i].Status = status
			return
		}
	}
	m.vertices = append(m.vertices, VertexState{
		ID:     v.Id,
		Name:   v.Name,
		Status: status,
	})
}

func vertexStatus(v *progrock.Vertex) domain.VertexStatus {
	switch {
	case v.Completed == nil:
		return domain.VertexStatusRunning
	case v.Error != nil:
		return domain.VertexStatusFailed
	case v.Cached:
		return domain.VertexStatusCached
	default:
		return domain.VertexStatusCompleted
	}
}

// Counts returns how many vertices are done and how many of those were
// cached or failed.
func (m *Model) Counts() (done, cached, failed int) {
	for _, v := range m.vertices {
		if !v.Status.IsTerminal() {
			continue
		}
		done++
		switch v.Status {
		case domain.VertexStatusCached:
			cached++
		case domain.VertexStatusFailed:
			failed++
		}
	}
	return done, cached, failed
}

// View renders the current state of the model as a string.
func (m *Model) View() string {
	var s strings.Builder

	done, cached, failed := m.Counts()
	header := fmt.Sprintf("evaluated %d", done)
	if m.total > 0 {
		header = fmt.Sprintf("evaluated %d/%d", done, m.total)
	}
	header += fmt.Sprintf(" (%d cached, %d failed)", cached, failed)
	s.WriteString(m.styles.header.Render(header) + "\n")

	// Keep the most recent vertices when they do not fit.
	start := 0
	if rows := m.height - 1; rows > 0 && len(m.vertices) > rows {
		start = len(m.vertices) - rows
	}

	for _, v := range m.vertices[start:] {
		var icon string
		var style lipgloss.Style
		switch v.Status {
		case domain.VertexStatusRunning:
			icon = m.spinner.View()
			style = m.styles.running
		case domain.VertexStatusCompleted:
			icon = "✓"
			style = m.styles.completed
		case domain.VertexStatusCached:
			icon = "⚡"
			style = m.styles.cached
		case domain.VertexStatusFailed:
			icon = "✗"
			style = m.styles.failed
		default:
			icon = "•"
			style = m.styles.pending
		}

		fmt.Fprintf(&s, "%s %s\n", style.Render(icon), v.Name)
	}

	return s.String()
}
