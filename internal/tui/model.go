// Package tui is the interactive terminal front end of the recommender.
package tui

import (
	"context"
	"strings"

	"github.com/alkime/notices/internal/options"
	"github.com/alkime/notices/internal/tui/components/phases"
	"github.com/alkime/notices/internal/tui/style"
	"github.com/alkime/notices/internal/tui/workflow"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Title is the header shown above every phase.
const Title = "🧠 메시지 자동 추천기"

// Config holds what the TUI needs from the rest of the app.
type Config struct {
	Cancel      context.CancelFunc
	Options     options.Options
	Recommender workflow.Recommender
}

// model walks the user through filters, recommending and results.
type model struct {
	config  Config
	keys    workflow.GlobalKeyMap
	session *workflow.Session
	phases  phases.Model
}

// New creates the TUI model. ctx bounds every recommendation request.
func New(ctx context.Context, config Config) tea.Model {
	session := workflow.NewSession()

	return &model{
		config:  config,
		keys:    workflow.DefaultGlobalKeyMap(),
		session: session,
		phases: phases.New([]phases.Phase{
			phases.NewPhase(workflow.PhaseFilters, workflow.NewFiltersPhase(session, config.Options)),
			phases.NewPhase(workflow.PhaseRecommending,
				workflow.NewRecommendingPhase(ctx, session, config.Recommender)),
			phases.NewPhase(workflow.PhaseResults, workflow.NewResultsPhase(session)),
		}),
	}
}

// Init returns the initial command.
func (m *model) Init() tea.Cmd {
	return m.phases.Init()
}

// Update handles all messages.
func (m *model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	// Phases size themselves from the session
	if wsm, ok := teaMsg.(tea.WindowSizeMsg); ok {
		m.session.Width = wsm.Width
		m.session.Height = wsm.Height
	}

	// Global key handling (quit from any phase)
	if km, ok := teaMsg.(tea.KeyMsg); ok {
		if key.Matches(km, m.keys.ForceQuit) || key.Matches(km, m.keys.Quit) {
			if m.config.Cancel != nil {
				m.config.Cancel()
			}

			return m, tea.Quit
		}
	}

	// Delegate to phases container
	updatedPhases, cmd := m.phases.Update(teaMsg)
	m.phases = updatedPhases.(phases.Model) //nolint:forcetypeassert // phases.Model always returns phases.Model

	return m, cmd
}

// View renders the current UI.
func (m *model) View() string {
	var sb strings.Builder

	sb.WriteString(style.Title.Render(Title))
	sb.WriteString("  ")
	sb.WriteString(style.Subtitle.Render(m.phases.CurrentPhaseName()))
	sb.WriteString("\n\n")

	sb.WriteString(m.phases.View())

	return sb.String()
}
