package workflow

import (
	"fmt"
	"strings"

	"github.com/alkime/notices/internal/selector"
	"github.com/alkime/notices/internal/tui/components/phases"
	"github.com/alkime/notices/internal/tui/style"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type resultsKeyMap struct {
	Reroll key.Binding
	Back   key.Binding
}

func defaultResultsKeyMap() resultsKeyMap {
	return resultsKeyMap{
		Reroll: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "re-roll"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "change filters"),
		),
	}
}

type resultsPhase struct {
	session  *Session
	keys     resultsKeyMap
	viewport viewport.Model
}

// NewResultsPhase creates the phase showing the outcome banner and the
// composed messages in a scrollable viewport.
func NewResultsPhase(session *Session) tea.Model {
	return &resultsPhase{
		session: session,
		keys:    defaultResultsKeyMap(),
	}
}

func (rp *resultsPhase) Init() tea.Cmd {
	rp.setupViewport()
	return nil
}

func (rp *resultsPhase) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := teaMsg.(type) {
	case tea.WindowSizeMsg:
		rp.setupViewport()
		return rp, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, rp.keys.Reroll):
			// back to the recommending phase, which samples again on Init
			return rp, phases.PrevPhaseCmd
		case key.Matches(msg, rp.keys.Back):
			return rp, phases.GotoPhaseCmd(PhaseFilters)
		}
	}

	var cmd tea.Cmd
	rp.viewport, cmd = rp.viewport.Update(teaMsg)

	return rp, cmd
}

func (rp *resultsPhase) View() string {
	var sb strings.Builder

	if rp.session.Err != nil {
		sb.WriteString(style.Error.Render("✗ " + rp.session.Err.Error()))
		sb.WriteString("\n\n")
	} else {
		sb.WriteString(rp.renderBanner())
		sb.WriteString("\n\n")

		if len(rp.session.Result.Messages) > 0 {
			sb.WriteString(style.Viewport.Render(rp.viewport.View()))
			sb.WriteString("\n\n")
		}
	}

	sb.WriteString(renderKeyHelp(rp.keys.Reroll, " "))
	sb.WriteString(renderKeyHelp(rp.keys.Back, "\n"))
	sb.WriteString(renderGlobalKeyHelp())

	return sb.String()
}

func (rp *resultsPhase) renderBanner() string {
	res := rp.session.Result
	switch res.Outcome {
	case selector.ExactMatch:
		return style.Success.Render(res.Banner())
	case selector.FallbackMatch:
		return style.Info.Render(res.Banner())
	default:
		return style.Warning.Render(res.Banner())
	}
}

func (rp *resultsPhase) setupViewport() {
	headerHeight := 6
	footerHeight := 4
	viewportHeight := max(rp.session.Height-headerHeight-footerHeight, 5)
	viewportWidth := max(rp.session.Width-4, 10)

	rp.viewport = viewport.New(viewportWidth, viewportHeight)
	rp.viewport.SetContent(wrapText(rp.renderMessages(), viewportWidth))
}

func (rp *resultsPhase) renderMessages() string {
	var sb strings.Builder

	for i, msg := range rp.session.Result.Messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(style.Bullet.Render(fmt.Sprintf("추천 메시지 %d", i+1)))
		sb.WriteString("\n")
		sb.WriteString(msg.Text)
	}

	return sb.String()
}
