package workflow

import (
	"context"
	"log/slog"
	"strings"

	"github.com/alkime/notices/internal/notice"
	"github.com/alkime/notices/internal/recommend"
	"github.com/alkime/notices/internal/tui/components/labeledspinner"
	"github.com/alkime/notices/internal/tui/components/phases"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// recommendDoneMsg carries the recommender's answer back to the phase.
type recommendDoneMsg struct {
	result recommend.Result
	err    error
}

type recommendingPhase struct {
	ctx     context.Context
	session *Session
	rec     Recommender
	spinner labeledspinner.Model
}

// NewRecommendingPhase creates the phase that runs the recommender for the
// session's criteria and advances once the messages are ready.
func NewRecommendingPhase(ctx context.Context, session *Session, rec Recommender) tea.Model {
	return &recommendingPhase{
		ctx:     ctx,
		session: session,
		rec:     rec,
		spinner: labeledspinner.New(
			spinner.Dot,
			"메시지를 만드는 중...",
			"조건에 맞는 메시지를 고르고 있습니다",
			"AI 작성기를 사용하면 잠시 걸릴 수 있습니다",
		),
	}
}

func (rp *recommendingPhase) Init() tea.Cmd {
	rp.spinner.Detail = describe(rp.session.Criteria)

	return tea.Batch(
		rp.spinner.Init(),
		rp.recommendCmd(rp.session.Criteria),
	)
}

func (rp *recommendingPhase) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := teaMsg.(recommendDoneMsg); ok {
		rp.session.Result = msg.result
		rp.session.Err = msg.err

		return rp, phases.NextPhaseCmd
	}

	var cmd tea.Cmd
	rp.spinner, cmd = rp.spinner.Update(teaMsg)

	return rp, cmd
}

func (rp *recommendingPhase) View() string {
	return rp.spinner.View()
}

func (rp *recommendingPhase) recommendCmd(c notice.Criteria) tea.Cmd {
	return func() tea.Msg {
		res, err := rp.rec.Recommend(rp.ctx, c)
		if err != nil {
			slog.Error("Recommendation failed", "error", err)
		}

		return recommendDoneMsg{result: res, err: err}
	}
}

// describe summarizes the criteria on one line.
func describe(c notice.Criteria) string {
	parts := []string{
		"태그: " + strings.Join(c.Tags, ", "),
		"톤: " + string(c.Tone),
	}
	if c.Category != "" {
		parts = append(parts, "유형: "+c.Category)
	}
	parts = append(parts,
		"날씨: "+string(c.Weather),
		"날짜: "+string(c.Calendar),
	)

	return strings.Join(parts, " · ")
}
