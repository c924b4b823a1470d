package workflow

import (
	"errors"
	"testing"

	"github.com/alkime/notices/internal/recommend"
	"github.com/alkime/notices/internal/selector"
	"github.com/alkime/notices/internal/tui/components/phases"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultsPhase_View(t *testing.T) {
	tests := []struct {
		name    string
		result  recommend.Result
		banner  string
		message string
	}{
		{
			name: "exact",
			result: recommend.Result{
				Outcome:  selector.ExactMatch,
				Messages: []recommend.Message{{Text: "안전운전 부탁드립니다"}},
			},
			banner:  recommend.ExactBanner,
			message: "안전운전 부탁드립니다",
		},
		{
			name: "fallback",
			result: recommend.Result{
				Outcome:  selector.FallbackMatch,
				Messages: []recommend.Message{{Text: "늘 감사합니다"}},
			},
			banner:  recommend.FallbackBanner,
			message: "추천 메시지 1",
		},
		{
			name:   "no match",
			result: recommend.Result{Outcome: selector.NoMatch},
			banner: recommend.NoMatchBanner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := NewSession()
			session.Width = 120
			session.Result = tt.result

			phase := NewResultsPhase(session)
			phase.Init()
			view := phase.View()

			assert.Contains(t, view, tt.banner)
			if tt.message != "" {
				assert.Contains(t, view, tt.message)
			}
		})
	}
}

func TestResultsPhase_Keys(t *testing.T) {
	session := NewSession()
	session.Result = recommend.Result{Outcome: selector.NoMatch}
	phase := NewResultsPhase(session)
	phase.Init()

	_, cmd := phase.Update(keyRunes("r"))
	require.NotNil(t, cmd)
	assert.Equal(t, phases.PrevPhaseMsg{}, cmd())

	_, cmd = phase.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, phases.GotoPhaseMsg{Name: PhaseFilters}, cmd())

	_, cmd = phase.Update(keyRunes("b"))
	require.NotNil(t, cmd)
	assert.Equal(t, phases.GotoPhaseMsg{Name: PhaseFilters}, cmd())
}

func TestResultsPhase_Error(t *testing.T) {
	session := NewSession()
	session.Err = errors.New("generation backend down")
	phase := NewResultsPhase(session)

	tm := teatest.NewTestModel(t, phase, teatest.WithInitialTermSize(80, 24))
	checker := defaultChecker()
	checker.checkString(t, tm, "generation backend down")

	require.NoError(t, tm.Quit())
	tm.WaitFinished(t, teatest.WithFinalTimeout(checker.timeout))
}
