package workflow

import (
	"testing"

	"github.com/alkime/notices/internal/notice"
	"github.com/alkime/notices/internal/options"
	"github.com/alkime/notices/internal/tui/components/phases"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiltersPhase_View(t *testing.T) {
	session := NewSession()
	phase := NewFiltersPhase(session, testOptions())

	tm := teatest.NewTestModel(t, phase, teatest.WithInitialTermSize(80, 24))
	checker := defaultChecker()

	checker.checkString(t, tm, "[ ] 감사")

	tm.Send(tea.KeyMsg{Type: tea.KeySpace})
	checker.checkString(t, tm, "[x] 감사")

	require.NoError(t, tm.Quit())
	tm.WaitFinished(t, teatest.WithFinalTimeout(checker.timeout))
}

func TestFiltersPhase_NoTagsWarning(t *testing.T) {
	session := NewSession()
	phase := NewFiltersPhase(session, testOptions())

	tm := teatest.NewTestModel(t, phase, teatest.WithInitialTermSize(80, 24))
	checker := defaultChecker()

	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	checker.checkString(t, tm, NoTagsWarning)

	require.NoError(t, tm.Quit())
	tm.WaitFinished(t, teatest.WithFinalTimeout(checker.timeout))
	assert.Empty(t, session.Criteria.Tags, "criteria should not be written without tags")
}

func TestFiltersPhase_Submit(t *testing.T) {
	session := NewSession()
	phase := NewFiltersPhase(session, testOptions())

	send := func(msg tea.Msg) tea.Cmd {
		var cmd tea.Cmd
		phase, cmd = phase.Update(msg)
		return cmd
	}

	// tags: select 안전 and 친절
	send(tea.KeyMsg{Type: tea.KeyRight})
	send(tea.KeyMsg{Type: tea.KeySpace})
	send(tea.KeyMsg{Type: tea.KeyRight})
	send(keyRunes("x"))
	// tone: 응원 -> 공지
	send(tea.KeyMsg{Type: tea.KeyDown})
	send(tea.KeyMsg{Type: tea.KeyRight})
	// category: 공지 -> 응원 (wraps backwards)
	send(tea.KeyMsg{Type: tea.KeyDown})
	send(tea.KeyMsg{Type: tea.KeyLeft})
	// weather: 맑음 -> 눈
	send(tea.KeyMsg{Type: tea.KeyDown})
	send(tea.KeyMsg{Type: tea.KeyRight})
	send(tea.KeyMsg{Type: tea.KeyRight})
	// calendar: 평일 -> 추석 (wraps backwards)
	send(tea.KeyMsg{Type: tea.KeyDown})
	send(tea.KeyMsg{Type: tea.KeyLeft})

	cmd := send(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, phases.NextPhaseMsg{}, cmd())

	assert.Equal(t, notice.Criteria{
		Tags:     []string{"안전", "친절"},
		Tone:     notice.ToneAnnouncement,
		Category: "응원",
		Weather:  notice.WeatherSnow,
		Calendar: notice.CalendarChuseok,
	}, session.Criteria)
}

func TestFiltersPhase_ToggleOff(t *testing.T) {
	session := NewSession()
	phase := NewFiltersPhase(session, testOptions())

	phase, _ = phase.Update(tea.KeyMsg{Type: tea.KeySpace})
	phase, _ = phase.Update(tea.KeyMsg{Type: tea.KeySpace})
	_, cmd := phase.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd, "deselected tag should block submission")
}

func TestFiltersPhase_NoCategories(t *testing.T) {
	session := NewSession()
	opts := testOptions()
	opts.Categories = nil
	phase := NewFiltersPhase(session, opts)

	assert.Contains(t, phase.View(), "(없음)")

	phase, _ = phase.Update(tea.KeyMsg{Type: tea.KeySpace})
	_, cmd := phase.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Empty(t, session.Criteria.Category)
}

func TestFiltersPhase_EmptyCatalog(t *testing.T) {
	phase := NewFiltersPhase(NewSession(), options.Options{
		Tones:     notice.Tones(),
		Weathers:  notice.Weathers(),
		Calendars: notice.Calendars(),
	})

	// moving and toggling over an empty tag list must not panic
	phase, _ = phase.Update(tea.KeyMsg{Type: tea.KeyRight})
	phase, _ = phase.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.Contains(t, phase.View(), "(태그 없음)")
}

func TestWrapIndex(t *testing.T) {
	assert.Equal(t, 0, wrapIndex(3, 3))
	assert.Equal(t, 2, wrapIndex(-1, 3))
	assert.Equal(t, 0, wrapIndex(5, 0))
}
