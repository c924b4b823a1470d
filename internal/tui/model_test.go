package tui

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alkime/notices/internal/notice"
	"github.com/alkime/notices/internal/options"
	"github.com/alkime/notices/internal/recommend"
	"github.com/alkime/notices/internal/selector"
	"github.com/alkime/notices/internal/tui/workflow"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

//nolint:gochecknoinits // recommend for CI by bubbletea folks
func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

type stubRecommender struct {
	mu    sync.Mutex
	calls int
}

func (s *stubRecommender) Recommend(_ context.Context, c notice.Criteria) (recommend.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	return recommend.Result{
		Outcome: selector.ExactMatch,
		Messages: []recommend.Message{
			{RecordID: 0, Base: "안전운전", Text: fmt.Sprintf("[%s] 안전운전 부탁드립니다 #%d", c.Category, s.calls)},
		},
	}, nil
}

func (s *stubRecommender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// waitFor waits until every substr has been written. Each call consumes the
// output it reads, so strings from one frame belong in a single call.
func waitFor(t *testing.T, tm *teatest.TestModel, substrs ...string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), func(buf []byte) bool {
		for _, s := range substrs {
			if !bytes.Contains(buf, []byte(s)) {
				return false
			}
		}
		return true
	}, teatest.WithCheckInterval(50*time.Millisecond), teatest.WithDuration(3*time.Second))
}

func TestModel_Workflow(t *testing.T) {
	rec := &stubRecommender{}
	cancelled := false

	m := New(context.Background(), Config{
		Cancel: func() { cancelled = true },
		Options: options.Options{
			Tags:       []string{"안전"},
			Categories: []string{"공지"},
			Tones:      notice.Tones(),
			Weathers:   notice.Weathers(),
			Calendars:  notice.Calendars(),
		},
		Recommender: rec,
	})

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 30))

	waitFor(t, tm, Title, workflow.PhaseFilters)

	// pick the only tag and ask for messages
	tm.Send(tea.KeyMsg{Type: tea.KeySpace})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	waitFor(t, tm, recommend.ExactBanner, "[공지] 안전운전 부탁드립니다 #1")

	// re-roll runs the recommender again
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	waitFor(t, tm, "안전운전 부탁드립니다 #2")

	// back to the form
	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	waitFor(t, tm, "[x] 안전")

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	assert.True(t, cancelled, "quit should cancel the context")
	assert.Equal(t, 2, rec.count())
}

func TestModel_ForceQuit(t *testing.T) {
	m := New(context.Background(), Config{
		Options:     options.Options{Tones: notice.Tones()},
		Recommender: &stubRecommender{},
	})

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))
	waitFor(t, tm, Title)

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
}
