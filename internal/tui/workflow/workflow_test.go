package workflow

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alkime/notices/internal/notice"
	"github.com/alkime/notices/internal/options"
	"github.com/alkime/notices/internal/recommend"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"
)

//nolint:gochecknoinits // recommend for CI by bubbletea folks
func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// outputChecker provides helpers for testing teatest output.
type outputChecker struct {
	intervl, timeout time.Duration
}

func defaultChecker() outputChecker {
	return outputChecker{
		intervl: 100 * time.Millisecond,
		timeout: 3 * time.Second,
	}
}

func (o outputChecker) check(t *testing.T, tm *teatest.TestModel, checkFunc func(buf []byte) bool) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), checkFunc,
		teatest.WithCheckInterval(o.intervl),
		teatest.WithDuration(o.timeout))
}

func (o outputChecker) checkString(t *testing.T, tm *teatest.TestModel, substr string) {
	t.Helper()
	o.checkStrings(t, tm, substr)
}

// checkStrings waits until every substr has been written. Output read by a
// check is consumed, so text from the same frame must be matched together.
func (o outputChecker) checkStrings(t *testing.T, tm *teatest.TestModel, substrs ...string) {
	t.Helper()
	o.check(t, tm, func(buf []byte) bool {
		for _, s := range substrs {
			if !bytes.Contains(buf, []byte(s)) {
				return false
			}
		}
		return true
	})
}

// mockRecommender implements Recommender for testing.
type mockRecommender struct {
	mu     sync.Mutex
	result recommend.Result
	err    error
	calls  []notice.Criteria
}

func (m *mockRecommender) Recommend(_ context.Context, c notice.Criteria) (recommend.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, c)
	return m.result, m.err
}

func (m *mockRecommender) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func testOptions() options.Options {
	return options.Options{
		Tags:       []string{"감사", "안전", "친절"},
		Categories: []string{"공지", "응원"},
		Tones:      notice.Tones(),
		Weathers:   notice.Weathers(),
		Calendars:  notice.Calendars(),
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
