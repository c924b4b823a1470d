package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/alkime/notices/internal/notice"
	"github.com/alkime/notices/internal/recommend"
	"github.com/alkime/notices/internal/selector"
	"github.com/alkime/notices/internal/tui/components/phases"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendingPhase_HappyPath(t *testing.T) {
	session := NewSession()
	session.Criteria = notice.Criteria{
		Tags:     []string{"안전"},
		Tone:     notice.ToneCheer,
		Category: "공지",
		Weather:  notice.WeatherRain,
		Calendar: notice.CalendarWeekday,
	}

	rec := &mockRecommender{result: recommend.Result{
		Outcome:  selector.ExactMatch,
		Messages: []recommend.Message{{RecordID: 1, Base: "안전운전", Text: "오늘도 안전운전 부탁드립니다"}},
	}}
	phase := NewRecommendingPhase(context.Background(), session, rec)

	tm := teatest.NewTestModel(t, phase, teatest.WithInitialTermSize(80, 24))
	checker := defaultChecker()

	// Should show the spinner with the active filters
	checker.checkStrings(t, tm, "메시지를 만드는 중", "태그: 안전")

	require.Eventually(t, func() bool {
		return rec.callCount() == 1
	}, checker.timeout, checker.intervl, "Recommender should be called")

	require.NoError(t, tm.Quit())
	tm.WaitFinished(t, teatest.WithFinalTimeout(checker.timeout))

	assert.Equal(t, session.Criteria, rec.calls[0])
}

func TestRecommendingPhase_StoresResult(t *testing.T) {
	session := NewSession()
	want := recommend.Result{Outcome: selector.FallbackMatch}
	phase := NewRecommendingPhase(context.Background(), session, &mockRecommender{})

	_, cmd := phase.Update(recommendDoneMsg{result: want})
	require.NotNil(t, cmd)
	assert.Equal(t, phases.NextPhaseMsg{}, cmd())
	assert.Equal(t, want, session.Result)
	assert.NoError(t, session.Err)
}

func TestRecommendingPhase_Error(t *testing.T) {
	session := NewSession()
	rec := &mockRecommender{err: errors.New("catalog unavailable")}
	phase := NewRecommendingPhase(context.Background(), session, rec).(*recommendingPhase)

	msg := phase.recommendCmd(session.Criteria)()
	_, cmd := phase.Update(msg)

	require.NotNil(t, cmd)
	assert.EqualError(t, session.Err, "catalog unavailable")
}

func TestDescribe(t *testing.T) {
	got := describe(notice.Criteria{
		Tags:     []string{"안전", "감사"},
		Tone:     notice.ToneFeedback,
		Weather:  notice.WeatherHeatWave,
		Calendar: notice.CalendarHoliday,
	})
	assert.Equal(t, "태그: 안전, 감사 · 톤: 피드백 · 날씨: 폭염 · 날짜: 공휴일", got)
}
