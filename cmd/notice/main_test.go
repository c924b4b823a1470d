package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alkime/notices/internal/notice"
	"github.com/alkime/notices/internal/options"
	"github.com/alkime/notices/internal/recommend"
	"github.com/alkime/notices/internal/selector"
	"github.com/alkime/notices/internal/workdir"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:gochecknoinits // plain output for assertions
func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, recommend.Result{
		Outcome: selector.FallbackMatch,
		Messages: []recommend.Message{
			{Text: "안전운전 부탁드립니다"},
			{Text: "늘 감사합니다"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, recommend.FallbackBanner)
	assert.Contains(t, out, "추천 메시지 1\n안전운전 부탁드립니다")
	assert.Contains(t, out, "추천 메시지 2\n늘 감사합니다")
}

func TestPrintResult_NoMatch(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, recommend.Result{Outcome: selector.NoMatch})

	assert.Equal(t, recommend.NoMatchBanner+"\n", buf.String())
}

func TestPrintOptions(t *testing.T) {
	var buf bytes.Buffer
	printOptions(&buf, options.Options{
		Tags:       []string{"감사", "안전"},
		Categories: []string{"공지"},
		Tones:      notice.Tones(),
		Weathers:   notice.Weathers(),
		Calendars:  notice.Calendars(),
	})

	out := buf.String()
	assert.Contains(t, out, "태그: 감사, 안전\n")
	assert.Contains(t, out, "유형: 공지\n")
	assert.Contains(t, out, "톤: 응원, 공지, 피드백\n")
	assert.Contains(t, out, "날씨: 맑음, 비, 눈, 폭우, 폭설, 폭염\n")
	assert.Contains(t, out, "날짜: 평일, 주말, 공휴일, 설날, 추석\n")
}

func TestRecommendCmd_Criteria(t *testing.T) {
	cmd := RecommendCmd{
		Tags:     []string{"안전"},
		Tone:     "공지",
		Category: "공지",
		Weather:  "눈",
		Calendar: "설날",
	}

	assert.Equal(t, notice.Criteria{
		Tags:     []string{"안전"},
		Tone:     notice.ToneAnnouncement,
		Category: "공지",
		Weather:  notice.WeatherSnow,
		Calendar: notice.CalendarSeollal,
	}, cmd.criteria())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, recommendation{
		Outcome:  selector.ExactMatch.String(),
		Notice:   recommend.ExactBanner,
		Messages: []recommend.Message{{RecordID: 3, Base: "b", Text: "t"}},
	}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "exact", got["outcome"])
	assert.Len(t, got["messages"], 1)
}

func TestGlobals_Config(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NOTICE_COMPOSER", "template")
	t.Setenv("NOTICE_TEMPERATURE", "0.7")
	t.Setenv("NOTICE_MAX_TOKENS", "500")

	g := Globals{Catalog: "/data/messages.csv", Sheet: "2월", Debug: true}
	cfg, err := g.config()
	require.NoError(t, err)

	assert.Equal(t, "/data/messages.csv", cfg.CatalogPath)
	assert.Equal(t, "2월", cfg.CatalogSheet)
	assert.Equal(t, "debug", cfg.LogLevel)

	g = Globals{Composer: "llama"}
	_, err = g.config()
	assert.ErrorContains(t, err, "invalid composer")
}

func TestInitWorkdir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var buf bytes.Buffer
	require.NoError(t, initWorkdir(&buf))

	root := filepath.Join(home, "Documents", "Alkime", "Notices")
	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Contains(t, buf.String(), filepath.Join(root, workdir.CatalogFile))

	// running again on an existing directory is fine
	require.NoError(t, initWorkdir(&buf))
}
