package composer

import (
	"context"
	"strings"

	"github.com/alkime/notices/internal/notice"
)

// Template is the deterministic composer. It returns the base message
// verbatim inside a fixed frame listing the request context.
type Template struct{}

// NewTemplate creates a deterministic composer.
func NewTemplate() Template {
	return Template{}
}

// Compose implements Composer.
func (Template) Compose(_ context.Context, baseText string, c notice.Criteria) string {
	var sb strings.Builder

	sb.WriteString("[" + c.Category + "] " + string(c.Tone) + " 메시지\n")
	sb.WriteString("강조 태그: " + joinTags(c.Tags) + "\n")
	sb.WriteString("날씨: " + string(c.Weather) + " - " + notice.WeatherPhrase(c.Weather) + "\n")
	sb.WriteString("날짜: " + string(c.Calendar) + " - " + notice.CalendarPhrase(c.Calendar) + "\n")
	sb.WriteString("\n기존 메시지: " + baseText + "\n")
	sb.WriteString("\n✏️ 위 내용을 참고하여 메시지를 응용해주세요.")

	return sb.String()
}
