package composer

import (
	"fmt"

	"github.com/alkime/notices/internal/notice"
)

// RewritePrompt builds the instruction sent to the language model to rewrite
// baseText for the given context.
func RewritePrompt(baseText string, c notice.Criteria) string {
	return fmt.Sprintf(`당신은 버스 운수종사자에게 전달할 안내 메시지를 다듬는 작성자입니다.
아래 조건을 참고하여 기존 메시지를 운수종사자에게 보내는 정중한 존댓말 메시지로 다시 작성해주세요.

- 메시지 유형: %s
- 메시지 톤: %s
- 강조 태그: %s
- 날씨: %s (%s)
- 날짜 정보: %s (%s)

기존 메시지: %s

작성 규칙:
- 선택한 톤이 분명하게 느껴지도록 작성해주세요.
- 강조 태그의 내용이 자연스럽게 드러나도록 해주세요.
- 날씨와 날짜 정보에 맞는 당부가 있다면 한 문장으로 덧붙여주세요.
- 2~3문장 이내로 작성하고, 완성된 메시지만 출력해주세요.`,
		c.Category,
		c.Tone,
		joinTags(c.Tags),
		c.Weather, notice.WeatherPhrase(c.Weather),
		c.Calendar, notice.CalendarPhrase(c.Calendar),
		baseText,
	)
}
