// Package recommend answers a filter selection with rendered notice messages.
package recommend

import (
	"context"
	"log/slog"

	"github.com/alkime/notices/internal/catalog"
	"github.com/alkime/notices/internal/composer"
	"github.com/alkime/notices/internal/notice"
	"github.com/alkime/notices/internal/selector"
)

// Banners shown above the messages for each outcome.
const (
	ExactBanner    = "✨ 조건에 맞는 메시지를 최대 5개 추천드립니다:"
	FallbackBanner = "📌 조건과 정확히 일치하지는 않지만, 유사한 메시지를 최대 5개 추천드립니다:"
	NoMatchBanner  = "조건에 맞는 메시지가 없습니다. 태그와 유형을 다시 선택해주세요."
)

// Message is one rendered recommendation.
type Message struct {
	// RecordID is the catalog record the message was built from.
	RecordID int    `json:"record_id"`
	Base     string `json:"base"`
	Text     string `json:"text"`
}

// Result is the answer to one request.
type Result struct {
	Outcome  selector.Outcome
	Messages []Message
}

// Banner returns the user-facing notice for the result's outcome.
func (r Result) Banner() string {
	switch r.Outcome {
	case selector.ExactMatch:
		return ExactBanner
	case selector.FallbackMatch:
		return FallbackBanner
	default:
		return NoMatchBanner
	}
}

// Recommender selects matching records and composes a message for each.
type Recommender struct {
	catalog  *catalog.Catalog
	selector *selector.Selector
	composer composer.Composer
}

// New creates a recommender over cat.
func New(cat *catalog.Catalog, sel *selector.Selector, comp composer.Composer) *Recommender {
	return &Recommender{
		catalog:  cat,
		selector: sel,
		composer: comp,
	}
}

// Recommend answers c. It runs synchronously; with a generative composer it
// blocks on one model call per selected record.
func (r *Recommender) Recommend(ctx context.Context, c notice.Criteria) Result {
	c = c.Normalize()

	sel := r.selector.Select(r.catalog, c)
	slog.Debug("Selection complete",
		"outcome", sel.Outcome.String(),
		"count", len(sel.Records),
		"tags", c.Tags,
		"category", c.Category,
	)

	res := Result{Outcome: sel.Outcome}
	for _, rec := range sel.Records {
		res.Messages = append(res.Messages, Message{
			RecordID: rec.ID,
			Base:     rec.Text,
			Text:     r.composer.Compose(ctx, rec.Text, c),
		})
	}

	return res
}
