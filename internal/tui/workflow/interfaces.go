package workflow

import (
	"context"

	"github.com/alkime/notices/internal/notice"
	"github.com/alkime/notices/internal/recommend"
)

// Recommender answers a filter selection. *app.App satisfies it.
type Recommender interface {
	Recommend(ctx context.Context, c notice.Criteria) (recommend.Result, error)
}
