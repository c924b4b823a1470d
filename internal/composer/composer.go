// Package composer turns a selected catalog message plus the request context
// into the text shown to the operator.
package composer

import (
	"context"
	"strings"

	"github.com/alkime/notices/internal/ai"
	"github.com/alkime/notices/internal/notice"
)

// Composer renders one output message. Implementations never fail: problems
// are reported inside the returned text.
type Composer interface {
	Compose(ctx context.Context, baseText string, c notice.Criteria) string
}

// Generator produces text from a prompt.
type Generator interface {
	Generate(ctx context.Context, req ai.Request) (string, error)
}

func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
