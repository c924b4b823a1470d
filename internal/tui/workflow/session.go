package workflow

import (
	"github.com/alkime/notices/internal/notice"
	"github.com/alkime/notices/internal/recommend"
)

// Phase names, in workflow order.
const (
	PhaseFilters      = "Filters"
	PhaseRecommending = "Recommending"
	PhaseResults      = "Results"
)

// Session is the state shared by the workflow phases. The filters phase
// writes Criteria, the recommending phase writes Result and Err, and the
// results phase reads them.
type Session struct {
	Criteria notice.Criteria
	Result   recommend.Result
	Err      error

	// Last known terminal size.
	Width  int
	Height int
}

// NewSession returns a session sized for a default 80x24 terminal.
func NewSession() *Session {
	return &Session{
		Width:  80,
		Height: 24,
	}
}
