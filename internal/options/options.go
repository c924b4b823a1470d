// Package options derives the selectable filter values from a catalog.
package options

import (
	"fmt"
	"slices"

	"github.com/alkime/notices/internal/catalog"
	"github.com/alkime/notices/internal/notice"
	"github.com/alkime/notices/pkg/collections"
)

// Options are the values a user may pick from when asking for a
// recommendation. Tags holds every distinct catalog tag, sorted; Categories
// holds every distinct non-empty category in first-seen order.
type Options struct {
	Tags       []string          `json:"tags"`
	Categories []string          `json:"categories"`
	Tones      []notice.Tone     `json:"tones"`
	Weathers   []notice.Weather  `json:"weathers"`
	Calendars  []notice.Calendar `json:"calendars"`
}

// Extract derives the options from cat. Records whose tags failed to parse
// simply contribute no tags.
func Extract(cat *catalog.Catalog) Options {
	var (
		tags       []string
		categories []string
	)

	for _, r := range cat.Records() {
		tags = append(tags, r.Tags()...)
		if r.Category != "" {
			categories = append(categories, r.Category)
		}
	}

	return Options{
		Tags:       collections.SortedSet(tags),
		Categories: collections.Distinct(categories),
		Tones:      notice.Tones(),
		Weathers:   notice.Weathers(),
		Calendars:  notice.Calendars(),
	}
}

// Validate reports whether c only uses selectable values. Tags are not
// checked: a tag nobody uses is a normal no-match, not a bad request. c is
// expected to be normalized already.
func (o Options) Validate(c notice.Criteria) error {
	if !slices.Contains(o.Tones, c.Tone) {
		return fmt.Errorf("%w: unknown tone %q", notice.ErrInvalidCriteria, c.Tone)
	}
	if !slices.Contains(o.Weathers, c.Weather) {
		return fmt.Errorf("%w: unknown weather %q", notice.ErrInvalidCriteria, c.Weather)
	}
	if !slices.Contains(o.Calendars, c.Calendar) {
		return fmt.Errorf("%w: unknown calendar type %q", notice.ErrInvalidCriteria, c.Calendar)
	}
	if c.Category != "" && !slices.Contains(o.Categories, c.Category) {
		return fmt.Errorf("%w: unknown category %q", notice.ErrInvalidCriteria, c.Category)
	}
	return nil
}
