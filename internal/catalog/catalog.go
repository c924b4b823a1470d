// Package catalog holds the read-only table of pre-written notice messages.
package catalog

import (
	"github.com/alkime/notices/internal/notice"
)

// Record is one pre-written message. Records are immutable once built.
type Record struct {
	// ID is the record's data-row ordinal in the source (0-based, header
	// excluded).
	ID       int
	Text     string
	Category string

	tags   []string
	tagSet map[string]struct{}
}

// NewRecord builds a record, normalizing its strings and de-duplicating tags.
func NewRecord(id int, text string, tags []string, category string) Record {
	r := Record{
		ID:       id,
		Text:     notice.Clean(text),
		Category: notice.Clean(category),
		tagSet:   make(map[string]struct{}, len(tags)),
	}

	for _, tag := range tags {
		tag = notice.Clean(tag)
		if tag == "" {
			continue
		}
		if _, ok := r.tagSet[tag]; ok {
			continue
		}
		r.tagSet[tag] = struct{}{}
		r.tags = append(r.tags, tag)
	}

	return r
}

// Tags returns a copy of the record's tags in source order.
func (r Record) Tags() []string {
	out := make([]string, len(r.tags))
	copy(out, r.tags)
	return out
}

// HasTag reports whether the record carries tag.
func (r Record) HasTag(tag string) bool {
	_, ok := r.tagSet[tag]
	return ok
}

// HasAnyTag reports whether the record's tag set intersects tags. An empty
// tags argument never matches.
func (r Record) HasAnyTag(tags []string) bool {
	for _, tag := range tags {
		if r.HasTag(tag) {
			return true
		}
	}
	return false
}

// Catalog is the in-memory message table. It is built once at startup and
// shared read-only by the option extractor, selector and recommender.
type Catalog struct {
	records []Record
}

// New creates a catalog from already-built records.
func New(records []Record) *Catalog {
	out := make([]Record, len(records))
	copy(out, records)
	return &Catalog{records: out}
}

// Records returns the records in source order. The returned slice is a copy.
func (c *Catalog) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}
