// Package notice defines the fixed vocabularies and the filter criteria used
// to recommend driver-facing notice messages.
package notice

import (
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrInvalidCriteria is returned when a filter selection uses values outside
// the selectable options.
var ErrInvalidCriteria = errors.New("invalid criteria")

// Tone is the register a recommended message should carry.
type Tone string

const (
	// ToneCheer is an encouraging message.
	ToneCheer Tone = "응원"
	// ToneAnnouncement is an informational notice.
	ToneAnnouncement Tone = "공지"
	// ToneFeedback is corrective feedback.
	ToneFeedback Tone = "피드백"
)

// Weather is the weather condition the message is sent under.
type Weather string

const (
	WeatherClear     Weather = "맑음"
	WeatherRain      Weather = "비"
	WeatherSnow      Weather = "눈"
	WeatherHeavyRain Weather = "폭우"
	WeatherHeavySnow Weather = "폭설"
	WeatherHeatWave  Weather = "폭염"
)

// Calendar is the kind of day the message is sent on.
type Calendar string

const (
	CalendarWeekday Calendar = "평일"
	CalendarWeekend Calendar = "주말"
	CalendarHoliday Calendar = "공휴일"
	CalendarSeollal Calendar = "설날"
	CalendarChuseok Calendar = "추석"
)

// Tones returns the selectable tones in display order.
func Tones() []Tone {
	return []Tone{ToneCheer, ToneAnnouncement, ToneFeedback}
}

// Weathers returns the selectable weather conditions in display order.
func Weathers() []Weather {
	return []Weather{
		WeatherClear,
		WeatherRain,
		WeatherSnow,
		WeatherHeavyRain,
		WeatherHeavySnow,
		WeatherHeatWave,
	}
}

// Calendars returns the selectable day types in display order.
func Calendars() []Calendar {
	return []Calendar{
		CalendarWeekday,
		CalendarWeekend,
		CalendarHoliday,
		CalendarSeollal,
		CalendarChuseok,
	}
}

// Criteria is a single recommendation request. It is built fresh for every
// request and never stored.
type Criteria struct {
	// Tags are matched any-of against a record's tag set. Order is the
	// user's selection order and is kept for rendering.
	Tags     []string
	Tone     Tone
	Category string
	Weather  Weather
	Calendar Calendar
}

// Normalize returns a copy of c with every string trimmed and NFC-normalized
// and duplicate or blank tags removed.
func (c Criteria) Normalize() Criteria {
	out := Criteria{
		Tone:     Tone(Clean(string(c.Tone))),
		Category: Clean(c.Category),
		Weather:  Weather(Clean(string(c.Weather))),
		Calendar: Calendar(Clean(string(c.Calendar))),
	}

	seen := make(map[string]struct{}, len(c.Tags))
	for _, tag := range c.Tags {
		tag = Clean(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out.Tags = append(out.Tags, tag)
	}

	return out
}

// Clean trims surrounding whitespace and converts s to Unicode NFC so that
// Hangul stored in decomposed form compares equal to its composed form.
func Clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
