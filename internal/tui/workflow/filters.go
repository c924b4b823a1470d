package workflow

import (
	"strings"

	"github.com/alkime/notices/internal/notice"
	"github.com/alkime/notices/internal/options"
	"github.com/alkime/notices/internal/tui/components/phases"
	"github.com/alkime/notices/internal/tui/style"
	"github.com/alkime/notices/pkg/collections"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// NoTagsWarning is shown when the form is submitted without a tag.
const NoTagsWarning = "강조할 태그를 하나 이상 선택해주세요."

type filterField int

const (
	fieldTags filterField = iota
	fieldTone
	fieldCategory
	fieldWeather
	fieldCalendar
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldTags:     "태그",
	fieldTone:     "톤",
	fieldCategory: "유형",
	fieldWeather:  "날씨",
	fieldCalendar: "날짜",
}

type filtersKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Submit key.Binding
}

func defaultFiltersKeyMap() filtersKeyMap {
	return filtersKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev field"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↓/j", "next field"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev value"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next value"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle tag"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "recommend"),
		),
	}
}

type filtersPhase struct {
	session *Session
	keys    filtersKeyMap

	tags       []string
	tones      []string
	categories []string
	weathers   []string
	calendars  []string

	field     filterField
	tagCursor int
	selected  map[string]bool
	// index of the chosen value for each single-select field
	choice  [fieldCount]int
	warning string
}

// NewFiltersPhase creates the form where the user picks tags, tone,
// category, weather and calendar type.
func NewFiltersPhase(session *Session, opts options.Options) tea.Model {
	categories := opts.Categories
	if len(categories) == 0 {
		categories = []string{""}
	}

	return &filtersPhase{
		session:    session,
		keys:       defaultFiltersKeyMap(),
		tags:       opts.Tags,
		tones:      collections.Apply(opts.Tones, func(t notice.Tone) string { return string(t) }),
		categories: categories,
		weathers:   collections.Apply(opts.Weathers, func(w notice.Weather) string { return string(w) }),
		calendars:  collections.Apply(opts.Calendars, func(c notice.Calendar) string { return string(c) }),
		selected:   make(map[string]bool),
	}
}

func (fp *filtersPhase) Init() tea.Cmd {
	return nil
}

func (fp *filtersPhase) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := teaMsg.(tea.KeyMsg)
	if !ok {
		return fp, nil
	}

	switch {
	case key.Matches(keyMsg, fp.keys.Up):
		fp.field = (fp.field + fieldCount - 1) % fieldCount

	case key.Matches(keyMsg, fp.keys.Down):
		fp.field = (fp.field + 1) % fieldCount

	case key.Matches(keyMsg, fp.keys.Left):
		fp.step(-1)

	case key.Matches(keyMsg, fp.keys.Right):
		fp.step(1)

	case key.Matches(keyMsg, fp.keys.Toggle):
		if fp.field == fieldTags && len(fp.tags) > 0 {
			tag := fp.tags[fp.tagCursor]
			fp.selected[tag] = !fp.selected[tag]
			fp.warning = ""
		}

	case key.Matches(keyMsg, fp.keys.Submit):
		c := fp.criteria()
		if len(c.Tags) == 0 {
			fp.warning = NoTagsWarning
			return fp, nil
		}

		fp.warning = ""
		fp.session.Criteria = c

		return fp, phases.NextPhaseCmd
	}

	return fp, nil
}

// step moves the tag cursor or cycles the focused field's value.
func (fp *filtersPhase) step(delta int) {
	if fp.field == fieldTags {
		if len(fp.tags) > 0 {
			fp.tagCursor = wrapIndex(fp.tagCursor+delta, len(fp.tags))
		}
		return
	}

	n := len(fp.values(fp.field))
	fp.choice[fp.field] = wrapIndex(fp.choice[fp.field]+delta, n)
}

func (fp *filtersPhase) values(f filterField) []string {
	switch f {
	case fieldTone:
		return fp.tones
	case fieldCategory:
		return fp.categories
	case fieldWeather:
		return fp.weathers
	case fieldCalendar:
		return fp.calendars
	default:
		return fp.tags
	}
}

func (fp *filtersPhase) value(f filterField) string {
	vals := fp.values(f)
	if len(vals) == 0 {
		return ""
	}
	return vals[fp.choice[f]]
}

func (fp *filtersPhase) criteria() notice.Criteria {
	return notice.Criteria{
		Tags:     collections.Filter(fp.tags, func(t string) bool { return fp.selected[t] }),
		Tone:     notice.Tone(fp.value(fieldTone)),
		Category: fp.value(fieldCategory),
		Weather:  notice.Weather(fp.value(fieldWeather)),
		Calendar: notice.Calendar(fp.value(fieldCalendar)),
	}
}

func (fp *filtersPhase) View() string {
	var sb strings.Builder

	for f := fieldTags; f < fieldCount; f++ {
		marker := "  "
		if f == fp.field {
			marker = style.Cursor.Render("▸ ")
		}
		sb.WriteString(marker)
		sb.WriteString(style.Label.Render(fieldLabels[f] + ": "))

		if f == fieldTags {
			sb.WriteString(fp.renderTags())
		} else {
			sb.WriteString(fp.renderChoice(f))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if fp.warning != "" {
		sb.WriteString(style.Warning.Render(fp.warning))
		sb.WriteString("\n\n")
	}

	sb.WriteString(renderKeyHelp(fp.keys.Toggle, " "))
	sb.WriteString(renderKeyHelp(fp.keys.Right, " "))
	sb.WriteString(renderKeyHelp(fp.keys.Down, "\n"))
	sb.WriteString(renderKeyHelp(fp.keys.Submit, " "))
	sb.WriteString(renderGlobalKeyHelp())

	return sb.String()
}

func (fp *filtersPhase) renderTags() string {
	if len(fp.tags) == 0 {
		return style.Muted.Render("(태그 없음)")
	}

	items := make([]string, len(fp.tags))
	for i, tag := range fp.tags {
		box := "[ ] "
		if fp.selected[tag] {
			box = style.Selected.Render("[x] ")
		}

		label := tag
		if fp.field == fieldTags && i == fp.tagCursor {
			label = style.Cursor.Render(tag)
		}
		items[i] = box + label
	}

	// leave room for the marker and label
	return wrapText(strings.Join(items, "  "), fp.session.Width-10)
}

func (fp *filtersPhase) renderChoice(f filterField) string {
	v := fp.value(f)
	if v == "" {
		v = "(없음)"
	}

	if f == fp.field {
		return style.Cursor.Render("◀ " + v + " ▶")
	}
	return v
}

func wrapIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}
