package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alkime/notices/internal/notice"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// DefaultSheet is the worksheet holding the full message table.
const DefaultSheet = "전체"

var (
	// ErrUnsupportedFormat is returned for catalog files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	// ErrNoTextColumn is returned when the header row has no message column.
	ErrNoTextColumn = errors.New("catalog has no message text column")
)

// Column header aliases. The Korean names are the ones used by the
// operations team's spreadsheet.
var (
	textHeaders     = []string{"text", "메시지"}
	tagsHeaders     = []string{"tags", "태그"}
	categoryHeaders = []string{"category", "유형"}
)

// LoadOptions controls how a catalog file is read.
type LoadOptions struct {
	// Sheet is the worksheet to read from .xlsx files. Defaults to
	// DefaultSheet; the first sheet is used when the named one is missing.
	Sheet string
}

// Load reads a catalog from path. The format is chosen by file extension:
// .xlsx, .csv, .yaml or .yml.
func Load(path string, opts LoadOptions) (*Catalog, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err := readWorkbook(path, opts.Sheet)
		if err != nil {
			return nil, err
		}
		return fromRows(rows)

	case ".csv":
		rows, err := readCSV(path)
		if err != nil {
			return nil, err
		}
		return fromRows(rows)

	case ".yaml", ".yml":
		return readYAML(path)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func readWorkbook(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("Failed to close workbook", "path", path, "error", err)
		}
	}()

	if sheet == "" {
		sheet = DefaultSheet
	}

	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		slog.Warn("Sheet not found, using first sheet",
			"path", path,
			"sheet", sheet,
			"using", sheets[0],
		)
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path) //nolint:gosec // Catalog path is operator supplied
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// fromRows builds a catalog from a header row followed by data rows.
func fromRows(rows [][]string) (*Catalog, error) {
	if len(rows) == 0 {
		return nil, ErrNoTextColumn
	}

	header := rows[0]
	textCol := findColumn(header, textHeaders)
	if textCol < 0 {
		return nil, ErrNoTextColumn
	}
	tagsCol := findColumn(header, tagsHeaders)
	categoryCol := findColumn(header, categoryHeaders)

	if tagsCol < 0 {
		slog.Warn("Catalog has no tags column, no record will match a tag filter")
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		text := cell(row, textCol)
		if strings.TrimSpace(text) == "" {
			continue
		}

		tags, err := ParseTags(cell(row, tagsCol))
		if err != nil {
			slog.Debug("Ignoring malformed tag cell", "row", i, "error", err)
			tags = nil
		}

		records = append(records, NewRecord(i, text, tags, cell(row, categoryCol)))
	}

	return New(records), nil
}

func findColumn(header []string, names []string) int {
	for i, h := range header {
		h = strings.ToLower(notice.Clean(h))
		for _, name := range names {
			if h == name {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// yamlRecord is one entry of a YAML catalog. Tags may be a native sequence
// or a list-literal string copied out of a spreadsheet.
type yamlRecord struct {
	Text     string    `yaml:"text"`
	Tags     yaml.Node `yaml:"tags"`
	Category string    `yaml:"category"`
}

func readYAML(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Catalog path is operator supplied
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var entries []yamlRecord
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	records := make([]Record, 0, len(entries))
	for i, entry := range entries {
		if strings.TrimSpace(entry.Text) == "" {
			continue
		}

		tags, err := decodeTagNode(&entry.Tags)
		if err != nil {
			slog.Debug("Ignoring malformed tags", "row", i, "error", err)
			tags = nil
		}

		records = append(records, NewRecord(i, entry.Text, tags, entry.Category))
	}

	return New(records), nil
}

func decodeTagNode(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.ScalarNode:
		return ParseTags(node.Value)
	default:
		tags, err := sequenceTags(node)
		if err != nil {
			return nil, fmt.Errorf("failed to decode tags: %w", err)
		}
		return tags, nil
	}
}
