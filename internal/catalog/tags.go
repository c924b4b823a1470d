package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var errUnterminatedString = errors.New("unterminated string literal")

// ParseTags parses a serialized tag list cell such as "['안전', '친절']".
//
// Quoted items are re-quoted as YAML double-quoted strings (so backslash
// escapes like \' survive) and the cell is then decoded as a YAML flow
// sequence. Nothing is evaluated. Null items (None, null, ~) are dropped.
// A blank cell yields no tags and no error.
func ParseTags(cell string) ([]string, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil, nil
	}

	src, err := requote(cell)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tag list %q: %w", cell, err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal([]byte(src), &node); err != nil {
		return nil, fmt.Errorf("failed to parse tag list %q: %w", cell, err)
	}

	if len(node.Content) != 1 {
		return nil, fmt.Errorf("failed to parse tag list %q: not a list", cell)
	}

	tags, err := sequenceTags(node.Content[0])
	if err != nil {
		return nil, fmt.Errorf("failed to parse tag list %q: %w", cell, err)
	}

	return tags, nil
}

// sequenceTags collects the scalar items of a sequence node, skipping nulls.
func sequenceTags(node *yaml.Node) ([]string, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, errors.New("not a list")
	}

	tags := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			return nil, errors.New("nested value")
		}
		if isNull(item) {
			continue
		}
		tags = append(tags, item.Value)
	}

	return tags, nil
}

// isNull reports whether an unquoted item is a null literal.
func isNull(n *yaml.Node) bool {
	if n.Style != 0 {
		return false
	}
	return n.ShortTag() == "!!null" || n.Value == "None"
}

// requote rewrites every single- or double-quoted literal in s as a YAML
// double-quoted string, decoding \\, \', \", \n, \t and \r. Other escapes are
// kept verbatim.
func requote(s string) (string, error) {
	var out strings.Builder

	for i := 0; i < len(s); i++ {
		q := s[i]
		if q != '\'' && q != '"' {
			out.WriteByte(q)
			continue
		}

		var lit strings.Builder
		closed := false
		for i++; i < len(s); i++ {
			c := s[i]
			if c == q {
				closed = true
				break
			}
			if c != '\\' || i+1 == len(s) {
				lit.WriteByte(c)
				continue
			}

			i++
			switch s[i] {
			case '\\', '\'', '"':
				lit.WriteByte(s[i])
			case 'n':
				lit.WriteByte('\n')
			case 't':
				lit.WriteByte('\t')
			case 'r':
				lit.WriteByte('\r')
			default:
				lit.WriteByte('\\')
				lit.WriteByte(s[i])
			}
		}
		if !closed {
			return "", errUnterminatedString
		}

		out.WriteString(strconv.Quote(lit.String()))
	}

	return out.String(), nil
}
