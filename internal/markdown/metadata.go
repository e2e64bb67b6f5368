package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

var metaLine = regexp.MustCompile(`^([A-Za-z0-9_-]+):\s*(.*)$`)

// splitMetadata separates a leading metadata block from the document body.
func splitMetadata(src []byte) (Metadata, []byte, error) {
	if bytes.HasPrefix(src, []byte("---\n")) || bytes.HasPrefix(src, []byte("---\r\n")) {
		return splitYAMLFrontmatter(src)
	}
	meta, body := splitColonBlock(src)
	return meta, body, nil
}

// splitColonBlock parses a bare `Key: value` block. A line indented by four
// spaces continues the previous key with an additional value. The first blank
// line ends the block; a first line that is not a key/value pair means the
// document has no metadata at all.
func splitColonBlock(src []byte) (Metadata, []byte) {
	meta := Metadata{}
	rest := src
	currentKey := ""

	for len(rest) > 0 {
		line, remainder := nextLine(rest)
		trimmed := strings.TrimRight(line, "\r\n")

		if trimmed == "" {
			// Blank line terminates the block; body starts after it.
			rest = remainder
			break
		}

		if currentKey != "" && strings.HasPrefix(line, "    ") {
			meta[currentKey] = append(meta[currentKey], strings.TrimSpace(trimmed))
			rest = remainder
			continue
		}

		match := metaLine.FindStringSubmatch(trimmed)
		if match == nil {
			if len(meta) == 0 {
				// No metadata block at all.
				return meta, src
			}
			// A non-metadata line ends the block without consuming it.
			break
		}

		currentKey = strings.ToLower(match[1])
		if _, seen := meta[currentKey]; !seen {
			meta[currentKey] = nil
		}
		if value := strings.TrimSpace(match[2]); value != "" {
			meta[currentKey] = append(meta[currentKey], value)
		}
		rest = remainder
	}

	return meta, rest
}

// splitYAMLFrontmatter parses a `---` delimited YAML block into metadata.
func splitYAMLFrontmatter(src []byte) (Metadata, []byte, error) {
	nl := "\n"
	if bytes.HasPrefix(src, []byte("---\r\n")) {
		nl = "\r\n"
	}
	open := []byte("---" + nl)

	frontmatterStart := len(open)
	closeSeq := []byte(nl + "---" + nl)

	if bytes.HasPrefix(src[frontmatterStart:], []byte("---"+nl)) {
		return Metadata{}, src[frontmatterStart+len(open):], nil
	}

	idx := bytes.Index(src[frontmatterStart:], closeSeq)
	if idx < 0 {
		return nil, nil, ErrMissingClosingDelimiter
	}

	raw := src[frontmatterStart : frontmatterStart+idx+len(nl)]
	body := src[frontmatterStart+idx+len(closeSeq):]

	var fields map[string]any
	if err := yaml.Unmarshal(raw, &fields); err != nil {
		return nil, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	meta := Metadata{}
	for key, value := range fields {
		meta[strings.ToLower(key)] = stringValues(value)
	}
	return meta, body, nil
}

// stringValues flattens a YAML value into the ordered string list shape the
// colon-style block produces.
func stringValues(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		// yaml resolves ISO-8601 scalars to timestamps; keep the plain
		// lexically-sortable date form.
		return []string{v.Format("2006-01-02")}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return []string{fmt.Sprint(v)}
	}
}

func nextLine(src []byte) (line string, rest []byte) {
	idx := bytes.IndexByte(src, '\n')
	if idx < 0 {
		return string(src), nil
	}
	return string(src[:idx+1]), src[idx+1:]
}
